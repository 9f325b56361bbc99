package cli

import (
	"context"
	"fmt"

	"github.com/matzehuels/fontroute/pkg/catalog"
	"github.com/matzehuels/fontroute/pkg/debug"
	"github.com/matzehuels/fontroute/pkg/errors"
	fio "github.com/matzehuels/fontroute/pkg/io"
	"github.com/matzehuels/fontroute/pkg/services"
)

// loadCatalog imports the fallback file at path.
//
// A corrupted graph cannot be recovered from, so it triggers a hard break
// instead of being returned.
func (c *CLI) loadCatalog(ctx context.Context, path string, strict bool) (*catalog.Catalog, *fio.Report, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cat, report, err := fio.ImportFile(ctx, path, fio.Options{Strict: strict})
	if err != nil {
		if errors.Is(err, errors.ErrCodeCorrupted) {
			debug.HardBreak(services.ResolveLogger(c.services), err.Error())
		}
		return nil, report, err
	}

	for _, r := range report.Rejected {
		logger.Debug("route skipped", "index", r.Index, "from", r.Route.From, "to", r.Route.To, "tag", r.Route.Tag, "result", r.Result)
	}
	prog.done(fmt.Sprintf("Loaded %d fonts and %d routes from %s", report.Fonts, report.Routes, path))
	return cat, report, nil
}
