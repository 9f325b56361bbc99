package io

import (
	"context"
	"time"

	"github.com/matzehuels/fontroute/pkg/catalog"
	"github.com/matzehuels/fontroute/pkg/errors"
	"github.com/matzehuels/fontroute/pkg/fallback"
	"github.com/matzehuels/fontroute/pkg/observability"
)

// Options controls how a document is turned into a catalog.
type Options struct {
	// Strict fails the build on the first route the graph rejects.
	Strict bool
	// Source names the document in hooks. Defaults to "document".
	Source string
	// Graph configures the catalog's graph.
	Graph []fallback.Option
}

// Rejection is a route the graph refused during a non-strict build.
type Rejection struct {
	Index  int // position in Document.Routes
	Route  RouteEntry
	Result fallback.Result
	Err    error
}

// Report summarizes a build.
type Report struct {
	Fonts    int
	Routes   int
	Rejected []Rejection
}

// Stats returns the report as hook stats.
func (r *Report) Stats() observability.LoadStats {
	return observability.LoadStats{Fonts: r.Fonts, Routes: r.Routes, Rejected: len(r.Rejected)}
}

// Build registers every font of doc, then adds every route, in order.
//
// Fonts that fail to register always fail the build. Routes whose result is
// [fallback.ResultExists] or [fallback.ResultNotAllowed] are collected in the
// report unless opts.Strict is set. Any other non-OK result fails the build;
// [fallback.ResultCorrupted] maps to a CORRUPTED error.
//
// The report is returned with the error so callers can tell how far the
// build got.
func Build(ctx context.Context, doc *Document, opts Options) (cat *catalog.Catalog, report *Report, err error) {
	source := opts.Source
	if source == "" {
		source = "document"
	}
	report = &Report{}

	start := time.Now()
	observability.Load().OnLoadStart(ctx, source)
	defer func() {
		observability.Load().OnLoadComplete(ctx, source, report.Stats(), time.Since(start), err)
	}()

	if doc == nil {
		return nil, report, errors.New(errors.ErrCodeInvalidInput, "nil document")
	}

	cat = catalog.New(opts.Graph...)
	for i, f := range doc.Fonts {
		if err := cat.AddFont(f.Name, f.Tags...); err != nil {
			return nil, report, errors.Wrap(errors.GetCodeOr(err, errors.ErrCodeInvalidFont), err, "fonts[%d]", i)
		}
		report.Fonts++
	}

	routes := observability.Route()
	for i, r := range doc.Routes {
		if err := ctx.Err(); err != nil {
			return nil, report, err
		}
		res, err := cat.AddRoute(r.From, r.To, r.Tag)
		switch res {
		case fallback.ResultOK:
			report.Routes++
			routes.OnRouteAdded(ctx, r.From, r.To, r.Tag)
			continue
		case fallback.ResultExists, fallback.ResultNotAllowed:
			routes.OnRouteRejected(ctx, r.From, r.To, r.Tag, res.String())
			if !opts.Strict {
				report.Rejected = append(report.Rejected, Rejection{Index: i, Route: r, Result: res, Err: err})
				continue
			}
		default:
			routes.OnRouteRejected(ctx, r.From, r.To, r.Tag, res.String())
		}
		return nil, report, errors.Wrap(errors.GetCodeOr(err, errors.ResultCode(res)), err, "routes[%d]", i)
	}

	return cat, report, nil
}
