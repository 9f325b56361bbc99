package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fontroute/pkg/observability"
)

// loggingHooks reports load, route and cache events at debug level.
type loggingHooks struct {
	logger *log.Logger
}

func installLoggingHooks(l *log.Logger) {
	h := &loggingHooks{logger: l}
	observability.SetLoadHooks(h)
	observability.SetRouteHooks(h)
	observability.SetCacheHooks(h)
}

func (h *loggingHooks) OnLoadStart(_ context.Context, source string) {
	h.logger.Debug("load started", "source", source)
}

func (h *loggingHooks) OnLoadComplete(_ context.Context, source string, stats observability.LoadStats, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "source", source, "err", err, "duration", d.Round(time.Microsecond))
		return
	}
	h.logger.Debug("load complete",
		"source", source,
		"fonts", stats.Fonts,
		"routes", stats.Routes,
		"rejected", stats.Rejected,
		"duration", d.Round(time.Microsecond))
}

func (h *loggingHooks) OnRouteAdded(_ context.Context, from, to, tag string) {
	h.logger.Debug("route added", "from", from, "to", to, "tag", tag)
}

func (h *loggingHooks) OnRouteRejected(_ context.Context, from, to, tag, result string) {
	h.logger.Debug("route rejected", "from", from, "to", to, "tag", tag, "result", result)
}

func (h *loggingHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "backend", keyType)
}

func (h *loggingHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "backend", keyType)
}

func (h *loggingHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "backend", keyType, "bytes", size)
}
