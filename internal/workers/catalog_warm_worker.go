package workers

import (
	"context"
	"time"

	"github.com/pfjetdev/pfjet-sub000/internal/constants"
	"github.com/pfjetdev/pfjet-sub000/internal/logging"
	"github.com/pfjetdev/pfjet-sub000/internal/services"
)

// CatalogWarmWorker pre-warms the route/aircraft/city caches on
// startup and again every tick, so page renders after a TTL expiry do
// not pay the store round-trip. A failed warm is logged and retried on
// the next tick; requests fall back to fetching inline.
type CatalogWarmWorker struct {
	catalog  *services.CatalogService
	interval time.Duration
}

func NewCatalogWarmWorker(catalog *services.CatalogService, interval time.Duration) *CatalogWarmWorker {
	return &CatalogWarmWorker{catalog: catalog, interval: interval}
}

func (w *CatalogWarmWorker) Start(ctx context.Context) {
	w.warm(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.warm(ctx)
		}
	}
}

func (w *CatalogWarmWorker) warm(ctx context.Context) {
	start := time.Now()
	routes, aircraft, _, err := w.catalog.FetchCatalog(ctx, constants.DefaultRouteLimit)
	if err != nil {
		logging.Warn("catalog warm failed", "error", err.Error())
		return
	}
	logging.Info("catalog warmed",
		"routes", len(routes),
		"aircraft", len(aircraft),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
