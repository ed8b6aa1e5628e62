package workers

import (
	"context"
	"time"

	"github.com/pfjetdev/pfjet-sub000/internal/services"
)

type WorkersContainer struct {
	CatalogWarm *CatalogWarmWorker
}

func InitWorkers(catalog *services.CatalogService) *WorkersContainer {
	warm := NewCatalogWarmWorker(catalog, time.Hour)
	go warm.Start(context.Background())

	return &WorkersContainer{
		CatalogWarm: warm,
	}
}
