package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
)

// CatalogGateway is the read-only lookup into restaurant catalog data.
// Both methods fail with errs.ErrObjectNotFound when the record is absent.
type CatalogGateway interface {
	FindRestaurant(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error)
	FindMenuItem(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error)
}
