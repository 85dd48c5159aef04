package catalogrepo

import (
	"context"

	"fooddelivery/internal/adapters/out/postgres/dberr"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/go-faster/errors"
	"gorm.io/gorm"
)

// GormCatalogGateway implements ports.CatalogGateway over the catalog tables.
type GormCatalogGateway struct {
	db *gorm.DB
}

func NewGormCatalogGateway(db *gorm.DB) *GormCatalogGateway {
	return &GormCatalogGateway{db: db}
}

func (g *GormCatalogGateway) FindRestaurant(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := g.db.WithContext(ctx).Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, dberr.Wrap(err, "get restaurant")
	}

	return restaurantToDomain(dto)
}

func (g *GormCatalogGateway) FindMenuItem(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := g.db.WithContext(ctx).Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, dberr.Wrap(err, "get menu item")
	}

	return MenuItemToDomain(dto)
}

// AddRestaurant and AddMenuItem seed catalog rows. The catalog is maintained
// by another service; these exist for local runs and tests.
func (g *GormCatalogGateway) AddRestaurant(ctx context.Context, r *catalog.Restaurant) error {
	dto := FromRestaurant(r)
	return dberr.Wrap(g.db.WithContext(ctx).Create(&dto).Error, "create restaurant")
}

func (g *GormCatalogGateway) AddMenuItem(ctx context.Context, m *catalog.MenuItem) error {
	dto := FromMenuItem(m)
	return dberr.Wrap(g.db.WithContext(ctx).Create(&dto).Error, "create menu item")
}

// DeleteMenuItem removes a menu item from the catalog.
func (g *GormCatalogGateway) DeleteMenuItem(ctx context.Context, id kernel.UUID) error {
	return dberr.Wrap(g.db.WithContext(ctx).Delete(&MenuItemDTO{}, "id = ?", id.Bytes()).Error, "delete menu item")
}
