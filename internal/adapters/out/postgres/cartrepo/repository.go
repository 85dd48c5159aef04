package cartrepo

import (
	"context"

	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/dberr"
	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCartRepository implements ports.CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCartRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var dto CartDTO
	if err := db.Take(&dto, "customer_id = ?", customerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", customerID.String())
		}
		return nil, dberr.Wrap(err, "get cart")
	}

	var items []CartItemDTO
	if err := db.Where("cart_id = ?", dto.ID).Order("position").Find(&items).Error; err != nil {
		return nil, dberr.Wrap(err, "get cart items")
	}

	menu, err := r.loadMenuItems(db, items)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, items, menu)
}

// Add inserts the cart and its lines. Empty carts are refused.
func (r *GormCartRepository) Add(ctx context.Context, aggregate *cart.Cart) error {
	if err := r.validate(aggregate); err != nil {
		return err
	}

	dto, items := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err := db.Create(&dto).Error; err != nil {
		return dberr.Wrap(err, "create cart")
	}
	if err := db.Create(&items).Error; err != nil {
		return dberr.Wrap(err, "create cart items")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites the cart lines and totals.
func (r *GormCartRepository) Update(ctx context.Context, aggregate *cart.Cart) error {
	if err := r.validate(aggregate); err != nil {
		return err
	}

	dto, items := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&CartDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"item_count":   dto.ItemCount,
		"total_amount": dto.TotalAmount,
		"updated_at":   db.NowFunc(),
	})
	if result.Error != nil {
		return dberr.Wrap(result.Error, "update cart")
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cart", aggregate.ID().String())
	}

	if err := db.Delete(&CartItemDTO{}, "cart_id = ?", dto.ID).Error; err != nil {
		return dberr.Wrap(err, "delete cart items")
	}
	if err := db.Create(&items).Error; err != nil {
		return dberr.Wrap(err, "create cart items")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes the cart and its lines; a missing cart is a no-op.
func (r *GormCartRepository) Delete(ctx context.Context, id kernel.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Delete(&CartItemDTO{}, "cart_id = ?", id.Bytes()).Error; err != nil {
		return dberr.Wrap(err, "delete cart items")
	}
	if err := db.Delete(&CartDTO{}, "id = ?", id.Bytes()).Error; err != nil {
		return dberr.Wrap(err, "delete cart")
	}
	return nil
}

func (r *GormCartRepository) GetItemCartID(ctx context.Context, itemID kernel.UUID) (kernel.UUID, error) {
	if err := itemID.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var dto CartItemDTO
	err := r.db.WithContext(ctx).Select("cart_id").Take(&dto, "id = ?", itemID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("cart item", itemID.String())
		}
		return kernel.UUID{}, dberr.Wrap(err, "get cart item")
	}

	return kernel.UUIDFromBytes(dto.CartID[:])
}

// DeleteEmpty removes carts that have no lines left.
func (r *GormCartRepository) DeleteEmpty(ctx context.Context) (int64, error) {
	db := r.db.WithContext(ctx)
	lines := db.Model(&CartItemDTO{}).Select("1").Where("cart_items.cart_id = carts.id")

	result := db.Where("NOT EXISTS (?)", lines).Delete(&CartDTO{})
	if result.Error != nil {
		return 0, dberr.Wrap(result.Error, "delete empty carts")
	}
	return result.RowsAffected, nil
}

func (r *GormCartRepository) validate(aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.IsEmpty() {
		return errs.NewValueIsInvalidError("cart has no items and must be deleted instead")
	}
	return nil
}

func (r *GormCartRepository) loadMenuItems(
	db *gorm.DB, items []CartItemDTO,
) (map[uuid.UUID]catalogrepo.MenuItemDTO, error) {
	menu := make(map[uuid.UUID]catalogrepo.MenuItemDTO, len(items))
	if len(items) == 0 {
		return menu, nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.MenuItemID)
	}

	var dtos []catalogrepo.MenuItemDTO
	if err := db.Where("id IN ?", ids).Find(&dtos).Error; err != nil {
		return nil, dberr.Wrap(err, "get menu items")
	}
	for _, m := range dtos {
		menu[m.ID] = m
	}

	return menu, nil
}
