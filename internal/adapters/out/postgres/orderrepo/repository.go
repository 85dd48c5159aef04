package orderrepo

import (
	"context"

	"fooddelivery/internal/adapters/out/postgres/dberr"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/go-faster/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its item snapshots.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, items := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err := db.Create(&dto).Error; err != nil {
		return dberr.Wrap(err, "create order")
	}
	if len(items) > 0 {
		if err := db.Create(&items).Error; err != nil {
			return dberr.Wrap(err, "create order items")
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable order fields. Items and amounts are immutable and
// left alone.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, _ := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":       dto.Status,
		"agent_id":     dto.AgentID,
		"delivered_at": dto.DeliveredAt,
	})
	if result.Error != nil {
		return dberr.Wrap(result.Error, "update order")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an order and locks its row.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

// FindActiveForAgent returns the agent's order that is out for delivery, or
// nil when there is none.
func (r *GormOrderRepository) FindActiveForAgent(ctx context.Context, agentID kernel.UUID) (*order.Order, error) {
	if err := agentID.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var dtos []OrderDTO
	err := db.
		Where("agent_id = ? AND status = ?", agentID.Bytes(), order.OutForDelivery.String()).
		Order("order_date DESC").
		Limit(1).
		Find(&dtos).Error
	if err != nil {
		return nil, dberr.Wrap(err, "find active order")
	}
	if len(dtos) == 0 {
		return nil, nil //nolint:nilnil // absence is a valid answer here
	}

	items, err := r.loadItems(db, dtos[0])
	if err != nil {
		return nil, err
	}
	return toDomain(dtos[0], items)
}

func (r *GormOrderRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, dberr.Wrap(err, "get order")
	}

	items, err := r.loadItems(r.db.WithContext(ctx), dto)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, items)
}

func (r *GormOrderRepository) loadItems(db *gorm.DB, dto OrderDTO) ([]ItemDTO, error) {
	var items []ItemDTO
	if err := db.Where("order_id = ?", dto.ID).Order("position").Find(&items).Error; err != nil {
		return nil, dberr.Wrap(err, "get order items")
	}
	return items, nil
}
