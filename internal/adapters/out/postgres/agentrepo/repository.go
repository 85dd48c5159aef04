package agentrepo

import (
	"context"

	"fooddelivery/internal/adapters/out/postgres/dberr"
	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAgentRepository implements ports.AgentRepository using GORM.
type GormAgentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormAgentRepository(db *gorm.DB, tracker aggregateTracker) *GormAgentRepository {
	return &GormAgentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormAgentRepository) Add(ctx context.Context, aggregate *agent.Agent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Wrap(err, "create agent")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update is a compare-and-set on the version column. When the stored version
// moved since the agent was loaded, nothing is written and
// errs.ErrConcurrentUpdate is returned.
func (r *GormAgentRepository) Update(ctx context.Context, aggregate *agent.Agent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&AgentDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":           dto.Status,
			"total_deliveries": dto.TotalDeliveries,
			"total_earnings":   dto.TotalEarnings,
			"todays_earning":   dto.TodaysEarning,
			"rating":           dto.Rating,
			"version":          dto.Version + 1,
			"updated_at":       db.NowFunc(),
		})
	if result.Error != nil {
		return dberr.Wrap(result.Error, "update agent")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&AgentDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return dberr.Wrap(err, "check agent")
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("agent", aggregate.ID().String())
		}
		return errors.Wrapf(errs.ErrConcurrentUpdate, "agent %s changed since version %d", aggregate.ID(), dto.Version)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an agent and locks its row.
func (r *GormAgentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

// ResetTodaysEarnings zeroes today's earning of every agent that has one.
func (r *GormAgentRepository) ResetTodaysEarnings(ctx context.Context) (int64, error) {
	db := r.db.WithContext(ctx)
	result := db.Model(&AgentDTO{}).
		Where("todays_earning <> ?", decimal.Zero).
		Updates(map[string]any{
			"todays_earning": decimal.Zero,
			"version":        gorm.Expr("version + 1"),
			"updated_at":     db.NowFunc(),
		})
	if result.Error != nil {
		return 0, dberr.Wrap(result.Error, "reset todays earnings")
	}
	return result.RowsAffected, nil
}

func (r *GormAgentRepository) get(db *gorm.DB, id kernel.UUID) (*agent.Agent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AgentDTO
	if err := db.Take(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agent", id.String())
		}
		return nil, dberr.Wrap(err, "get agent")
	}

	return toDomain(dto)
}
