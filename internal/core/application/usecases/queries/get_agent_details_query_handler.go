package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAgentDetailsQueryHandler struct {
	db *gorm.DB
}

func NewGetAgentDetailsQueryHandler(db *gorm.DB) GetAgentDetailsQueryHandler {
	return GetAgentDetailsQueryHandler{db: db}
}

// Handle fails with errs.ErrObjectNotFound for an unknown agent.
func (h GetAgentDetailsQueryHandler) Handle(
	ctx context.Context, query GetAgentDetailsQuery,
) (GetAgentDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAgentDetailsQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	agentID := query.AgentID()

	var rows []agentRow
	if err := db.Table("delivery_agents").
		Select(agentColumns).
		Where("id = ?", agentID.Bytes()).
		Scan(&rows).Error; err != nil {
		return GetAgentDetailsQueryResponse{}, errors.Wrap(err, "select agent")
	}
	if len(rows) == 0 {
		return GetAgentDetailsQueryResponse{}, errs.NewObjectNotFoundError("agent", agentID)
	}

	view, err := rows[0].toView()
	if err != nil {
		return GetAgentDetailsQueryResponse{}, err
	}

	current, err := activeOrderFor(db, agentID)
	if err != nil {
		return GetAgentDetailsQueryResponse{}, err
	}

	return GetAgentDetailsQueryResponse{AgentView: view, CurrentOrderID: current}, nil
}

// activeOrderFor returns the most recent OUT_FOR_DELIVERY order of the
// agent, or nil.
func activeOrderFor(db *gorm.DB, agentID kernel.UUID) (*kernel.UUID, error) {
	var ids []uuid.UUID
	err := db.Table("orders").
		Where("agent_id = ? AND status = ?", agentID.Bytes(), order.OutForDelivery.String()).
		Order("order_date DESC").
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "select active order")
	}
	if len(ids) == 0 {
		return nil, nil //nolint:nilnil // the agent is not delivering
	}
	return toOptionalUUID(&ids[0])
}
