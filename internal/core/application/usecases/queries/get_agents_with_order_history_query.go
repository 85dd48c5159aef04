package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetAgentsWithOrderHistoryQueryIsNotConstructed = errors.New(
	"GetAgentsWithOrderHistoryQuery must be created via NewGetAgentsWithOrderHistoryQuery constructor",
)

// GetAgentsWithOrderHistoryQuery lists every agent with the orders ever
// assigned to them.
type GetAgentsWithOrderHistoryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAgentsWithOrderHistoryQuery() GetAgentsWithOrderHistoryQuery {
	return GetAgentsWithOrderHistoryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAgentsWithOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentsWithOrderHistoryQueryIsNotConstructed)
}

type AgentWithOrderHistory struct {
	AgentView

	// OrderIDs are oldest first.
	OrderIDs       []kernel.UUID
	CurrentOrderID *kernel.UUID
}

type GetAgentsWithOrderHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetAgentsWithOrderHistoryQueryHandler(db *gorm.DB) GetAgentsWithOrderHistoryQueryHandler {
	return GetAgentsWithOrderHistoryQueryHandler{db: db}
}

type agentOrderRow struct {
	ID      uuid.UUID
	AgentID uuid.UUID
	Status  string
}

// Handle runs two queries, one for agents and one for all assigned orders,
// and joins them in memory.
func (h GetAgentsWithOrderHistoryQueryHandler) Handle(
	ctx context.Context, query GetAgentsWithOrderHistoryQuery,
) ([]AgentWithOrderHistory, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	var agentRows []agentRow
	if err := db.Table("delivery_agents").Select(agentColumns).Order("name, code").Scan(&agentRows).Error; err != nil {
		return nil, err
	}

	var orderRows []agentOrderRow
	if err := db.Table("orders").
		Select("id, agent_id, status").
		Where("agent_id IS NOT NULL").
		Order("order_date, id").
		Scan(&orderRows).Error; err != nil {
		return nil, err
	}

	byAgent := make(map[uuid.UUID][]agentOrderRow, len(agentRows))
	for _, row := range orderRows {
		byAgent[row.AgentID] = append(byAgent[row.AgentID], row)
	}

	active := order.OutForDelivery.String()
	result := make([]AgentWithOrderHistory, 0, len(agentRows))
	for _, row := range agentRows {
		view, err := row.toView()
		if err != nil {
			return nil, err
		}

		entry := AgentWithOrderHistory{AgentView: view, OrderIDs: make([]kernel.UUID, 0, len(byAgent[row.ID]))}
		for _, o := range byAgent[row.ID] {
			id, idErr := toUUID(o.ID)
			if idErr != nil {
				return nil, idErr
			}
			entry.OrderIDs = append(entry.OrderIDs, id)
			if o.Status == active {
				entry.CurrentOrderID = &id
			}
		}
		result = append(result, entry)
	}

	return result, nil
}
