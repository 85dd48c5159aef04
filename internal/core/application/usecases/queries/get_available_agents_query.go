package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetAvailableAgentsQueryIsNotConstructed = errors.New(
	"GetAvailableAgentsQuery must be created via NewGetAvailableAgentsQuery constructor",
)

// GetAvailableAgentsQuery lists the agents that can take an order right now.
//
// Example:
//
//	agents, err := NewGetAvailableAgentsQueryHandler(db).Handle(ctx, NewGetAvailableAgentsQuery())
//	if err != nil {
//	    return err
//	}
//	for _, a := range agents {
//	    fmt.Printf("%s (%s) rated %.1f\n", a.Name, a.Code, a.Rating)
//	}
type GetAvailableAgentsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAvailableAgentsQuery() GetAvailableAgentsQuery {
	return GetAvailableAgentsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAvailableAgentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableAgentsQueryIsNotConstructed)
}

type GetAvailableAgentsQueryHandler struct {
	db *gorm.DB
}

func NewGetAvailableAgentsQueryHandler(db *gorm.DB) GetAvailableAgentsQueryHandler {
	return GetAvailableAgentsQueryHandler{db: db}
}

// Handle returns agents sorted by name. No available agent is an empty
// slice, not an error.
func (h GetAvailableAgentsQueryHandler) Handle(
	ctx context.Context, query GetAvailableAgentsQuery,
) ([]AgentView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []agentRow
	err := h.db.WithContext(ctx).
		Table("delivery_agents").
		Select(agentColumns).
		Where("status = ?", agent.Available.String()).
		Order("name, code").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	agents := make([]AgentView, 0, len(rows))
	for _, row := range rows {
		view, viewErr := row.toView()
		if viewErr != nil {
			return nil, viewErr
		}
		agents = append(agents, view)
	}
	return agents, nil
}
