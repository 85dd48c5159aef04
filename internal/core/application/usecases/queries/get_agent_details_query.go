package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetAgentDetailsQueryIsNotConstructed = errors.New(
	"GetAgentDetailsQuery must be created via NewGetAgentDetailsQuery constructor",
)

type GetAgentDetailsQuery struct {
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAgentDetailsQuery(agentID kernel.UUID) (GetAgentDetailsQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAgentDetailsQuery{}, err
	}
	return GetAgentDetailsQuery{agentID: agentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAgentDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentDetailsQueryIsNotConstructed)
}

func (q GetAgentDetailsQuery) AgentID() kernel.UUID {
	return q.agentID
}

// GetAgentDetailsQueryResponse adds the order the agent is delivering, if any.
type GetAgentDetailsQueryResponse struct {
	AgentView

	CurrentOrderID *kernel.UUID
}
