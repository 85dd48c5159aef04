package services

import (
	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/order"
)

// AgentAssigner applies the assignment rule: the order must be PLACED and the
// agent AVAILABLE. Both preconditions are checked before either aggregate is
// touched, so a rejected assignment leaves both unchanged.
//
// Example usage:
//
//	assigner := services.NewAgentAssigner()
//	if err := assigner.Assign(o, a); err != nil {
//	    // order.ErrOrderNotPlaced or agent.ErrAgentNotAvailable
//	}
type AgentAssigner struct{}

func NewAgentAssigner() AgentAssigner {
	return AgentAssigner{}
}

// Assign links the agent to the order, moves the order OUT_FOR_DELIVERY and
// marks the agent BUSY.
func (AgentAssigner) Assign(o *order.Order, a *agent.Agent) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}

	if err := o.ValidateAssign(); err != nil {
		return err
	}
	if err := a.ValidateTakeOrder(); err != nil {
		return err
	}

	if err := o.AssignAgent(a.ID()); err != nil {
		return err
	}
	return a.TakeOrder()
}
