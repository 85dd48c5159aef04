// Package commands contains the write operations of the fulfillment core:
// cart mutations, order placement, agent assignment and delivery settlement.
//
// Every handler follows the same shape: validate the command, open a unit of
// work, load and lock what it mutates, apply domain rules, persist and
// commit. Nothing is committed when a step fails.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each family of commands touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	CatalogGatewayFactory interface {
		CatalogGateway() ports.CatalogGateway
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	AgentRepoFactory interface {
		AgentRepository() ports.AgentRepository
	}

	// CartUoW is used by cart mutations. The customer row is locked first and
	// acts as the per-customer serialization point.
	CartUoW interface {
		TxManager
		CustomerRepoFactory
		CatalogGatewayFactory
		CartRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW spans the cart and the order it turns into, so the order
	// insert and the cart delete commit together.
	CheckoutUoW interface {
		TxManager
		CustomerRepoFactory
		CatalogGatewayFactory
		CartRepoFactory
		OrderRepoFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// FulfillmentUoW spans an order and the agent delivering it.
	//
	// Example:
	//
	//	uow := factory.Create()
	//	if err := uow.Begin(ctx); err != nil {
	//	    return err
	//	}
	//	defer func() { _ = uow.Rollback(ctx) }()
	//
	//	o, _ := uow.OrderRepository().GetForUpdate(ctx, orderID)
	//	a, _ := uow.AgentRepository().GetForUpdate(ctx, agentID)
	//	// ... mutate both
	//	return uow.Commit(ctx)
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		AgentRepoFactory
	}

	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	AgentUoW interface {
		TxManager
		AgentRepoFactory
	}

	AgentUoWFactory interface {
		Create() AgentUoW
	}
)
