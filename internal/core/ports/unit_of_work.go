package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories it hands out
// are bound to the transaction started by Begin; callers commit explicitly
// and defer Rollback, which is a no-op after a successful Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	CustomerRepository() CustomerRepository
	CatalogGateway() CatalogGateway
	CartRepository() CartRepository
	OrderRepository() OrderRepository
	AgentRepository() AgentRepository
}
