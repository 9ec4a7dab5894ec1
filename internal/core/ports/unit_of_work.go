package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans the writes of one command: a status change touches a
// single order row, an order creation reads the owner and the catalog
// before inserting the order with its items.
//
// Repositories obtained before Begin, or after Commit, run without a
// transaction. Notification recipients are read that way.
type UnitOfWork interface {
	// Begin opens the transaction. A second call while open does nothing.
	Begin(ctx context.Context) error
	// Commit fails when no transaction is open.
	Commit(ctx context.Context) error
	// Rollback is deferred by every handler. After Commit it returns an
	// error that the deferred call ignores.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	UserRepository() UserRepository
	CatalogRepository() CatalogRepository
}
