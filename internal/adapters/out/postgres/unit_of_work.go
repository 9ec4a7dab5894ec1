// Package postgres provides the GORM based Unit of Work shared by the order,
// user and catalog repositories.
//
// Each business operation creates its own unit of work:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories obtained before Begin, or after Commit/Rollback, run on the
// plain connection. Read-only collaborators such as the notification
// dispatcher rely on this.
//
// Instances are not safe for concurrent use; goroutines each create their own.
package postgres

import (
	"context"
	"sync"

	"commandes/internal/adapters/out/postgres/catalogrepo"
	"commandes/internal/adapters/out/postgres/orderrepo"
	"commandes/internal/adapters/out/postgres/userrepo"
	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/core/domain/model/order"
	"commandes/internal/core/domain/model/user"
	"commandes/internal/core/ports"
	"commandes/internal/pkg/metrics"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and records the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB

	mu                sync.Mutex
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling it again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the open transaction and counts the aggregates it wrote.
// Returns gorm.ErrInvalidTransaction when none is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	tracked := uow.drainTracked()
	if err != nil {
		return err
	}

	for _, t := range tracked {
		metrics.AggregatesWritten.WithLabelValues(aggregateKind(t.Aggregate)).Inc()
	}
	return nil
}

// Rollback discards the open transaction.
// Returns gorm.ErrInvalidTransaction when none is open, which makes a
// deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.drainTracked()
	return err
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// UserRepository returns a user repository bound to the current transaction.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(uow.conn(), uow)
}

// CatalogRepository returns a catalog repository bound to the current transaction.
func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(uow.conn())
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after each successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.mu.Lock()
	defer uow.mu.Unlock()

	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// drainTracked returns the tracked aggregates and starts a fresh list.
func (uow *GormUnitOfWork) drainTracked() []trackedAggregate {
	uow.mu.Lock()
	defer uow.mu.Unlock()

	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)
	return tracked
}

func aggregateKind(aggregate any) string {
	switch aggregate.(type) {
	case *order.Order:
		return "order"
	case *user.User:
		return "user"
	default:
		return "other"
	}
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
