package ports

import (
	"context"

	"commandes/internal/core/domain/model/catalog"
	"commandes/internal/core/domain/model/kernel"
)

// CatalogRepository gives access to vendors and their items. Orders only
// read from it, writes exist for seeding and back-office tooling.
type CatalogRepository interface {
	AddVendor(ctx context.Context, vendor catalog.Vendor) error
	AddItem(ctx context.Context, item catalog.Item) error

	// GetItem returns an error wrapping errs.ErrObjectNotFound for unknown ids.
	GetItem(ctx context.Context, id kernel.UUID) (catalog.Item, error)
}
