package catalogrepo

import (
	"context"
	"errors"

	"commandes/internal/core/domain/model/catalog"
	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// AddVendor inserts a vendor without items.
func (r *GormCatalogRepository) AddVendor(ctx context.Context, vendor catalog.Vendor) error {
	dto := vendorFromDomain(vendor)
	return r.db.WithContext(ctx).Omit("Items").Create(&dto).Error
}

// AddItem inserts an item. The vendor must exist.
func (r *GormCatalogRepository) AddItem(ctx context.Context, item catalog.Item) error {
	dto := itemFromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetItem retrieves an item by ID.
func (r *GormCatalogRepository) GetItem(ctx context.Context, id kernel.UUID) (catalog.Item, error) {
	if err := id.Validate(); err != nil {
		return catalog.Item{}, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Item{}, errs.NewObjectNotFoundError("item", id.String())
		}
		return catalog.Item{}, err
	}

	return itemToDomain(dto)
}
