// Package catalogrepo persists vendors and the items they sell.
package catalogrepo

import (
	"commandes/internal/core/domain/model/catalog"
	"commandes/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendorDTO is the vendors table row.
type VendorDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Type  string    `gorm:"type:varchar(16);not null;index"`
	Image string    `gorm:"type:text"`
	Items []ItemDTO `gorm:"foreignKey:VendorID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for vendors.
func (VendorDTO) TableName() string {
	return "vendors"
}

// ItemDTO is the vendor_items table row.
type ItemDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VendorID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name     string          `gorm:"type:varchar(255);not null"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Image    string          `gorm:"type:text"`
}

// TableName specifies the database table name for catalog items.
func (ItemDTO) TableName() string {
	return "vendor_items"
}

func vendorFromDomain(v catalog.Vendor) VendorDTO {
	return VendorDTO{
		ID:    v.ID.Bytes(),
		Name:  v.Name,
		Type:  string(v.Type),
		Image: v.Image,
	}
}

func itemFromDomain(i catalog.Item) ItemDTO {
	return ItemDTO{
		ID:       i.ID.Bytes(),
		VendorID: i.VendorID.Bytes(),
		Name:     i.Name,
		Price:    i.Price,
		Image:    i.Image,
	}
}

func itemToDomain(dto ItemDTO) (catalog.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return catalog.Item{}, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return catalog.Item{}, err
	}
	return catalog.NewItem(id, vendorID, dto.Name, dto.Price, dto.Image)
}
