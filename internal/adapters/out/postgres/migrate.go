package postgres

import (
	"commandes/internal/adapters/out/postgres/catalogrepo"
	"commandes/internal/adapters/out/postgres/orderrepo"
	"commandes/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&catalogrepo.VendorDTO{},
		&catalogrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
}
