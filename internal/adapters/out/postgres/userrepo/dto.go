// Package userrepo persists users: the order owners, couriers and staff that
// notifications are addressed to.
package userrepo

import (
	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO is the users table row.
type UserDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Phone       string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Type        string    `gorm:"type:varchar(16);not null;index"`
	DefaultLang string    `gorm:"type:varchar(2);not null;default:fr"`
	FcmToken    *string   `gorm:"type:text"`
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	var token *string
	if u.HasDeviceToken() {
		t := u.DeviceToken()
		token = &t
	}

	return UserDTO{
		ID:          u.ID().Bytes(),
		Phone:       u.Phone(),
		Type:        u.Role().String(),
		DefaultLang: u.DefaultLang().String(),
		FcmToken:    token,
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var token string
	if dto.FcmToken != nil {
		token = *dto.FcmToken
	}

	return user.RestoreUser(id, dto.Phone, user.Role(dto.Type), user.Lang(dto.DefaultLang), token)
}
