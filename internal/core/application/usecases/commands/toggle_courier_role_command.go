package commands

import (
	"errors"

	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/pkg/guard"
)

var ErrToggleCourierRoleCommandIsNotConstructed = errors.New(
	"ToggleCourierRoleCommand must be created via NewToggleCourierRoleCommand constructor",
)

// ToggleCourierRoleCommand promotes a customer to courier, or demotes a
// courier back to customer.
type ToggleCourierRoleCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewToggleCourierRoleCommand(userID kernel.UUID) (ToggleCourierRoleCommand, error) {
	if err := userID.Validate(); err != nil {
		return ToggleCourierRoleCommand{}, err
	}

	return ToggleCourierRoleCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleCourierRoleCommand) Validate() error {
	return c.guard.Validate(ErrToggleCourierRoleCommandIsNotConstructed)
}

func (c ToggleCourierRoleCommand) UserID() kernel.UUID { return c.userID }
