package commands

import (
	"errors"
	"strings"

	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/pkg/errs"
	"commandes/internal/pkg/guard"
)

var ErrUpdateDeviceTokenCommandIsNotConstructed = errors.New(
	"UpdateDeviceTokenCommand must be created via NewUpdateDeviceTokenCommand or NewClearDeviceTokenCommand",
)

// UpdateDeviceTokenCommand registers the push token of the device a user
// just logged in from, or forgets it on logout.
type UpdateDeviceTokenCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	token  string

	guard guard.ConstructorGuard
}

// NewUpdateDeviceTokenCommand overwrites any previous token.
func NewUpdateDeviceTokenCommand(userID kernel.UUID, token string) (UpdateDeviceTokenCommand, error) {
	token = strings.TrimSpace(token)

	var tokenErr error
	if token == "" {
		tokenErr = errs.NewValueIsRequiredError("device token")
	}
	if err := errors.Join(userID.Validate(), tokenErr); err != nil {
		return UpdateDeviceTokenCommand{}, err
	}

	return UpdateDeviceTokenCommand{
		userID: userID,
		token:  token,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewClearDeviceTokenCommand removes the token so no push is attempted.
func NewClearDeviceTokenCommand(userID kernel.UUID) (UpdateDeviceTokenCommand, error) {
	if err := userID.Validate(); err != nil {
		return UpdateDeviceTokenCommand{}, err
	}

	return UpdateDeviceTokenCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
func (c UpdateDeviceTokenCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeviceTokenCommandIsNotConstructed)
}

func (c UpdateDeviceTokenCommand) UserID() kernel.UUID { return c.userID }

// Token is empty for a clear request.
func (c UpdateDeviceTokenCommand) Token() string { return c.token }

// Clears reports whether the command removes the token.
func (c UpdateDeviceTokenCommand) Clears() bool { return c.token == "" }
