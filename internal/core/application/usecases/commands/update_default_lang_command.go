package commands

import (
	"errors"

	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/core/domain/model/user"
	"commandes/internal/pkg/guard"
)

var ErrUpdateDefaultLangCommandIsNotConstructed = errors.New(
	"UpdateDefaultLangCommand must be created via NewUpdateDefaultLangCommand constructor",
)

// UpdateDefaultLangCommand changes the language a user is notified in.
type UpdateDefaultLangCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	lang   user.Lang

	guard guard.ConstructorGuard
}

// NewUpdateDefaultLangCommand accepts only fr and ar.
func NewUpdateDefaultLangCommand(userID kernel.UUID, lang string) (UpdateDefaultLangCommand, error) {
	parsed, langErr := user.ParseLang(lang)
	if err := errors.Join(userID.Validate(), langErr); err != nil {
		return UpdateDefaultLangCommand{}, err
	}

	return UpdateDefaultLangCommand{
		userID: userID,
		lang:   parsed,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDefaultLangCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDefaultLangCommandIsNotConstructed)
}

func (c UpdateDefaultLangCommand) UserID() kernel.UUID { return c.userID }
func (c UpdateDefaultLangCommand) Lang() user.Lang     { return c.lang }
