package user

import (
	"errors"
	"fmt"
	"strings"

	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned for users not built by NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// ErrRoleNotToggleable is returned when toggling the courier role of a staff account.
var ErrRoleNotToggleable = errs.NewValueIsInvalidErrorWithCause("role",
	errors.New("only simple and traitor users can be toggled"))

// User is an account able to place, carry or manage orders.
type User struct {
	id          kernel.UUID
	phone       string
	role        Role
	defaultLang Lang
	deviceToken string

	isConstructed bool
}

// NewUser registers a user with French as language and no device token.
func NewUser(id kernel.UUID, phone string, role Role) (*User, error) {
	return RestoreUser(id, phone, role, French, "")
}

// RestoreUser rebuilds a user from persistence. Unknown languages fall back
// to French instead of failing, rows written before the language column
// existed hold an empty string.
func RestoreUser(id kernel.UUID, phone string, role Role, lang Lang, deviceToken string) (*User, error) {
	u := &User{
		defaultLang:   lang.OrDefault(),
		deviceToken:   strings.TrimSpace(deviceToken),
		isConstructed: true,
	}

	var phoneErr error
	phone = strings.TrimSpace(phone)
	if phone == "" {
		phoneErr = errs.NewValueIsRequiredError("phone")
	}
	_, roleErr := ParseRole(string(role))

	if err := errors.Join(id.Validate(), phoneErr, roleErr); err != nil {
		return nil, err
	}

	u.id = id
	u.phone = phone
	u.role = role
	return u, nil
}

// Validate ensures the User instance was built by one of the constructors.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Phone returns the login phone number.
func (u *User) Phone() string { return u.phone }

// Role returns the account role.
func (u *User) Role() Role { return u.role }

// DefaultLang returns the notification language.
func (u *User) DefaultLang() Lang { return u.defaultLang }

// DeviceToken returns the push token, empty when the user is logged out.
func (u *User) DeviceToken() string { return u.deviceToken }

// HasDeviceToken reports whether push notifications can reach the user.
func (u *User) HasDeviceToken() bool { return u.deviceToken != "" }

// SetDefaultLang changes the notification language.
func (u *User) SetDefaultLang(lang Lang) error {
	parsed, err := ParseLang(string(lang))
	if err != nil {
		return err
	}
	u.defaultLang = parsed
	return nil
}

// SetDeviceToken overwrites the push token, as happens on every login.
func (u *User) SetDeviceToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errs.NewValueIsRequiredError("device token")
	}
	u.deviceToken = token
	return nil
}

// ClearDeviceToken forgets the push token, as happens on logout.
func (u *User) ClearDeviceToken() {
	u.deviceToken = ""
}

// ToggleCourier switches a customer to courier and back. Staff accounts are
// left untouched and yield an error wrapping ErrRoleNotToggleable.
func (u *User) ToggleCourier() error {
	switch u.role {
	case Simple:
		u.role = Traitor
	case Traitor:
		u.role = Simple
	default:
		return fmt.Errorf("%w: %s", ErrRoleNotToggleable, u.role)
	}
	return nil
}
