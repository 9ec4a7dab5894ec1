package user

import (
	"fmt"

	"commandes/internal/core/domain/model/order"
	"commandes/internal/pkg/errs"
)

// Role is the kind of account. It is a permission level, not a separate
// account class.
type Role string

const (
	// Simple is a customer.
	Simple Role = "simple"
	// Traitor is a courier ("livreur").
	Traitor Role = "traitor"
	// Admin is staff.
	Admin Role = "admin"
	// SuperAdmin is staff.
	SuperAdmin Role = "super_admin"
)

// StaffRoles are the roles notified about new orders.
func StaffRoles() []Role {
	return []Role{Admin, SuperAdmin}
}

// ParseRole validates raw input.
func ParseRole(raw string) (Role, error) {
	r := Role(raw)
	switch r {
	case Simple, Traitor, Admin, SuperAdmin:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", raw))
	}
}

// IsStaff reports whether the role is admin or super_admin.
func (r Role) IsStaff() bool {
	return r == Admin || r == SuperAdmin
}

// CanActAs reports whether the role may request status changes in mode.
// Staff may use both modes; couriers only the courier mode.
func (r Role) CanActAs(mode order.TransitionMode) bool {
	switch mode {
	case order.Administrative:
		return r.IsStaff()
	case order.Courier:
		return r == Traitor || r.IsStaff()
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}
