package order

import (
	"fmt"

	"commandes/internal/pkg/errs"
)

// ErrInvalidStatus is wrapped by every rejected status value or transition.
var ErrInvalidStatus = errs.NewValueIsInvalidError("status")

// Status is the lifecycle state of an order.
//
//	waiting ──> paid ──> loading ──> delivered
//	   └──────────┴─────────┴──────> rejected
//
// The diagram is the expected flow only. Which targets an actor may set is
// decided by TransitionMode.
type Status string

const (
	// Waiting is the status of every newly created order.
	Waiting Status = "waiting"
	// Paid means the payment capture was accepted by staff.
	Paid Status = "paid"
	// Loading means a courier picked the order up.
	Loading Status = "loading"
	// Delivered is terminal.
	Delivered Status = "delivered"
	// Rejected is terminal.
	Rejected Status = "rejected"
)

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Waiting, Paid, Loading, Delivered, Rejected}
}

// ParseStatus converts raw input (request payloads, database rows) into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate rejects values outside the five-value enum.
func (s Status) Validate() error {
	switch s {
	case Waiting, Paid, Loading, Delivered, Rejected:
		return nil
	default:
		return fmt.Errorf("%w: %q is not a valid status", ErrInvalidStatus, string(s))
	}
}

// IsTerminal reports whether no further transition is expected.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Rejected
}

func (s Status) String() string {
	return string(s)
}
