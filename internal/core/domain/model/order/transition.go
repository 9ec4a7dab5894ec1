package order

import (
	"fmt"

	"commandes/internal/pkg/errs"
)

// TransitionMode selects the whitelist of target statuses for a status change.
type TransitionMode int

const (
	// Administrative is used by staff; every status is a valid target.
	Administrative TransitionMode = iota + 1
	// Courier is used by the delivering courier; only loading and delivered.
	Courier
)

//nolint:gochecknoglobals // read-only lookup table
var allowedTargets = map[TransitionMode]map[Status]struct{}{
	Administrative: {
		Waiting:   {},
		Paid:      {},
		Loading:   {},
		Delivered: {},
		Rejected:  {},
	},
	Courier: {
		Loading:   {},
		Delivered: {},
	},
}

// Validate rejects unknown modes.
func (m TransitionMode) Validate() error {
	if _, ok := allowedTargets[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("mode", fmt.Errorf("%d is not a valid transition mode", m))
	}
	return nil
}

// Allows reports whether target may be set in this mode. The current status
// of the order plays no part.
func (m TransitionMode) Allows(target Status) bool {
	_, ok := allowedTargets[m][target]
	return ok
}

// AllowedTargets lists the permitted targets in lifecycle order.
func (m TransitionMode) AllowedTargets() []Status {
	targets := make([]Status, 0, len(allowedTargets[m]))
	for _, s := range Statuses() {
		if m.Allows(s) {
			targets = append(targets, s)
		}
	}
	return targets
}

func (m TransitionMode) String() string {
	switch m {
	case Administrative:
		return "administrative"
	case Courier:
		return "courier"
	default:
		return "unknown"
	}
}
