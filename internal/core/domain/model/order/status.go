package order

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status is the lifecycle state of an order. The progression is linear:
//
//	PLACED ──> OUT_FOR_DELIVERY ──> DELIVERED
//
// Only PLACED orders can be handed to an agent. Delivery is not guarded:
// marking an order DELIVERED succeeds from any state, including DELIVERED.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Placed is the state of a freshly checked-out order waiting for an agent.
	Placed

	// OutForDelivery means an agent has been assigned and is on the way.
	OutForDelivery

	// Delivered is terminal.
	Delivered
)

// ErrOrderNotPlaced is returned when assigning an agent to an order that is
// no longer waiting in PLACED.
var ErrOrderNotPlaced = errs.NewRuleViolationError("invalid assignment", "order is not in PLACED status")

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Placed:         "PLACED",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:         "PLACED",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
	}
}

// ParseStatus reads a stored or client supplied status. Matching ignores
// case and treats spaces and hyphens as underscores, so "Placed", "PLACED"
// and "out for delivery" are all accepted.
//
// Returns:
//   - the matching Status and nil
//   - (Unknown, errs.ErrValueIsInvalid) for anything else, "UNKNOWN" included
//
// Example:
//
//	status, err := order.ParseStatus(row.Status)
//	if err != nil {
//	    return nil, err
//	}
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)

	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of PLACED, OUT_FOR_DELIVERY or
// DELIVERED.
//
// Returns:
//   - nil for a valid status
//   - errs.ErrValueIsInvalid for Unknown (0) and out-of-range values
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical upper-case name used in storage and on the
// wire. It is safe to call on invalid values, which render as "UNKNOWN".
//
// Example:
//
//	fmt.Println(order.OutForDelivery) // Output: OUT_FOR_DELIVERY
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are expected.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ValidateAssign checks that an agent may be assigned in this state,
// without performing the transition.
//
// Only PLACED orders are assignable. An OUT_FOR_DELIVERY order is never
// reassigned.
//
// Returns:
//   - nil when the status is PLACED
//   - ErrOrderNotPlaced, a rule violation, otherwise
//
// Example:
//
//	if err := o.Status().ValidateAssign(); err != nil {
//	    return err
//	}
func (s Status) ValidateAssign() error {
	if s != Placed {
		return ErrOrderNotPlaced.WithReason("order is %s, expected %s", s, Placed)
	}
	return nil
}

// ValidateCanHaveAgent checks the consistency between state and agent link.
// Orders loaded from storage are checked with it.
//
// Rules:
//   - PLACED orders must not have an agent
//   - OUT_FOR_DELIVERY orders must have an agent
//   - DELIVERED orders may have one or not, since delivery proceeds without
//     a linked agent
//
// Parameters:
//   - hasAgent: whether the order carries an agent id
//
// Returns:
//   - errs.ErrValueIsInvalid when status and link disagree
func (s Status) ValidateCanHaveAgent(hasAgent bool) error {
	if hasAgent && s == Placed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have an agent", s),
		)
	}

	if !hasAgent && s == OutForDelivery {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no agent", s),
		)
	}

	return nil
}

// Dispatch transitions PLACED to OUT_FOR_DELIVERY.
//
// Returns:
//   - (OutForDelivery, nil) from PLACED
//   - (Unknown, ErrOrderNotPlaced) from any other state
func (s Status) Dispatch() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return Unknown, err
	}
	return OutForDelivery, nil
}

// Deliver transitions any state to DELIVERED. There is no guard: an order
// that is already DELIVERED stays DELIVERED.
func (s Status) Deliver() Status {
	return Delivered
}
