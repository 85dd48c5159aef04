package agent

import (
	"fmt"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// Status gates new assignments.
//
//	AVAILABLE ──(assignment)──> BUSY ──(delivery)──> AVAILABLE
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Available agents can be assigned an order.
	Available

	// Busy agents are out with an order.
	Busy
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Available: "AVAILABLE",
		Busy:      "BUSY",
	}
}

// ParseStatus matches names case-insensitively.
//
// Returns:
//   - Available or Busy and nil
//   - (Unknown, errs.ErrValueIsInvalid) for any other name
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	switch normalized {
	case "AVAILABLE":
		return Available, nil
	case "BUSY":
		return Busy, nil
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid agent status", s))
}

func (s Status) Validate() error {
	if s != Available && s != Busy {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid agent status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
