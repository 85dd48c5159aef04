package agent

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrNameIsRequired        = errs.NewValueIsRequiredError("name")
	ErrCodeIsRequired        = errs.NewValueIsRequiredError("agent code")
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")

	// ErrAgentNotAvailable is returned when a busy agent is asked to take an
	// order. It shares its rule with order.ErrOrderNotPlaced.
	ErrAgentNotAvailable = errs.NewRuleViolationError("invalid assignment", "agent is not AVAILABLE")
)

// MaxRating is the upper bound of the customer rating scale.
const MaxRating = 5.0

// Agent is the aggregate root for a delivery agent.
type Agent struct {
	id              kernel.UUID
	code            string
	name            string
	phone           string
	email           string
	status          Status
	totalDeliveries int
	totalEarnings   kernel.Money
	todaysEarning   kernel.Money
	rating          float64
	version         int64
	guard           guard.ConstructorGuard
}

// NewAgent registers an available agent with no deliveries or earnings.
func NewAgent(id kernel.UUID, code, name, phone, email string) (*Agent, error) {
	a := &Agent{
		phone:         strings.TrimSpace(phone),
		email:         strings.TrimSpace(email),
		status:        Available,
		totalEarnings: kernel.ZeroMoney(),
		todaysEarning: kernel.ZeroMoney(),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setCode(code),
		a.setName(name),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Snapshot is the persisted state of an agent.
type Snapshot struct {
	ID              kernel.UUID
	Code            string
	Name            string
	Phone           string
	Email           string
	Status          Status
	TotalDeliveries int
	TotalEarnings   kernel.Money
	TodaysEarning   kernel.Money
	Rating          float64
	Version         int64
}

// ValidateRating checks a customer rating against the 0 to MaxRating scale.
//
// Returns:
//   - nil when 0 <= rating <= MaxRating
//   - errs.ErrValueIsOutOfRange otherwise
func ValidateRating(rating float64) error {
	if rating < 0 || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, 0, MaxRating)
	}
	return nil
}

// RestoreAgent rebuilds an agent from storage. Callers validate the stored
// values first; see ValidateRating.
func RestoreAgent(s Snapshot) *Agent {
	return &Agent{
		id:              s.ID,
		code:            s.Code,
		name:            s.Name,
		phone:           s.Phone,
		email:           s.Email,
		status:          s.Status,
		totalDeliveries: s.TotalDeliveries,
		totalEarnings:   s.TotalEarnings,
		todaysEarning:   s.TodaysEarning,
		rating:          s.Rating,
		version:         s.Version,
		guard:           guard.NewConstructorGuard(),
	}
}

func (a *Agent) Validate() error {
	if a == nil {
		return ErrAgentIsNotConstructed
	}
	return a.guard.Validate(ErrAgentIsNotConstructed)
}

func (a *Agent) ID() kernel.UUID {
	return a.id
}

// Code is the human-facing agent code (e.g. "AG-0042").
func (a *Agent) Code() string {
	return a.code
}

func (a *Agent) Name() string {
	return a.name
}

func (a *Agent) Phone() string {
	return a.phone
}

func (a *Agent) Email() string {
	return a.email
}

func (a *Agent) Status() Status {
	return a.status
}

func (a *Agent) IsAvailable() bool {
	return a.status == Available
}

func (a *Agent) TotalDeliveries() int {
	return a.totalDeliveries
}

func (a *Agent) TotalEarnings() kernel.Money {
	return a.totalEarnings
}

func (a *Agent) TodaysEarning() kernel.Money {
	return a.todaysEarning
}

func (a *Agent) Rating() float64 {
	return a.rating
}

// Version is the optimistic concurrency token loaded from storage.
func (a *Agent) Version() int64 {
	return a.version
}

// ValidateTakeOrder checks availability without changing state.
func (a *Agent) ValidateTakeOrder() error {
	if a.status != Available {
		return ErrAgentNotAvailable.WithReason("agent %s is %s", a.id, a.status)
	}
	return nil
}

// TakeOrder marks the agent busy with a new delivery.
func (a *Agent) TakeOrder() error {
	if err := a.ValidateTakeOrder(); err != nil {
		return err
	}
	a.status = Busy
	return nil
}

// CompleteDelivery credits the commission to today's and lifetime earnings,
// counts the delivery and makes the agent available again.
func (a *Agent) CompleteDelivery(commission kernel.Money) {
	a.todaysEarning = a.todaysEarning.Add(commission)
	a.totalEarnings = a.totalEarnings.Add(commission)
	a.totalDeliveries++
	a.status = Available
}

// ResetTodaysEarning starts a new earning day.
func (a *Agent) ResetTodaysEarning() {
	a.todaysEarning = kernel.ZeroMoney()
}

func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agent) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrCodeIsRequired
	}
	a.code = code
	return nil
}

func (a *Agent) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}
