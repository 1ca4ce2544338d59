package quote

import (
	"errors"
	"time"

	"sncleaning-pricing/internal/domain/rule"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidDuration = errors.New("duration must be greater than zero")

type RejectionReason string

const (
	RejectionNone                  RejectionReason = ""
	RejectionOutsideAvailableHours RejectionReason = "outside_available_hours"
)

// Request is a candidate booking. Only the calendar date of Date is used.
type Request struct {
	Date          time.Time
	StartTime     rule.ClockTime
	DurationHours decimal.Decimal
}

func (r Request) Validate() error {
	if !r.DurationHours.IsPositive() {
		return ErrInvalidDuration
	}
	return nil
}

// End is the booking end on the booking day's clock, so a booking that runs
// past midnight ends after 24:00.
func (r Request) End() rule.ClockTime {
	return r.StartTime.AddHours(r.DurationHours)
}

// Slot is the outcome of the schedule check.
type Slot struct {
	Bookable bool
	Overtime bool
	Reason   RejectionReason
	Start    rule.ClockTime
	End      rule.ClockTime
}

type Quote struct {
	IsBookable          bool
	IsOvertime          bool
	FinalPrice          decimal.Decimal
	AppliedRuleIDs      []uuid.UUID
	RejectionReason     RejectionReason
	EffectiveHourlyRate decimal.Decimal
	BasePrice           decimal.Decimal
	RateOverrideApplied bool
}

// Rejected is the quote for a slot that failed the schedule check. It
// carries no price.
func Rejected(slot Slot) Quote {
	return Quote{
		IsBookable:          false,
		IsOvertime:          slot.Overtime,
		FinalPrice:          decimal.Zero,
		AppliedRuleIDs:      []uuid.UUID{},
		RejectionReason:     slot.Reason,
		EffectiveHourlyRate: decimal.Zero,
		BasePrice:           decimal.Zero,
	}
}
