package quote

import (
	"sncleaning-pricing/internal/domain/override"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const pricePlaces = 2

// CheckSlot decides bookability. With no time slots configured every start
// time is accepted. A booking ending after the cutoff is flagged as overtime,
// not rejected.
func CheckSlot(set RuleSet, req Request) (Slot, error) {
	if err := req.Validate(); err != nil {
		return Slot{}, err
	}

	slot := Slot{Start: req.StartTime, End: req.End()}

	if slots := set.TimeSlots(); len(slots) > 0 {
		inside := false
		for _, ts := range slots {
			if ts.Window().Contains(slot.Start) {
				inside = true
				break
			}
		}
		if !inside {
			slot.Reason = RejectionOutsideAvailableHours
			return slot, nil
		}
	}

	if cutoff := set.Cutoff(); cutoff != nil && slot.End > cutoff.Cutoff() {
		slot.Overtime = true
	}
	slot.Bookable = true
	return slot, nil
}

// Price composes the final price of a bookable slot: rate times hours, then
// day pricing, time surcharges and the overtime surcharge, each applied to
// the running total in display order.
func Price(set RuleSet, req Request, slot Slot, rate override.Resolution) Quote {
	base := rate.Rate.Mul(req.DurationHours)
	running := base
	applied := []uuid.UUID{}

	weekday := req.Date.Weekday()
	for _, dp := range set.DayPricing() {
		if dp.Weekday() != weekday {
			continue
		}
		running = dp.Modifier().Apply(running)
		applied = append(applied, dp.Meta().ID)
	}

	for _, sc := range set.Surcharges() {
		if !sc.Window().Overlaps(slot.Start, slot.End) {
			continue
		}
		running = sc.Modifier().Apply(running)
		applied = append(applied, sc.Meta().ID)
	}

	if slot.Overtime {
		if ot := set.OvertimeWindow(); ot != nil {
			running = ot.Modifier().Apply(running)
			applied = append(applied, ot.Meta().ID)
		}
	}

	if running.IsNegative() {
		running = decimal.Zero
	}

	return Quote{
		IsBookable:          true,
		IsOvertime:          slot.Overtime,
		FinalPrice:          running.Round(pricePlaces),
		AppliedRuleIDs:      applied,
		RejectionReason:     RejectionNone,
		EffectiveHourlyRate: rate.Rate,
		BasePrice:           base.Round(pricePlaces),
		RateOverrideApplied: rate.Applied,
	}
}

// Evaluate runs the schedule check and, for bookable slots, prices the booking
// at the given rate.
func Evaluate(set RuleSet, req Request, rate override.Resolution) (Quote, error) {
	slot, err := CheckSlot(set, req)
	if err != nil {
		return Quote{}, err
	}
	if !slot.Bookable {
		return Rejected(slot), nil
	}
	return Price(set, req, slot, rate), nil
}
