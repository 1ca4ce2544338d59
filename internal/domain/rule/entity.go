package rule

import (
	"time"

	"github.com/google/uuid"
)

// Meta holds the attributes every scheduling rule carries regardless of type.
type Meta struct {
	ID           uuid.UUID
	Label        string
	Active       bool
	DisplayOrder int
}

// Rule is one of TimeSlotRule, DayPricingRule, CutoffTimeRule,
// OvertimeWindowRule or TimeSurchargeRule.
type Rule interface {
	Meta() Meta
	Type() Type
	sealed()
}

// TimeSlotRule opens a window in which bookings may start.
type TimeSlotRule struct {
	meta   Meta
	window Window
}

func NewTimeSlotRule(meta Meta, window Window) *TimeSlotRule {
	return &TimeSlotRule{meta: meta, window: window}
}

func (r *TimeSlotRule) Meta() Meta     { return r.meta }
func (r *TimeSlotRule) Type() Type     { return TypeTimeSlot }
func (r *TimeSlotRule) Window() Window { return r.window }
func (*TimeSlotRule) sealed()          {}

// DayPricingRule adjusts the price of bookings on one weekday.
type DayPricingRule struct {
	meta     Meta
	weekday  time.Weekday
	modifier Modifier
}

func NewDayPricingRule(meta Meta, weekday time.Weekday, modifier Modifier) (*DayPricingRule, error) {
	if weekday < time.Sunday || weekday > time.Saturday {
		return nil, ErrInvalidDayOfWeek
	}
	return &DayPricingRule{meta: meta, weekday: weekday, modifier: modifier}, nil
}

func (r *DayPricingRule) Meta() Meta            { return r.meta }
func (r *DayPricingRule) Type() Type            { return TypeDayPricing }
func (r *DayPricingRule) Weekday() time.Weekday { return r.weekday }
func (r *DayPricingRule) Modifier() Modifier    { return r.modifier }
func (*DayPricingRule) sealed()                 {}

// CutoffTimeRule marks the end of normal working hours.
type CutoffTimeRule struct {
	meta   Meta
	cutoff ClockTime
}

func NewCutoffTimeRule(meta Meta, cutoff ClockTime) *CutoffTimeRule {
	return &CutoffTimeRule{meta: meta, cutoff: cutoff}
}

func (r *CutoffTimeRule) Meta() Meta        { return r.meta }
func (r *CutoffTimeRule) Type() Type        { return TypeCutoffTime }
func (r *CutoffTimeRule) Cutoff() ClockTime { return r.cutoff }
func (*CutoffTimeRule) sealed()             {}

// OvertimeWindowRule carries the surcharge for bookings that end after the cutoff.
type OvertimeWindowRule struct {
	meta     Meta
	window   Window
	modifier Modifier
}

func NewOvertimeWindowRule(meta Meta, window Window, modifier Modifier) *OvertimeWindowRule {
	return &OvertimeWindowRule{meta: meta, window: window, modifier: modifier}
}

func (r *OvertimeWindowRule) Meta() Meta         { return r.meta }
func (r *OvertimeWindowRule) Type() Type         { return TypeOvertimeWindow }
func (r *OvertimeWindowRule) Window() Window     { return r.window }
func (r *OvertimeWindowRule) Modifier() Modifier { return r.modifier }
func (*OvertimeWindowRule) sealed()              {}

// TimeSurchargeRule adjusts the price of bookings that overlap its window.
type TimeSurchargeRule struct {
	meta     Meta
	window   Window
	modifier Modifier
}

func NewTimeSurchargeRule(meta Meta, window Window, modifier Modifier) *TimeSurchargeRule {
	return &TimeSurchargeRule{meta: meta, window: window, modifier: modifier}
}

func (r *TimeSurchargeRule) Meta() Meta         { return r.meta }
func (r *TimeSurchargeRule) Type() Type         { return TypeTimeSurcharge }
func (r *TimeSurchargeRule) Window() Window     { return r.window }
func (r *TimeSurchargeRule) Modifier() Modifier { return r.modifier }
func (*TimeSurchargeRule) sealed()              {}
