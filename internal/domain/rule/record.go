package rule

import (
	"time"

	"sncleaning-pricing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is the loose storage shape of a scheduling rule. Which optional
// fields are meaningful depends on Type.
type Record struct {
	ID            uuid.UUID       `json:"id"`
	Type          Type            `json:"rule_type"`
	StartTime     *string         `json:"start_time,omitempty"`
	EndTime       *string         `json:"end_time,omitempty"`
	DayOfWeek     *int            `json:"day_of_week,omitempty"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
	ModifierType  ModifierType    `json:"modifier_type"`
	Label         string          `json:"label"`
	IsActive      bool            `json:"is_active"`
	DisplayOrder  int             `json:"display_order"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (r Record) meta() Meta {
	return Meta{ID: r.ID, Label: r.Label, Active: r.IsActive, DisplayOrder: r.DisplayOrder}
}

// Decode converts a record into its typed rule. Every failure is marked
// with ErrMalformedRule and keeps the underlying reason in its chain.
func Decode(r Record) (Rule, error) {
	decoded, err := decode(r)
	if err != nil {
		return nil, errs.Mark(errs.Wrapf(err, "rule %s (%s)", r.ID, r.Type), ErrMalformedRule)
	}
	return decoded, nil
}

func decode(r Record) (Rule, error) {
	switch r.Type {
	case TypeTimeSlot:
		w, err := r.window()
		if err != nil {
			return nil, err
		}
		return NewTimeSlotRule(r.meta(), w), nil

	case TypeDayPricing:
		if r.DayOfWeek == nil {
			return nil, ErrMissingDayOfWeek
		}
		m, err := r.modifier()
		if err != nil {
			return nil, err
		}
		return NewDayPricingRule(r.meta(), time.Weekday(*r.DayOfWeek), m)

	case TypeCutoffTime:
		if r.EndTime == nil {
			return nil, ErrMissingEndTime
		}
		cutoff, err := ParseClockTime(*r.EndTime)
		if err != nil {
			return nil, err
		}
		return NewCutoffTimeRule(r.meta(), cutoff), nil

	case TypeOvertimeWindow:
		w, err := r.window()
		if err != nil {
			return nil, err
		}
		m, err := r.modifier()
		if err != nil {
			return nil, err
		}
		return NewOvertimeWindowRule(r.meta(), w, m), nil

	case TypeTimeSurcharge:
		w, err := r.window()
		if err != nil {
			return nil, err
		}
		m, err := r.modifier()
		if err != nil {
			return nil, err
		}
		return NewTimeSurchargeRule(r.meta(), w, m), nil
	}
	return nil, ErrUnknownRuleType
}

func (r Record) window() (Window, error) {
	if r.StartTime == nil {
		return Window{}, ErrMissingStartTime
	}
	if r.EndTime == nil {
		return Window{}, ErrMissingEndTime
	}
	start, err := ParseClockTime(*r.StartTime)
	if err != nil {
		return Window{}, err
	}
	end, err := ParseClockTime(*r.EndTime)
	if err != nil {
		return Window{}, err
	}
	return NewWindow(start, end)
}

func (r Record) modifier() (Modifier, error) {
	kind, err := ParseModifierType(string(r.ModifierType))
	if err != nil {
		return Modifier{}, err
	}
	return NewModifier(r.PriceModifier, kind)
}

// Encode is the inverse of Decode. Times come out in canonical HH:MM form and
// fields the rule type does not use are left empty.
func Encode(r Rule) Record {
	m := r.Meta()
	rec := Record{
		ID:            m.ID,
		Type:          r.Type(),
		Label:         m.Label,
		IsActive:      m.Active,
		DisplayOrder:  m.DisplayOrder,
		PriceModifier: decimal.Zero,
		ModifierType:  ModifierFixed,
	}

	switch v := r.(type) {
	case *TimeSlotRule:
		rec.StartTime, rec.EndTime = windowTimes(v.Window())
	case *DayPricingRule:
		day := int(v.Weekday())
		rec.DayOfWeek = &day
		rec.PriceModifier, rec.ModifierType = v.Modifier().Amount(), v.Modifier().Kind()
	case *CutoffTimeRule:
		end := v.Cutoff().String()
		rec.EndTime = &end
	case *OvertimeWindowRule:
		rec.StartTime, rec.EndTime = windowTimes(v.Window())
		rec.PriceModifier, rec.ModifierType = v.Modifier().Amount(), v.Modifier().Kind()
	case *TimeSurchargeRule:
		rec.StartTime, rec.EndTime = windowTimes(v.Window())
		rec.PriceModifier, rec.ModifierType = v.Modifier().Amount(), v.Modifier().Kind()
	}
	return rec
}

func windowTimes(w Window) (*string, *string) {
	start, end := w.Start().String(), w.End().String()
	return &start, &end
}
