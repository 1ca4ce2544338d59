package rule

import (
	"errors"
	"strings"
)

var (
	ErrMalformedRule       = errors.New("malformed scheduling rule")
	ErrUnknownRuleType     = errors.New("unknown rule type")
	ErrUnknownModifierType = errors.New("unknown modifier type")
	ErrInvalidClockTime    = errors.New("invalid clock time")
	ErrOvernightWindow     = errors.New("window start must be before its end")
	ErrInvalidDayOfWeek    = errors.New("day of week must be between 0 and 6")
	ErrMissingStartTime    = errors.New("start time is required")
	ErrMissingEndTime      = errors.New("end time is required")
	ErrMissingDayOfWeek    = errors.New("day of week is required")
)

type Type string

const (
	TypeTimeSlot       Type = "time_slot"
	TypeDayPricing     Type = "day_pricing"
	TypeCutoffTime     Type = "cutoff_time"
	TypeOvertimeWindow Type = "overtime_window"
	TypeTimeSurcharge  Type = "time_surcharge"
)

// AllTypes lists every rule type in the order the admin listing groups them.
func AllTypes() []Type {
	return []Type{TypeTimeSlot, TypeDayPricing, TypeCutoffTime, TypeOvertimeWindow, TypeTimeSurcharge}
}

func ParseType(s string) (Type, error) {
	t := Type(strings.TrimSpace(s))
	if !t.IsValid() {
		return "", ErrUnknownRuleType
	}
	return t, nil
}

func (t Type) IsValid() bool {
	switch t {
	case TypeTimeSlot, TypeDayPricing, TypeCutoffTime, TypeOvertimeWindow, TypeTimeSurcharge:
		return true
	}
	return false
}

func (t Type) String() string { return string(t) }

// HasModifier reports whether rules of this type carry a price modifier.
func (t Type) HasModifier() bool {
	return t == TypeDayPricing || t == TypeOvertimeWindow || t == TypeTimeSurcharge
}

type ModifierType string

const (
	ModifierFixed      ModifierType = "fixed"
	ModifierPercentage ModifierType = "percentage"
)

// ParseModifierType treats an empty value as fixed, matching the column default.
func ParseModifierType(s string) (ModifierType, error) {
	switch ModifierType(strings.TrimSpace(s)) {
	case "", ModifierFixed:
		return ModifierFixed, nil
	case ModifierPercentage:
		return ModifierPercentage, nil
	}
	return "", ErrUnknownModifierType
}

func (m ModifierType) String() string { return string(m) }
