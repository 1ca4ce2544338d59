package rule

import (
	"fmt"
	"math"
	"strings"
	"time"

	"sncleaning-pricing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	SecondsPerDay    = 24 * secondsPerHour
)

// ClockTime is a wall-clock time of day held as seconds since midnight.
// Values past SecondsPerDay only arise as booking end times that run into
// the next day.
type ClockTime int

func NewClockTime(hour, minute int) (ClockTime, error) {
	c := ClockTime(hour*secondsPerHour + minute*secondsPerMinute)
	if hour < 0 || minute < 0 || minute > 59 || c > SecondsPerDay {
		return 0, ErrInvalidClockTime
	}
	return c, nil
}

// ParseClockTime accepts HH:MM and HH:MM:SS, including 24:00 as end of day.
func ParseClockTime(s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "24:00", "24:00:00":
		return SecondsPerDay, nil
	}

	layout := "15:04"
	if strings.Count(s, ":") == 2 {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, errs.Wrapf(ErrInvalidClockTime, "parse %q", s)
	}
	return ClockTime(t.Hour()*secondsPerHour + t.Minute()*secondsPerMinute + t.Second()), nil
}

func MustClockTime(s string) ClockTime {
	c, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ClockTimeOf returns the time-of-day part of t.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*secondsPerHour + t.Minute()*secondsPerMinute + t.Second())
}

func (c ClockTime) Seconds() int { return int(c) }

// MaxClockTime is the latest representable end of a booking.
const MaxClockTime = ClockTime(math.MaxInt32)

// AddHours moves c forward by a decimal number of hours, rounded to the second.
// The result is not wrapped at midnight and saturates at 0 and MaxClockTime.
func (c ClockTime) AddHours(hours decimal.Decimal) ClockTime {
	end := decimal.NewFromInt(int64(c)).Add(hours.Mul(decimal.NewFromInt(secondsPerHour)).Round(0))
	switch {
	case end.IsNegative():
		return 0
	case end.GreaterThan(decimal.NewFromInt(int64(MaxClockTime))):
		return MaxClockTime
	}
	return ClockTime(end.IntPart())
}

func (c ClockTime) String() string {
	h := int(c) / secondsPerHour
	m := int(c) % secondsPerHour / secondsPerMinute
	s := int(c) % secondsPerMinute
	if s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// Window is a same-day half-open interval [start, end).
type Window struct {
	start ClockTime
	end   ClockTime
}

func NewWindow(start, end ClockTime) (Window, error) {
	if start >= end {
		return Window{}, ErrOvernightWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() ClockTime { return w.start }
func (w Window) End() ClockTime   { return w.end }

func (w Window) Contains(t ClockTime) bool {
	return w.start <= t && t < w.end
}

// Overlaps reports whether [start, end) shares any instant with the window.
func (w Window) Overlaps(start, end ClockTime) bool {
	return start < w.end && w.start < end
}

type Modifier struct {
	amount decimal.Decimal
	kind   ModifierType
}

var hundred = decimal.NewFromInt(100)

func NewModifier(amount decimal.Decimal, kind ModifierType) (Modifier, error) {
	if kind != ModifierFixed && kind != ModifierPercentage {
		return Modifier{}, ErrUnknownModifierType
	}
	return Modifier{amount: amount, kind: kind}, nil
}

func FixedModifier(amount decimal.Decimal) Modifier {
	return Modifier{amount: amount, kind: ModifierFixed}
}

func PercentageModifier(pct decimal.Decimal) Modifier {
	return Modifier{amount: pct, kind: ModifierPercentage}
}

func (m Modifier) Amount() decimal.Decimal { return m.amount }
func (m Modifier) Kind() ModifierType      { return m.kind }

// Apply returns the running total after this modifier. Percentages are taken
// of the running total, so successive modifiers compound.
func (m Modifier) Apply(running decimal.Decimal) decimal.Decimal {
	if m.kind == ModifierPercentage {
		return running.Add(running.Mul(m.amount).Div(hundred))
	}
	return running.Add(m.amount)
}
