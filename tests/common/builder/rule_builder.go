//go:build unit || e2e

package builder

import (
	"time"

	"sncleaning-pricing/internal/domain/rule"
	"sncleaning-pricing/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RuleBuilder struct {
	ID            uuid.UUID
	Type          rule.Type
	StartTime     *string
	EndTime       *string
	DayOfWeek     *int
	PriceModifier decimal.Decimal
	ModifierType  rule.ModifierType
	Label         string
	IsActive      bool
	DisplayOrder  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewRuleBuilder(t rule.Type) *RuleBuilder {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	b := &RuleBuilder{
		ID:            uuid.New(),
		Type:          t,
		PriceModifier: decimal.Zero,
		ModifierType:  rule.ModifierFixed,
		Label:         string(t),
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	switch t {
	case rule.TypeTimeSlot:
		b.WithWindow("08:00", "18:00")
	case rule.TypeDayPricing:
		b.WithDay(time.Saturday).WithPercentage("15")
	case rule.TypeCutoffTime:
		b.EndTime = ptr.Of("17:00")
	case rule.TypeOvertimeWindow:
		b.WithWindow("17:00", "21:00").WithFixed("10")
	case rule.TypeTimeSurcharge:
		b.WithWindow("06:00", "08:00").WithFixed("5")
	}
	return b
}

func NewTimeSlotBuilder(start, end string) *RuleBuilder {
	return NewRuleBuilder(rule.TypeTimeSlot).WithWindow(start, end)
}

func NewCutoffBuilder(cutoff string) *RuleBuilder {
	return NewRuleBuilder(rule.TypeCutoffTime).WithCutoff(cutoff)
}

func (b *RuleBuilder) With(mutate func(*RuleBuilder)) *RuleBuilder {
	mutate(b)
	return b
}

func (b *RuleBuilder) WithID(id uuid.UUID) *RuleBuilder {
	b.ID = id
	return b
}

func (b *RuleBuilder) WithWindow(start, end string) *RuleBuilder {
	b.StartTime = ptr.Of(start)
	b.EndTime = ptr.Of(end)
	return b
}

func (b *RuleBuilder) WithCutoff(cutoff string) *RuleBuilder {
	b.StartTime = nil
	b.EndTime = ptr.Of(cutoff)
	return b
}

func (b *RuleBuilder) WithDay(d time.Weekday) *RuleBuilder {
	b.DayOfWeek = ptr.Of(int(d))
	return b
}

func (b *RuleBuilder) WithFixed(amount string) *RuleBuilder {
	b.PriceModifier = decimal.RequireFromString(amount)
	b.ModifierType = rule.ModifierFixed
	return b
}

func (b *RuleBuilder) WithPercentage(pct string) *RuleBuilder {
	b.PriceModifier = decimal.RequireFromString(pct)
	b.ModifierType = rule.ModifierPercentage
	return b
}

func (b *RuleBuilder) WithOrder(order int) *RuleBuilder {
	b.DisplayOrder = order
	return b
}

func (b *RuleBuilder) Inactive() *RuleBuilder {
	b.IsActive = false
	return b
}

func (b *RuleBuilder) BuildRecord() rule.Record {
	return rule.Record{
		ID:            b.ID,
		Type:          b.Type,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		DayOfWeek:     b.DayOfWeek,
		PriceModifier: b.PriceModifier,
		ModifierType:  b.ModifierType,
		Label:         b.Label,
		IsActive:      b.IsActive,
		DisplayOrder:  b.DisplayOrder,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *RuleBuilder) BuildDomain() (rule.Rule, error) {
	return rule.Decode(b.BuildRecord())
}

func (b *RuleBuilder) MustBuildDomain() rule.Rule {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}
