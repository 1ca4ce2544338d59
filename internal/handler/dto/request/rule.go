package request

import (
	"strings"

	"sncleaning-pricing/internal/domain/rule"
	"sncleaning-pricing/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RuleRequest struct {
	RuleType      string           `json:"ruleType" binding:"required"`
	StartTime     *string          `json:"startTime,omitempty"`
	EndTime       *string          `json:"endTime,omitempty"`
	DayOfWeek     *int             `json:"dayOfWeek,omitempty"`
	PriceModifier *decimal.Decimal `json:"priceModifier,omitempty"`
	ModifierType  string           `json:"modifierType,omitempty"`
	Label         string           `json:"label" binding:"required,max=100"`
	IsActive      *bool            `json:"isActive,omitempty"`
	DisplayOrder  int              `json:"displayOrder" binding:"min=0,max=2147483647"`
}

// ToInput leaves type checks to the rule decoder so that admin writes and
// evaluation agree on what a valid rule is. Rules are active unless stated.
func (r *RuleRequest) ToInput() commands.RuleInput {
	in := commands.RuleInput{
		Type:          rule.Type(strings.TrimSpace(r.RuleType)),
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		DayOfWeek:     r.DayOfWeek,
		PriceModifier: decimal.Zero,
		ModifierType:  rule.ModifierType(strings.TrimSpace(r.ModifierType)),
		Label:         r.Label,
		IsActive:      true,
		DisplayOrder:  r.DisplayOrder,
	}
	if r.PriceModifier != nil {
		in.PriceModifier = *r.PriceModifier
	}
	if r.IsActive != nil {
		in.IsActive = *r.IsActive
	}
	return in
}

type ListRulesQuery struct {
	Type       string `form:"type"`
	ActiveOnly bool   `form:"activeOnly,default=true"`
}

// RuleType returns nil when no type filter was given.
func (q *ListRulesQuery) RuleType() (*rule.Type, error) {
	if strings.TrimSpace(q.Type) == "" {
		return nil, nil
	}
	t, err := rule.ParseType(q.Type)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type ReorderRulesRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}
