package response

import (
	"time"

	"sncleaning-pricing/internal/domain/override"
	"sncleaning-pricing/internal/domain/rule"
	"sncleaning-pricing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// RuleResponse mirrors rule.Record field by field. Type is named after the
// record field so the mapper can pair them.
type RuleResponse struct {
	ID            uuid.UUID `json:"id"`
	Type          string    `json:"ruleType"`
	StartTime     *string   `json:"startTime,omitempty"`
	EndTime       *string   `json:"endTime,omitempty"`
	DayOfWeek     *int      `json:"dayOfWeek,omitempty"`
	PriceModifier string    `json:"priceModifier"`
	ModifierType  string    `json:"modifierType"`
	Label         string    `json:"label"`
	IsActive      bool      `json:"isActive"`
	DisplayOrder  int       `json:"displayOrder"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromRule(rec *rule.Record) (*RuleResponse, error) {
	res := &RuleResponse{}
	if err := copier.CopyWithOption(res, rec, amountOption); err != nil {
		return nil, errs.Wrap(err, "map rule response")
	}
	return res, nil
}

func FromRules(recs []rule.Record) ([]RuleResponse, error) {
	res := make([]RuleResponse, 0, len(recs))
	if err := copier.CopyWithOption(&res, &recs, amountOption); err != nil {
		return nil, errs.Wrap(err, "map rule list response")
	}
	return res, nil
}

type OverrideResponse struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customerId"`
	ServiceType  string    `json:"serviceType"`
	CleaningType *string   `json:"cleaningType"`
	OverrideRate string    `json:"overrideRate"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromOverride(o *override.PricingOverride) *OverrideResponse {
	return &OverrideResponse{
		ID:           o.ID(),
		CustomerID:   o.CustomerID(),
		ServiceType:  o.ServiceType(),
		CleaningType: o.CleaningType(),
		OverrideRate: o.OverrideRate().StringFixed(2),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}

func FromOverrides(items []*override.PricingOverride) []*OverrideResponse {
	res := make([]*OverrideResponse, len(items))
	for i, o := range items {
		res[i] = FromOverride(o)
	}
	return res
}
