package snapshot

import (
	"time"

	"sncleaning-pricing/internal/domain/override"
	"sncleaning-pricing/internal/domain/rule"
	"sncleaning-pricing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type file struct {
	Rules     []ruleEntry     `yaml:"rules"`
	Overrides []overrideEntry `yaml:"overrides"`
}

type ruleEntry struct {
	ID            string  `yaml:"id"`
	Type          string  `yaml:"type"`
	StartTime     *string `yaml:"start_time"`
	EndTime       *string `yaml:"end_time"`
	DayOfWeek     *int    `yaml:"day_of_week"`
	PriceModifier string  `yaml:"price_modifier"`
	ModifierType  string  `yaml:"modifier_type"`
	Label         string  `yaml:"label"`
	Active        *bool   `yaml:"active"`
	DisplayOrder  int     `yaml:"display_order"`
}

type overrideEntry struct {
	ID           string  `yaml:"id"`
	CustomerID   string  `yaml:"customer_id"`
	ServiceType  string  `yaml:"service_type"`
	CleaningType *string `yaml:"cleaning_type"`
	OverrideRate string  `yaml:"override_rate"`
}

// Parse reads a YAML snapshot. Rule records are kept as written, so a
// malformed rule is reported at evaluation time like any stored rule.
// Overrides are validated here.
func Parse(data []byte) (*Store, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errs.Wrap(err, "parse rules snapshot")
	}

	loadedAt := time.Now()

	records := make([]rule.Record, 0, len(f.Rules))
	for i, e := range f.Rules {
		id, err := parseID(e.ID)
		if err != nil {
			return nil, errs.Wrapf(err, "rules[%d].id", i)
		}
		modifier := decimal.Zero
		if e.PriceModifier != "" {
			if modifier, err = decimal.NewFromString(e.PriceModifier); err != nil {
				return nil, errs.Wrapf(err, "rules[%d].price_modifier", i)
			}
		}
		active := true
		if e.Active != nil {
			active = *e.Active
		}
		records = append(records, rule.Record{
			ID:            id,
			Type:          rule.Type(e.Type),
			StartTime:     e.StartTime,
			EndTime:       e.EndTime,
			DayOfWeek:     e.DayOfWeek,
			PriceModifier: modifier,
			ModifierType:  rule.ModifierType(e.ModifierType),
			Label:         e.Label,
			IsActive:      active,
			DisplayOrder:  e.DisplayOrder,
			CreatedAt:     loadedAt,
			UpdatedAt:     loadedAt,
		})
	}

	overrides := make([]*override.PricingOverride, 0, len(f.Overrides))
	for i, e := range f.Overrides {
		id, err := parseID(e.ID)
		if err != nil {
			return nil, errs.Wrapf(err, "overrides[%d].id", i)
		}
		customerID, err := uuid.Parse(e.CustomerID)
		if err != nil {
			return nil, errs.Wrapf(err, "overrides[%d].customer_id", i)
		}
		rate, err := decimal.NewFromString(e.OverrideRate)
		if err != nil {
			return nil, errs.Wrapf(err, "overrides[%d].override_rate", i)
		}
		o, err := override.NewPricingOverride(id, customerID, e.ServiceType, e.CleaningType, rate, loadedAt)
		if err != nil {
			return nil, errs.Wrapf(err, "overrides[%d]", i)
		}
		overrides = append(overrides, o)
	}

	return New(records, overrides), nil
}

func parseID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.New(), nil
	}
	return uuid.Parse(s)
}
