package quote

import (
	"slices"

	"sncleaning-pricing/internal/domain/rule"
)

// RuleSet is the read-only view of the active rules one evaluation runs
// against. Each group is ordered by display order, ties kept in input order.
type RuleSet struct {
	timeSlots  []*rule.TimeSlotRule
	dayPricing []*rule.DayPricingRule
	cutoffs    []*rule.CutoffTimeRule
	overtime   []*rule.OvertimeWindowRule
	surcharges []*rule.TimeSurchargeRule
}

// NewRuleSet groups rules by type. Inactive rules are dropped.
func NewRuleSet(rules []rule.Rule) RuleSet {
	sorted := slices.Clone(rules)
	slices.SortStableFunc(sorted, func(a, b rule.Rule) int {
		return a.Meta().DisplayOrder - b.Meta().DisplayOrder
	})

	var set RuleSet
	for _, r := range sorted {
		if r == nil || !r.Meta().Active {
			continue
		}
		switch v := r.(type) {
		case *rule.TimeSlotRule:
			set.timeSlots = append(set.timeSlots, v)
		case *rule.DayPricingRule:
			set.dayPricing = append(set.dayPricing, v)
		case *rule.CutoffTimeRule:
			set.cutoffs = append(set.cutoffs, v)
		case *rule.OvertimeWindowRule:
			set.overtime = append(set.overtime, v)
		case *rule.TimeSurchargeRule:
			set.surcharges = append(set.surcharges, v)
		}
	}
	return set
}

func (s RuleSet) TimeSlots() []*rule.TimeSlotRule             { return s.timeSlots }
func (s RuleSet) DayPricing() []*rule.DayPricingRule          { return s.dayPricing }
func (s RuleSet) Surcharges() []*rule.TimeSurchargeRule       { return s.surcharges }
func (s RuleSet) OvertimeWindows() []*rule.OvertimeWindowRule { return s.overtime }

// Cutoff returns the cutoff rule in force: the first active one in display
// order, or nil when none is configured.
func (s RuleSet) Cutoff() *rule.CutoffTimeRule {
	if len(s.cutoffs) == 0 {
		return nil
	}
	return s.cutoffs[0]
}

// OvertimeWindow returns the overtime rule in force, chosen the same way as Cutoff.
func (s RuleSet) OvertimeWindow() *rule.OvertimeWindowRule {
	if len(s.overtime) == 0 {
		return nil
	}
	return s.overtime[0]
}
