package converter

import (
	"sncleaning-pricing/internal/domain/rule"
	"sncleaning-pricing/internal/infra/query"
	"sncleaning-pricing/internal/pkg/pgconv"
)

// RuleFromRow keeps the row loose; typing happens in rule.Decode so that
// one bad row does not fail a whole listing.
func RuleFromRow(row query.SchedulingRule) (rule.Record, error) {
	modifier, err := pgconv.DecimalFromText(row.PriceModifier)
	if err != nil {
		return rule.Record{}, err
	}
	return rule.Record{
		ID:            row.ID,
		Type:          rule.Type(row.RuleType),
		StartTime:     pgconv.StringPtrFromPgtype(row.StartTime),
		EndTime:       pgconv.StringPtrFromPgtype(row.EndTime),
		DayOfWeek:     pgconv.IntPtrFromPgtype(row.DayOfWeek),
		PriceModifier: modifier,
		ModifierType:  rule.ModifierType(row.ModifierType),
		Label:         row.Label,
		IsActive:      row.IsActive,
		DisplayOrder:  int(row.DisplayOrder),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func RuleToCreateParams(rec rule.Record) query.CreateSchedulingRuleParams {
	return query.CreateSchedulingRuleParams{
		ID:            rec.ID,
		RuleType:      rec.Type.String(),
		StartTime:     pgconv.StringPtrToPgtype(rec.StartTime),
		EndTime:       pgconv.StringPtrToPgtype(rec.EndTime),
		DayOfWeek:     pgconv.IntPtrToPgtype(rec.DayOfWeek),
		PriceModifier: rec.PriceModifier.String(),
		ModifierType:  rec.ModifierType.String(),
		Label:         rec.Label,
		IsActive:      rec.IsActive,
		DisplayOrder:  int32(rec.DisplayOrder), // #nosec G115 -- RuleRequest binds displayOrder with max=MaxInt32
		CreatedAt:     pgconv.TimeToPgtype(rec.CreatedAt),
		UpdatedAt:     pgconv.TimeToPgtype(rec.UpdatedAt),
	}
}

func RuleToUpdateParams(rec rule.Record) query.UpdateSchedulingRuleParams {
	return query.UpdateSchedulingRuleParams{
		ID:            rec.ID,
		RuleType:      rec.Type.String(),
		StartTime:     pgconv.StringPtrToPgtype(rec.StartTime),
		EndTime:       pgconv.StringPtrToPgtype(rec.EndTime),
		DayOfWeek:     pgconv.IntPtrToPgtype(rec.DayOfWeek),
		PriceModifier: rec.PriceModifier.String(),
		ModifierType:  rec.ModifierType.String(),
		Label:         rec.Label,
		IsActive:      rec.IsActive,
		DisplayOrder:  int32(rec.DisplayOrder), // #nosec G115 -- RuleRequest binds displayOrder with max=MaxInt32
		UpdatedAt:     pgconv.TimeToPgtype(rec.UpdatedAt),
	}
}
