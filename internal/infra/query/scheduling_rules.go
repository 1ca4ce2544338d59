package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const schedulingRuleColumns = `id, rule_type, start_time::text, end_time::text, day_of_week::int,
	price_modifier::text, modifier_type, label, is_active, display_order, created_at, updated_at`

func scanSchedulingRule(row interface{ Scan(dest ...any) error }) (SchedulingRule, error) {
	var i SchedulingRule
	err := row.Scan(
		&i.ID,
		&i.RuleType,
		&i.StartTime,
		&i.EndTime,
		&i.DayOfWeek,
		&i.PriceModifier,
		&i.ModifierType,
		&i.Label,
		&i.IsActive,
		&i.DisplayOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listSchedulingRules = `SELECT ` + schedulingRuleColumns + `
FROM scheduling_rules
WHERE rule_type = $1
  AND ($2::bool = false OR is_active)
ORDER BY display_order, created_at, id`

type ListSchedulingRulesParams struct {
	RuleType   string
	ActiveOnly bool
}

func (q *Queries) ListSchedulingRules(ctx context.Context, db DBTX, arg ListSchedulingRulesParams) ([]SchedulingRule, error) {
	rows, err := db.Query(ctx, listSchedulingRules, arg.RuleType, arg.ActiveOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []SchedulingRule{}
	for rows.Next() {
		i, err := scanSchedulingRule(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getSchedulingRule = `SELECT ` + schedulingRuleColumns + `
FROM scheduling_rules
WHERE id = $1`

func (q *Queries) GetSchedulingRule(ctx context.Context, db DBTX, id uuid.UUID) (SchedulingRule, error) {
	return scanSchedulingRule(db.QueryRow(ctx, getSchedulingRule, id))
}

const createSchedulingRule = `INSERT INTO scheduling_rules (
	id, rule_type, start_time, end_time, day_of_week,
	price_modifier, modifier_type, label, is_active, display_order, created_at, updated_at
) VALUES (
	$1, $2, $3::text::time, $4::text::time, $5::int,
	$6::text::numeric, $7, $8, $9, $10, $11, $12
)`

type CreateSchedulingRuleParams struct {
	ID            uuid.UUID
	RuleType      string
	StartTime     pgtype.Text
	EndTime       pgtype.Text
	DayOfWeek     pgtype.Int4
	PriceModifier string
	ModifierType  string
	Label         string
	IsActive      bool
	DisplayOrder  int32
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) CreateSchedulingRule(ctx context.Context, db DBTX, arg CreateSchedulingRuleParams) error {
	_, err := db.Exec(ctx, createSchedulingRule,
		arg.ID,
		arg.RuleType,
		arg.StartTime,
		arg.EndTime,
		arg.DayOfWeek,
		arg.PriceModifier,
		arg.ModifierType,
		arg.Label,
		arg.IsActive,
		arg.DisplayOrder,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateSchedulingRule = `UPDATE scheduling_rules SET
	rule_type = $2,
	start_time = $3::text::time,
	end_time = $4::text::time,
	day_of_week = $5::int,
	price_modifier = $6::text::numeric,
	modifier_type = $7,
	label = $8,
	is_active = $9,
	display_order = $10,
	updated_at = $11
WHERE id = $1`

type UpdateSchedulingRuleParams struct {
	ID            uuid.UUID
	RuleType      string
	StartTime     pgtype.Text
	EndTime       pgtype.Text
	DayOfWeek     pgtype.Int4
	PriceModifier string
	ModifierType  string
	Label         string
	IsActive      bool
	DisplayOrder  int32
	UpdatedAt     pgtype.Timestamptz
}

func (q *Queries) UpdateSchedulingRule(ctx context.Context, db DBTX, arg UpdateSchedulingRuleParams) (int64, error) {
	tag, err := db.Exec(ctx, updateSchedulingRule,
		arg.ID,
		arg.RuleType,
		arg.StartTime,
		arg.EndTime,
		arg.DayOfWeek,
		arg.PriceModifier,
		arg.ModifierType,
		arg.Label,
		arg.IsActive,
		arg.DisplayOrder,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const updateSchedulingRuleDisplayOrder = `UPDATE scheduling_rules
SET display_order = $2, updated_at = now()
WHERE id = $1`

func (q *Queries) UpdateSchedulingRuleDisplayOrder(ctx context.Context, db DBTX, id uuid.UUID, displayOrder int32) (int64, error) {
	tag, err := db.Exec(ctx, updateSchedulingRuleDisplayOrder, id, displayOrder)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteSchedulingRule = `DELETE FROM scheduling_rules WHERE id = $1`

func (q *Queries) DeleteSchedulingRule(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteSchedulingRule, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
