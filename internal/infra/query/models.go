package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Times and decimals travel as text; see the casts in the SQL.

type SchedulingRule struct {
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

type PricingOverride struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	ServiceType  string
	CleaningType pgtype.Text
	OverrideRate string
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}
