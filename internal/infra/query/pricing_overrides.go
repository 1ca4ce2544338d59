package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const pricingOverrideColumns = `id, customer_id, service_type, cleaning_type, override_rate::text, created_at, updated_at`

func scanPricingOverride(row interface{ Scan(dest ...any) error }) (PricingOverride, error) {
	var i PricingOverride
	err := row.Scan(
		&i.ID,
		&i.CustomerID,
		&i.ServiceType,
		&i.CleaningType,
		&i.OverrideRate,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listPricingOverrides = `SELECT ` + pricingOverrideColumns + `
FROM pricing_overrides
WHERE ($1::uuid IS NULL OR customer_id = $1::uuid)
ORDER BY customer_id, service_type, cleaning_type NULLS FIRST, created_at, id`

func (q *Queries) ListPricingOverrides(ctx context.Context, db DBTX, customerID pgtype.UUID) ([]PricingOverride, error) {
	rows, err := db.Query(ctx, listPricingOverrides, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []PricingOverride{}
	for rows.Next() {
		i, err := scanPricingOverride(rows)
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

const getPricingOverride = `SELECT ` + pricingOverrideColumns + `
FROM pricing_overrides
WHERE id = $1`

func (q *Queries) GetPricingOverride(ctx context.Context, db DBTX, id uuid.UUID) (PricingOverride, error) {
	return scanPricingOverride(db.QueryRow(ctx, getPricingOverride, id))
}

const createPricingOverride = `INSERT INTO pricing_overrides (
	id, customer_id, service_type, cleaning_type, override_rate, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5::text::numeric, $6, $7)`

type CreatePricingOverrideParams struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	ServiceType  string
	CleaningType pgtype.Text
	OverrideRate string
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

func (q *Queries) CreatePricingOverride(ctx context.Context, db DBTX, arg CreatePricingOverrideParams) error {
	_, err := db.Exec(ctx, createPricingOverride,
		arg.ID,
		arg.CustomerID,
		arg.ServiceType,
		arg.CleaningType,
		arg.OverrideRate,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updatePricingOverride = `UPDATE pricing_overrides SET
	customer_id = $2,
	service_type = $3,
	cleaning_type = $4,
	override_rate = $5::text::numeric,
	updated_at = $6
WHERE id = $1`

type UpdatePricingOverrideParams struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	ServiceType  string
	CleaningType pgtype.Text
	OverrideRate string
	UpdatedAt    pgtype.Timestamptz
}

func (q *Queries) UpdatePricingOverride(ctx context.Context, db DBTX, arg UpdatePricingOverrideParams) (int64, error) {
	tag, err := db.Exec(ctx, updatePricingOverride,
		arg.ID,
		arg.CustomerID,
		arg.ServiceType,
		arg.CleaningType,
		arg.OverrideRate,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deletePricingOverride = `DELETE FROM pricing_overrides WHERE id = $1`

func (q *Queries) DeletePricingOverride(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deletePricingOverride, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
