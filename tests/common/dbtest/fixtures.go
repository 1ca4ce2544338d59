//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"sncleaning-pricing/internal/domain/override"
	"sncleaning-pricing/internal/domain/rule"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// InsertRule stores a rule record as-is, bypassing the admin validation, so
// tests can seed malformed rows too.
func InsertRule(t *testing.T, db DBLike, rec rule.Record) uuid.UUID {
	t.Helper()

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	_, err := db.Exec(context.Background(), `
		INSERT INTO scheduling_rules (id, rule_type, start_time, end_time, day_of_week,
			price_modifier, modifier_type, label, is_active, display_order, created_at, updated_at)
		VALUES ($1, $2, $3::text::time, $4::text::time, $5::int, $6::text::numeric, $7, $8, $9, $10, $11, $11)`,
		rec.ID, string(rec.Type), rec.StartTime, rec.EndTime, rec.DayOfWeek,
		rec.PriceModifier.String(), string(rec.ModifierType), rec.Label, rec.IsActive, rec.DisplayOrder, rec.CreatedAt)
	require.NoError(t, err)

	return rec.ID
}

func InsertOverride(t *testing.T, db DBLike, o *override.PricingOverride) uuid.UUID {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO pricing_overrides (id, customer_id, service_type, cleaning_type, override_rate, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::text::numeric, $6, $6)`,
		o.ID(), o.CustomerID(), o.ServiceType(), o.CleaningType(), o.OverrideRate().String(), o.CreatedAt())
	require.NoError(t, err)

	return o.ID()
}

func CountRules(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM scheduling_rules").Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
