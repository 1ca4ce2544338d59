package shared

import (
	"context"

	"sncleaning-pricing/internal/domain/override"
	"sncleaning-pricing/internal/domain/rule"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Rules() RuleRepository
	Overrides() OverrideRepository
}

type RuleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*rule.Record, error)
	Create(ctx context.Context, rec rule.Record) error
	Update(ctx context.Context, rec rule.Record) error
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateDisplayOrder(ctx context.Context, id uuid.UUID, displayOrder int) error
}

type OverrideRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*override.PricingOverride, error)
	Create(ctx context.Context, o *override.PricingOverride) error
	Update(ctx context.Context, o *override.PricingOverride) error
	Delete(ctx context.Context, id uuid.UUID) error
}
