package commands

import (
	"context"
	"log/slog"

	"sncleaning-pricing/internal/domain/override"
	"sncleaning-pricing/internal/infra"
	"sncleaning-pricing/internal/pkg/clock"
	"sncleaning-pricing/internal/pkg/errs"
	"sncleaning-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrOverrideNotFound = errs.New("pricing override not found")
	ErrInvalidOverride  = errs.New("invalid pricing override")
	ErrOverrideConflict = errs.New("override already exists for this customer, service and cleaning type")
)

type OverrideInput struct {
	CustomerID   uuid.UUID
	ServiceType  string
	CleaningType *string
	OverrideRate decimal.Decimal
}

type OverrideCommands interface {
	Create(ctx context.Context, in OverrideInput) (*override.PricingOverride, error)
	Update(ctx context.Context, id uuid.UUID, in OverrideInput) (*override.PricingOverride, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type overrideCommandsImpl struct {
	uow    shared.UnitOfWork
	cache  shared.CacheInvalidator
	clock  clock.Clock
	logger *slog.Logger
}

func NewOverrideCommands(uow shared.UnitOfWork, cache shared.CacheInvalidator, clk clock.Clock, logger *slog.Logger) OverrideCommands {
	return &overrideCommandsImpl{uow: uow, cache: cache, clock: clk, logger: logger}
}

func (c *overrideCommandsImpl) Create(ctx context.Context, in OverrideInput) (*override.PricingOverride, error) {
	o, err := override.NewPricingOverride(uuid.Nil, in.CustomerID, in.ServiceType, in.CleaningType, in.OverrideRate, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOverride)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Overrides().Create(ctx, o)
	})
	if err != nil {
		return nil, mapOverrideErr(err)
	}

	invalidate(ctx, c.cache, c.logger)
	return o, nil
}

func (c *overrideCommandsImpl) Update(ctx context.Context, id uuid.UUID, in OverrideInput) (*override.PricingOverride, error) {
	now := c.clock.Now()
	validated, err := override.NewPricingOverride(id, in.CustomerID, in.ServiceType, in.CleaningType, in.OverrideRate, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidOverride)
	}

	var updated *override.PricingOverride
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, derr := tx.Overrides().FindByID(ctx, id)
		if derr != nil {
			return derr
		}
		updated = override.Reconstruct(id, validated.CustomerID(), validated.ServiceType(), validated.CleaningType(),
			validated.OverrideRate(), existing.CreatedAt(), now)
		return tx.Overrides().Update(ctx, updated)
	})
	if err != nil {
		return nil, mapOverrideErr(err)
	}

	invalidate(ctx, c.cache, c.logger)
	return updated, nil
}

func (c *overrideCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Overrides().Delete(ctx, id)
	})
	if err != nil {
		return mapOverrideErr(err)
	}

	invalidate(ctx, c.cache, c.logger)
	return nil
}

func mapOverrideErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrOverrideNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, ErrOverrideConflict)
	}
	return mapWriteErr(err)
}
