package commands

import (
	"context"
	"log/slog"
	"strings"

	"sncleaning-pricing/internal/domain/rule"
	"sncleaning-pricing/internal/infra"
	"sncleaning-pricing/internal/pkg/clock"
	"sncleaning-pricing/internal/pkg/errs"
	"sncleaning-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrRuleNotFound   = errs.New("scheduling rule not found")
	ErrInvalidRule    = errs.New("invalid scheduling rule")
	ErrInvalidReorder = errs.New("reorder requires distinct rule ids")
)

type RuleInput struct {
	Type          rule.Type
	StartTime     *string
	EndTime       *string
	DayOfWeek     *int
	PriceModifier decimal.Decimal
	ModifierType  rule.ModifierType
	Label         string
	IsActive      bool
	DisplayOrder  int
}

// record validates the input with the same decoder the evaluator uses and
// returns it in canonical form.
func (in RuleInput) record(id uuid.UUID) (rule.Record, error) {
	decoded, err := rule.Decode(rule.Record{
		ID:            id,
		Type:          in.Type,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		DayOfWeek:     in.DayOfWeek,
		PriceModifier: in.PriceModifier,
		ModifierType:  in.ModifierType,
		Label:         strings.TrimSpace(in.Label),
		IsActive:      in.IsActive,
		DisplayOrder:  in.DisplayOrder,
	})
	if err != nil {
		return rule.Record{}, errs.Mark(err, ErrInvalidRule)
	}
	return rule.Encode(decoded), nil
}

type RuleCommands interface {
	Create(ctx context.Context, in RuleInput) (*rule.Record, error)
	Update(ctx context.Context, id uuid.UUID, in RuleInput) (*rule.Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Reorder rewrites display order to the position of each id in ids.
	Reorder(ctx context.Context, ids []uuid.UUID) error
}

type ruleCommandsImpl struct {
	uow    shared.UnitOfWork
	cache  shared.CacheInvalidator
	clock  clock.Clock
	logger *slog.Logger
}

func NewRuleCommands(uow shared.UnitOfWork, cache shared.CacheInvalidator, clk clock.Clock, logger *slog.Logger) RuleCommands {
	return &ruleCommandsImpl{uow: uow, cache: cache, clock: clk, logger: logger}
}

func (c *ruleCommandsImpl) Create(ctx context.Context, in RuleInput) (*rule.Record, error) {
	rec, err := in.record(uuid.New())
	if err != nil {
		return nil, err
	}
	now := c.clock.Now()
	rec.CreatedAt, rec.UpdatedAt = now, now

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rules().Create(ctx, rec)
	})
	if err != nil {
		return nil, mapRuleErr(err)
	}

	invalidate(ctx, c.cache, c.logger)
	return &rec, nil
}

func (c *ruleCommandsImpl) Update(ctx context.Context, id uuid.UUID, in RuleInput) (*rule.Record, error) {
	rec, err := in.record(id)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, derr := tx.Rules().FindByID(ctx, id)
		if derr != nil {
			return derr
		}
		rec.CreatedAt = existing.CreatedAt
		rec.UpdatedAt = c.clock.Now()
		return tx.Rules().Update(ctx, rec)
	})
	if err != nil {
		return nil, mapRuleErr(err)
	}

	invalidate(ctx, c.cache, c.logger)
	return &rec, nil
}

func (c *ruleCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rules().Delete(ctx, id)
	})
	if err != nil {
		return mapRuleErr(err)
	}

	invalidate(ctx, c.cache, c.logger)
	return nil
}

func (c *ruleCommandsImpl) Reorder(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return ErrInvalidReorder
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup || id == uuid.Nil {
			return ErrInvalidReorder
		}
		seen[id] = struct{}{}
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for i, id := range ids {
			if derr := tx.Rules().UpdateDisplayOrder(ctx, id, i); derr != nil {
				return derr
			}
		}
		return nil
	})
	if err != nil {
		return mapRuleErr(err)
	}

	invalidate(ctx, c.cache, c.logger)
	return nil
}

func mapRuleErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrRuleNotFound)
	}
	return mapWriteErr(err)
}
