package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"sncleaning-pricing/internal/domain/override"
	"sncleaning-pricing/internal/domain/rule"
	"sncleaning-pricing/internal/pkg/errs"
	"sncleaning-pricing/internal/pkg/metrics"
	"sncleaning-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const keyPrefix = "pricing:"

// Cache lookup results recorded by CacheResultsTotal.
const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

// RuleStore is a read-through Redis cache in front of another rule store.
// Redis failures never fail a read: the wrapped store answers instead.
type RuleStore struct {
	next    shared.RuleStore
	rdb     *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewRuleStore returns a pass-through store when rdb is nil.
func NewRuleStore(next shared.RuleStore, rdb *redis.Client, ttl time.Duration, logger *slog.Logger, m *metrics.Metrics) *RuleStore {
	return &RuleStore{
		next:    next,
		rdb:     rdb,
		ttl:     ttl,
		logger:  logger,
		metrics: m,
	}
}

func (s *RuleStore) ListRules(ctx context.Context, ruleType rule.Type, activeOnly bool) ([]rule.Record, error) {
	key := fmt.Sprintf("%srules:%s:%t", keyPrefix, ruleType, activeOnly)

	var cached []rule.Record
	if s.readCache(ctx, key, &cached) {
		return cached, nil
	}

	records, err := s.next.ListRules(ctx, ruleType, activeOnly)
	if err != nil {
		return nil, err
	}
	s.writeCache(ctx, key, records)
	return records, nil
}

func (s *RuleStore) ListOverrides(ctx context.Context, customerID *uuid.UUID) ([]*override.PricingOverride, error) {
	key := keyPrefix + "overrides:all"
	if customerID != nil {
		key = keyPrefix + "overrides:" + customerID.String()
	}

	var cached []cachedOverride
	if s.readCache(ctx, key, &cached) {
		out := make([]*override.PricingOverride, 0, len(cached))
		for _, c := range cached {
			out = append(out, c.toDomain())
		}
		return out, nil
	}

	overrides, err := s.next.ListOverrides(ctx, customerID)
	if err != nil {
		return nil, err
	}
	toCache := make([]cachedOverride, 0, len(overrides))
	for _, o := range overrides {
		toCache = append(toCache, fromDomain(o))
	}
	s.writeCache(ctx, key, toCache)
	return overrides, nil
}

// Invalidate drops every cached rule and override.
func (s *RuleStore) Invalidate(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	iter := s.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errs.Wrap(err, "scan cached rules")
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrap(err, "delete cached rules")
	}
	return nil
}

func (s *RuleStore) readCache(ctx context.Context, key string, out any) bool {
	if s.rdb == nil || s.ttl <= 0 {
		return false
	}
	val, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errs.Is(err, redis.Nil) {
			s.metrics.CacheResultsTotal.WithLabelValues(resultMiss).Inc()
		} else {
			s.metrics.CacheResultsTotal.WithLabelValues(resultError).Inc()
			s.logger.WarnContext(ctx, "rule cache read failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(val, out); err != nil {
		s.metrics.CacheResultsTotal.WithLabelValues(resultError).Inc()
		s.logger.WarnContext(ctx, "rule cache entry unreadable", "key", key, "error", err)
		return false
	}
	s.metrics.CacheResultsTotal.WithLabelValues(resultHit).Inc()
	return true
}

func (s *RuleStore) writeCache(ctx context.Context, key string, val any) {
	if s.rdb == nil || s.ttl <= 0 {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.logger.WarnContext(ctx, "rule cache write failed", "key", key, "error", err)
	}
}

type cachedOverride struct {
	ID           uuid.UUID       `json:"id"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	ServiceType  string          `json:"service_type"`
	CleaningType *string         `json:"cleaning_type,omitempty"`
	OverrideRate decimal.Decimal `json:"override_rate"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func fromDomain(o *override.PricingOverride) cachedOverride {
	return cachedOverride{
		ID:           o.ID(),
		CustomerID:   o.CustomerID(),
		ServiceType:  o.ServiceType(),
		CleaningType: o.CleaningType(),
		OverrideRate: o.OverrideRate(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}

func (c cachedOverride) toDomain() *override.PricingOverride {
	return override.Reconstruct(c.ID, c.CustomerID, c.ServiceType, c.CleaningType, c.OverrideRate, c.CreatedAt, c.UpdatedAt)
}
