package components

import (
	"log/slog"

	"sncleaning-pricing/internal/infra/cache"
	"sncleaning-pricing/internal/infra/query"
	"sncleaning-pricing/internal/infra/readstore"
	"sncleaning-pricing/internal/infra/snapshot"
	"sncleaning-pricing/internal/infra/uow"
	"sncleaning-pricing/internal/pkg/config"
	"sncleaning-pricing/internal/pkg/metrics"
	"sncleaning-pricing/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	postgresModule,
	fx.Provide(NewRuleStorage),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var postgresModule = fx.Module("persistence/postgres",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RuleReadQueries)),
		),
		readstore.NewRuleReadStore,
		uow.NewPostgresUoW,
	),
)

// RuleStorage is the set of ports backed by one rule source.
type RuleStorage struct {
	fx.Out

	Store       shared.RuleStore
	UnitOfWork  shared.UnitOfWork
	Invalidator shared.CacheInvalidator
}

type ruleStorageParams struct {
	fx.In

	Config    config.Config
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
	ReadStore *readstore.RuleReadStore
	UoW       *uow.PostgresUoW
	Redis     *redis.Client `optional:"true"`
}

// NewRuleStorage picks the YAML snapshot when one is configured and the
// Redis-cached Postgres store otherwise.
func NewRuleStorage(p ruleStorageParams) (RuleStorage, error) {
	if p.Config.Pricing.UseSnapshot() {
		snap, err := snapshot.Load(p.Config.Pricing.SnapshotPath)
		if err != nil {
			return RuleStorage{}, err
		}
		p.Logger.Info("serving rules from snapshot", "path", p.Config.Pricing.SnapshotPath)
		return RuleStorage{
			Store:       snap,
			UnitOfWork:  snapshot.ReadOnlyUnitOfWork{},
			Invalidator: snap,
		}, nil
	}

	cached := cache.NewRuleStore(p.ReadStore, p.Redis, p.Config.Redis.TTL, p.Logger, p.Metrics)
	return RuleStorage{
		Store:       cached,
		UnitOfWork:  p.UoW,
		Invalidator: cached,
	}, nil
}

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
