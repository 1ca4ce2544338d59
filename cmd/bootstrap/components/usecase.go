package components

import (
	"sncleaning-pricing/internal/pkg/clock"
	"sncleaning-pricing/internal/usecase/commands"
	"sncleaning-pricing/internal/usecase/queries"
	"sncleaning-pricing/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewRuleLoader,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRuleCommands,
		commands.NewOverrideCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRateQueries,
		queries.NewQuoteQueries,
		queries.NewRuleQueries,
	),
)
