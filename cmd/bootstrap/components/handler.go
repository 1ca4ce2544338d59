package components

import (
	"log/slog"

	"sncleaning-pricing/internal/handler"
	"sncleaning-pricing/internal/handler/api"
	"sncleaning-pricing/internal/handler/middleware"
	"sncleaning-pricing/internal/pkg/config"
	"sncleaning-pricing/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQuoteHandler,
		api.NewRuleHandler,
		api.NewOverrideHandler,
		fx.Annotate(
			middleware.NewAuthMiddleware,
			fx.From(new(*jwt.Service)),
		),
	),
	fx.Invoke(registerRoutes),
)

func registerRoutes(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	quote *api.QuoteHandler,
	rules *api.RuleHandler,
	overrides *api.OverrideHandler,
	auth *middleware.AuthMiddleware,
) {
	handler.NewRouter(engine, cfg, logger, handler.Handlers{
		Quote:    quote,
		Rule:     rules,
		Override: overrides,
	}, auth)
}
