package components

import (
	"log/slog"

	"token-storefront/internal/pkg/config"
	"token-storefront/internal/usecase"
	"token-storefront/internal/usecase/commands"
	"token-storefront/internal/usecase/queries"
	"token-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPaymentCommands,
		commands.NewWebhookCommands,
		newOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTokenQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func newOrderCommands(uow shared.UnitOfWork, notifier commands.Notifier, cfg config.Config, logger *slog.Logger) commands.OrderCommands {
	return commands.NewOrderCommands(uow, notifier, cfg.Mail.Timeout, logger)
}
