package components

import (
	"token-storefront/internal/handler"
	"token-storefront/internal/handler/api"
	"token-storefront/internal/handler/middleware"
	"token-storefront/internal/pkg/config"
	"token-storefront/internal/usecase/commands"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPaymentHandler,
		newWebhookHandler,
		api.NewOrderHandler,
		api.NewTokenHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newWebhookHandler(cmds commands.WebhookCommands, cfg config.Config) *api.WebhookHandler {
	return api.NewWebhookHandler(cmds, cfg.Transfermit.SignatureHeaders)
}

func newHandlers(
	payment *api.PaymentHandler,
	webhook *api.WebhookHandler,
	order *api.OrderHandler,
	tokens *api.TokenHandler,
) handler.Handlers {
	return handler.Handlers{
		Payment: payment,
		Webhook: webhook,
		Order:   order,
		Tokens:  tokens,
	}
}
