package bootstrap

import (
	"log/slog"

	"token-storefront/internal/domain/payment"
	"token-storefront/internal/infra/mailer"
	"token-storefront/internal/infra/transfermit"
	"token-storefront/internal/pkg/clock"
	"token-storefront/internal/pkg/config"
	"token-storefront/internal/pkg/signature"
	"token-storefront/internal/usecase/commands"

	"go.uber.org/fx"
)

// PaymentModule provides the processor client, the callback verifier and
// customer mail delivery.
var PaymentModule = fx.Module("payment",
	fx.Provide(
		clock.NewRealClock,
		NewReferenceGenerator,
		fx.Annotate(
			NewIntentBuilder,
			fx.As(new(commands.IntentBuilder)),
		),
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			NewSignatureVerifier,
			fx.As(new(commands.SignatureVerifier)),
		),
		NewMailSender,
		fx.Annotate(
			NewNotifier,
			fx.As(new(commands.Notifier)),
		),
		NewWebhookConfig,
	),
)

func NewReferenceGenerator(cfg config.Config, clk clock.Clock) *payment.ReferenceGenerator {
	return payment.NewReferenceGenerator(cfg.Storefront.ReferencePrefix, clk)
}

func NewIntentBuilder(cfg config.Config, refs *payment.ReferenceGenerator, logger *slog.Logger) *payment.IntentBuilder {
	return payment.NewIntentBuilder(payment.BuilderConfig{
		BaseURL:   cfg.Storefront.BaseURL,
		MinAmount: cfg.Storefront.MinAmount,
	}, refs, logger)
}

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) (*transfermit.Client, error) {
	return transfermit.NewClient(cfg.Transfermit, logger)
}

func NewSignatureVerifier(cfg config.Config) *signature.Verifier {
	return signature.NewVerifier(cfg.Transfermit.SigningKey)
}

func NewMailSender(cfg config.Config, logger *slog.Logger) mailer.Sender {
	return mailer.NewSender(cfg.Mail, logger)
}

func NewNotifier(sender mailer.Sender, cfg config.Config) *mailer.Notifier {
	return mailer.NewNotifier(sender, cfg.Mail, cfg.Storefront)
}

func NewWebhookConfig(cfg config.Config) commands.WebhookConfig {
	return commands.WebhookConfig{
		PaymentMethod: cfg.Storefront.PaymentMethod,
		NotifyTimeout: cfg.Mail.Timeout,
	}
}
