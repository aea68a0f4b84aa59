package commands

import (
	"context"
	"log/slog"

	"token-storefront/internal/domain/payment"
)

type InitiatePaymentResult struct {
	RedirectURL string
	ReferenceID string
}

type PaymentCommands interface {
	InitiatePayment(ctx context.Context, req payment.PurchaseRequest) (*InitiatePaymentResult, error)
}

type paymentCommandsImpl struct {
	builder IntentBuilder
	gateway PaymentGateway
	logger  *slog.Logger
}

func NewPaymentCommands(builder IntentBuilder, gateway PaymentGateway, logger *slog.Logger) PaymentCommands {
	return &paymentCommandsImpl{
		builder: builder,
		gateway: gateway,
		logger:  logger,
	}
}

// InitiatePayment validates the purchase and opens a payment at the processor.
// Nothing is persisted; the reference id comes back in the callback.
func (uc *paymentCommandsImpl) InitiatePayment(ctx context.Context, req payment.PurchaseRequest) (*InitiatePaymentResult, error) {
	intent, err := uc.builder.Build(req)
	if err != nil {
		return nil, err
	}

	redirectURL, err := uc.gateway.Submit(ctx, intent)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("payment initiated",
		"reference_id", intent.ReferenceID,
		"tokens", intent.TokenCount())

	return &InitiatePaymentResult{
		RedirectURL: redirectURL,
		ReferenceID: intent.ReferenceID,
	}, nil
}
