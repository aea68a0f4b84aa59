package commands

import (
	"context"

	"token-storefront/internal/domain/payment"
)

// PaymentGateway creates payments at the processor and returns the checkout URL.
type PaymentGateway interface {
	Submit(ctx context.Context, intent *payment.PaymentIntent) (string, error)
}

type IntentBuilder interface {
	Build(req payment.PurchaseRequest) (*payment.PaymentIntent, error)
}

type SignatureVerifier interface {
	Verify(body []byte, signature string) bool
}

// Notifier delivers customer emails. Failures never affect the ledger.
type Notifier interface {
	NotifyTokensCredited(ctx context.Context, to, referenceID string, tokens int64) error
	NotifyOrderCompleted(ctx context.Context, to string, tokens int64) error
}
