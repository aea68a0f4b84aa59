package payment

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	successPath = "/payment/success"
	declinePath = "/payment/decline"
	pendingPath = "/payment/pending"
	webhookPath = "/payments/webhook"
)

type BuilderConfig struct {
	BaseURL   string
	MinAmount decimal.Decimal
}

// IntentBuilder validates purchase requests and turns them into payment intents.
type IntentBuilder struct {
	baseURL   string
	minAmount decimal.Decimal
	refs      *ReferenceGenerator
	logger    *slog.Logger
}

func NewIntentBuilder(cfg BuilderConfig, refs *ReferenceGenerator, logger *slog.Logger) *IntentBuilder {
	return &IntentBuilder{
		baseURL:   strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		minAmount: cfg.MinAmount,
		refs:      refs,
		logger:    logger,
	}
}

// Build checks, in order, currency, amount, tokens and caller identity and
// stops at the first violation.
func (b *IntentBuilder) Build(req PurchaseRequest) (*PaymentIntent, error) {
	currency, err := NewCurrency(req.Currency)
	if err != nil {
		return nil, err
	}

	if !req.Amount.Valid {
		return nil, ErrMinAmount
	}
	amount := req.Amount.Decimal.Round(2)
	if amount.LessThan(b.minAmount) {
		return nil, ErrMinAmount
	}

	tokens, ok := wholePositive(req.Tokens)
	if !ok {
		return nil, ErrInvalidTokens
	}

	userID := strings.TrimSpace(req.UserID)
	email := strings.TrimSpace(req.UserEmail)
	if userID == "" || email == "" {
		return nil, ErrUserRequired
	}

	ref := b.refs.Next(userID)
	intent := &PaymentIntent{
		ReferenceID:      ref,
		PaymentType:      PaymentTypeDeposit,
		Amount:           amountNumber(amount),
		Currency:         currency,
		Description:      fmt.Sprintf("Top-up %d tokens", tokens),
		SuccessReturnURL: b.baseURL + successPath,
		DeclineReturnURL: b.baseURL + declinePath,
		PendingReturnURL: b.baseURL + pendingPath,
		ReturnURL:        b.baseURL + pendingPath,
		WebhookURL:       b.baseURL + webhookPath,
		WebsiteURL:       b.baseURL,
		Customer: Customer{
			ReferenceID: "user_" + userID,
			Email:       email,
			Locale:      CustomerLocale,
		},
		AdditionalParameters: AdditionalParameters{
			UserID:      userID,
			Tokens:      tokens,
			ReferenceID: ref,
		},
	}

	// customer data stays out of the logs
	b.logger.Info("payment intent built",
		slog.String("reference_id", ref),
		slog.String("amount", amount.StringFixed(2)),
		slog.String("currency", currency.String()),
		slog.Int64("tokens", tokens),
	)

	return intent, nil
}

func amountNumber(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}
