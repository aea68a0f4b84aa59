//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"token-storefront/internal/domain/payment"
	"token-storefront/internal/pkg/clock"

	"github.com/shopspring/decimal"
)

const (
	TestBaseURL   = "https://shop.example.com/"
	TestRefMillis = int64(1700000000000)
)

type PurchaseBuilder struct {
	Amount    string
	Currency  string
	Tokens    string
	UserID    string
	UserEmail string
}

func NewPurchaseBuilder() *PurchaseBuilder {
	return &PurchaseBuilder{
		Amount:    "25.00",
		Currency:  "EUR",
		Tokens:    "250",
		UserID:    "u1",
		UserEmail: "buyer@example.com",
	}
}

func (p *PurchaseBuilder) With(mutate func(*PurchaseBuilder)) *PurchaseBuilder {
	mutate(p)
	return p
}

// BuildRequest keeps unparseable amounts and token counts as invalid values.
func (p *PurchaseBuilder) BuildRequest() payment.PurchaseRequest {
	return payment.PurchaseRequest{
		Amount:    nullDecimal(p.Amount),
		Currency:  p.Currency,
		Tokens:    nullDecimal(p.Tokens),
		UserID:    p.UserID,
		UserEmail: p.UserEmail,
	}
}

// BuildDomain runs the request through an intent builder with a frozen clock.
func (p *PurchaseBuilder) BuildDomain() (*payment.PaymentIntent, error) {
	return NewIntentBuilder().Build(p.BuildRequest())
}

// BuildBody returns the JSON body the storefront posts to /payments/initiate.
func (p *PurchaseBuilder) BuildBody() map[string]any {
	body := map[string]any{
		"currency": p.Currency,
		"user": map[string]any{
			"id":    p.UserID,
			"email": p.UserEmail,
		},
	}
	if p.Amount != "" {
		body["amount"] = jsonValue(p.Amount)
	}
	if p.Tokens != "" {
		body["tokens"] = jsonValue(p.Tokens)
	}
	return body
}

func (p *PurchaseBuilder) WithAmount(amount string) *PurchaseBuilder {
	p.Amount = amount
	return p
}

func (p *PurchaseBuilder) WithCurrency(currency string) *PurchaseBuilder {
	p.Currency = currency
	return p
}

func (p *PurchaseBuilder) WithTokens(tokens string) *PurchaseBuilder {
	p.Tokens = tokens
	return p
}

func (p *PurchaseBuilder) WithUser(userID, email string) *PurchaseBuilder {
	p.UserID = userID
	p.UserEmail = email
	return p
}

func NewIntentBuilder() *payment.IntentBuilder {
	refs := payment.NewReferenceGenerator("CS", clock.NewMockClock(time.UnixMilli(TestRefMillis)))
	return payment.NewIntentBuilder(payment.BuilderConfig{
		BaseURL:   TestBaseURL,
		MinAmount: decimal.RequireFromString("10.00"),
	}, refs, discardLogger())
}

// jsonValue sends numeric text as a JSON number and anything else as a string.
func jsonValue(s string) any {
	if _, err := decimal.NewFromString(s); err != nil {
		return s
	}
	return json.Number(s)
}

func nullDecimal(s string) decimal.NullDecimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
