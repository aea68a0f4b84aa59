package payment

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

const (
	PaymentTypeDeposit = "DEPOSIT"
	CustomerLocale     = "en"
)

// PurchaseRequest is what the storefront asks to buy. Amount and Tokens stay
// nullable so unparseable input is reported with the proper code.
type PurchaseRequest struct {
	Amount    decimal.NullDecimal
	Currency  string
	Tokens    decimal.NullDecimal
	UserID    string
	UserEmail string
}

// PaymentIntent is the payment-creation payload sent to the processor.
type PaymentIntent struct {
	ReferenceID          string               `json:"referenceId"`
	PaymentType          string               `json:"paymentType"`
	Amount               json.Number          `json:"amount"`
	Currency             Currency             `json:"currency"`
	Description          string               `json:"description"`
	SuccessReturnURL     string               `json:"successReturnUrl"`
	DeclineReturnURL     string               `json:"declineReturnUrl"`
	PendingReturnURL     string               `json:"pendingReturnUrl"`
	ReturnURL            string               `json:"returnUrl"`
	WebhookURL           string               `json:"webhookUrl"`
	WebsiteURL           string               `json:"websiteUrl"`
	Customer             Customer             `json:"customer"`
	AdditionalParameters AdditionalParameters `json:"additionalParameters"`
}

type Customer struct {
	ReferenceID string `json:"referenceId"`
	Email       string `json:"email"`
	Locale      string `json:"locale"`
}

// AdditionalParameters is echoed back by the processor in callbacks.
type AdditionalParameters struct {
	UserID      string `json:"user_id"`
	Tokens      int64  `json:"tokens"`
	ReferenceID string `json:"reference_id"`
}

// TokenCount returns the validated token count of the intent.
func (p *PaymentIntent) TokenCount() int64 {
	return p.AdditionalParameters.Tokens
}
