package request

import (
	"bytes"
	"encoding/json"
	"strings"

	"token-storefront/internal/domain/payment"
)

// InitiatePaymentRequest accepts loosely typed JSON; every field is decoded
// leniently and validated in the intent builder, so a wrong JSON type yields
// the same error code as a wrong value.
type InitiatePaymentRequest struct {
	Amount   json.RawMessage `json:"amount" swaggertype:"number"`
	Currency json.RawMessage `json:"currency" swaggertype:"string" example:"EUR"`
	Tokens   json.RawMessage `json:"tokens" swaggertype:"integer"`
	User     json.RawMessage `json:"user" swaggertype:"object"`
}

type PaymentUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (r *InitiatePaymentRequest) ToDomain() payment.PurchaseRequest {
	user := r.paymentUser()
	return payment.PurchaseRequest{
		Amount:    payment.ParseNumber(r.Amount),
		Currency:  jsonText(r.Currency),
		Tokens:    payment.ParseNumber(r.Tokens),
		UserID:    user.ID,
		UserEmail: user.Email,
	}
}

// paymentUser reads id and email when user is an object; anything else
// leaves the caller anonymous.
func (r *InitiatePaymentRequest) paymentUser() PaymentUser {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(r.User, &fields); err != nil || fields == nil {
		return PaymentUser{}
	}
	return PaymentUser{
		ID:    jsonText(fields["id"]),
		Email: jsonText(fields["email"]),
	}
}

// jsonText renders a JSON scalar as text. Absent, null, false, zero and empty
// values give "" so callers can apply their default; objects and arrays keep
// their raw form and fail validation downstream.
func jsonText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	case 'n', 'f':
		return ""
	}
	if n := payment.ParseNumber(raw); n.Valid {
		if n.Decimal.IsZero() {
			return ""
		}
		return n.Decimal.String()
	}
	return string(raw)
}
