//go:build unit

package request_test

import (
	"encoding/json"
	"testing"

	"token-storefront/internal/domain/payment"
	reqdto "token-storefront/internal/handler/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, body string) payment.PurchaseRequest {
	t.Helper()
	var req reqdto.InitiatePaymentRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req.ToDomain()
}

func TestInitiatePaymentRequest_Currency(t *testing.T) {
	testCases := []struct {
		name     string
		currency string
		expected payment.Currency
		errIs    error
	}{
		{name: "string", currency: `"gbp"`, expected: payment.CurrencyGBP},
		{name: "absent defaults", currency: ``, expected: payment.DefaultCurrency},
		{name: "null defaults", currency: `null`, expected: payment.DefaultCurrency},
		{name: "false defaults", currency: `false`, expected: payment.DefaultCurrency},
		{name: "zero defaults", currency: `0`, expected: payment.DefaultCurrency},
		{name: "number", currency: `123`, errIs: payment.ErrUnsupportedCurrency},
		{name: "true", currency: `true`, errIs: payment.ErrUnsupportedCurrency},
		{name: "object", currency: `{"code":"EUR"}`, errIs: payment.ErrUnsupportedCurrency},
		{name: "array", currency: `["EUR"]`, errIs: payment.ErrUnsupportedCurrency},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			body := `{"amount":25}`
			if tc.currency != "" {
				body = `{"amount":25,"currency":` + tc.currency + `}`
			}

			cur, err := payment.NewCurrency(decode(t, body).Currency)

			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cur)
		})
	}
}

func TestInitiatePaymentRequest_User(t *testing.T) {
	testCases := []struct {
		name       string
		user       string
		expectID   string
		expectMail string
	}{
		{name: "object", user: `{"id":"u1","email":" a@b.com "}`, expectID: "u1", expectMail: "a@b.com"},
		{name: "numeric id", user: `{"id":7,"email":"a@b.com"}`, expectID: "7", expectMail: "a@b.com"},
		{name: "string", user: `"u1"`},
		{name: "number", user: `12`},
		{name: "array", user: `[{"id":"u1"}]`},
		{name: "null", user: `null`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := decode(t, `{"user":`+tc.user+`}`)

			assert.Equal(t, tc.expectID, req.UserID)
			assert.Equal(t, tc.expectMail, req.UserEmail)
		})
	}
}
