//go:build unit

package payment_test

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"token-storefront/internal/domain/payment"
	"token-storefront/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PurchaseBuilder)
	errIs  error
}

func TestIntentBuilder(t *testing.T) {
	t.Run("builds the full intent", func(t *testing.T) {
		actual, err := builder.NewPurchaseBuilder().BuildDomain()
		require.NoError(t, err)

		ref := "CS-u1-1700000000000"
		expected := &payment.PaymentIntent{
			ReferenceID:      ref,
			PaymentType:      "DEPOSIT",
			Amount:           json.Number("25.00"),
			Currency:         payment.CurrencyEUR,
			Description:      "Top-up 250 tokens",
			SuccessReturnURL: "https://shop.example.com/payment/success",
			DeclineReturnURL: "https://shop.example.com/payment/decline",
			PendingReturnURL: "https://shop.example.com/payment/pending",
			ReturnURL:        "https://shop.example.com/payment/pending",
			WebhookURL:       "https://shop.example.com/payments/webhook",
			WebsiteURL:       "https://shop.example.com",
			Customer: payment.Customer{
				ReferenceID: "user_u1",
				Email:       "buyer@example.com",
				Locale:      "en",
			},
			AdditionalParameters: payment.AdditionalParameters{
				UserID:      "u1",
				Tokens:      250,
				ReferenceID: ref,
			},
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("PaymentIntent mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, int64(250), actual.TokenCount())
	})

	t.Run("reference id format", func(t *testing.T) {
		actual, err := builder.NewPurchaseBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^CS-u1-\d+$`), actual.ReferenceID)
	})

	t.Run("currency", func(t *testing.T) {
		cases := []testCase{
			{name: "omitted defaults to EUR", mutate: func(b *builder.PurchaseBuilder) { b.WithCurrency("") }},
			{name: "lowercase accepted", mutate: func(b *builder.PurchaseBuilder) { b.WithCurrency("gbp") }},
			{name: "JPY rejected", mutate: func(b *builder.PurchaseBuilder) { b.WithCurrency("JPY") }, errIs: payment.ErrUnsupportedCurrency},
			{name: "garbage rejected", mutate: func(b *builder.PurchaseBuilder) { b.WithCurrency("euro") }, errIs: payment.ErrUnsupportedCurrency},
		}
		for _, c := range payment.SupportedCurrencies {
			cur := c.String()
			cases = append(cases, testCase{name: cur + " accepted", mutate: func(b *builder.PurchaseBuilder) { b.WithCurrency(cur) }})
		}
		runCases(t, cases)
	})

	t.Run("minimum amount", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "10.00 passes", mutate: func(b *builder.PurchaseBuilder) { b.WithAmount("10.00") }},
			{name: "9.995 rounds up and passes", mutate: func(b *builder.PurchaseBuilder) { b.WithAmount("9.995") }},
			{name: "9.994 rounds down and fails", mutate: func(b *builder.PurchaseBuilder) { b.WithAmount("9.994") }, errIs: payment.ErrMinAmount},
			{name: "9.99 fails", mutate: func(b *builder.PurchaseBuilder) { b.WithAmount("9.99") }, errIs: payment.ErrMinAmount},
			{name: "negative fails", mutate: func(b *builder.PurchaseBuilder) { b.WithAmount("-50") }, errIs: payment.ErrMinAmount},
			{name: "not a number fails", mutate: func(b *builder.PurchaseBuilder) { b.WithAmount("abc") }, errIs: payment.ErrMinAmount},
			{name: "missing fails", mutate: func(b *builder.PurchaseBuilder) { b.WithAmount("") }, errIs: payment.ErrMinAmount},
			{name: "huge exponent fails", mutate: func(b *builder.PurchaseBuilder) { b.WithAmount("1e50000000") }, errIs: payment.ErrMinAmount},
			{name: "tiny exponent fails", mutate: func(b *builder.PurchaseBuilder) { b.WithAmount("1e-50000000") }, errIs: payment.ErrMinAmount},
			{name: "too many digits fails", mutate: func(b *builder.PurchaseBuilder) { b.WithAmount("1000000000000000000000000000000.00") }, errIs: payment.ErrMinAmount},
		})
	})

	t.Run("tokens", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "1 passes", mutate: func(b *builder.PurchaseBuilder) { b.WithTokens("1") }},
			{name: "whole decimal passes", mutate: func(b *builder.PurchaseBuilder) { b.WithTokens("100.0") }},
			{name: "zero fails", mutate: func(b *builder.PurchaseBuilder) { b.WithTokens("0") }, errIs: payment.ErrInvalidTokens},
			{name: "negative fails", mutate: func(b *builder.PurchaseBuilder) { b.WithTokens("-1") }, errIs: payment.ErrInvalidTokens},
			{name: "fraction fails", mutate: func(b *builder.PurchaseBuilder) { b.WithTokens("1.5") }, errIs: payment.ErrInvalidTokens},
			{name: "not a number fails", mutate: func(b *builder.PurchaseBuilder) { b.WithTokens("NaN") }, errIs: payment.ErrInvalidTokens},
			{name: "overflow fails", mutate: func(b *builder.PurchaseBuilder) { b.WithTokens("99999999999999999999") }, errIs: payment.ErrInvalidTokens},
			{name: "huge exponent fails", mutate: func(b *builder.PurchaseBuilder) { b.WithTokens("1e50000000") }, errIs: payment.ErrInvalidTokens},
			{name: "tiny exponent fails", mutate: func(b *builder.PurchaseBuilder) { b.WithTokens("1e-50000000") }, errIs: payment.ErrInvalidTokens},
		})
	})

	t.Run("extreme exponents are rejected quickly", func(t *testing.T) {
		start := time.Now()
		for _, raw := range []string{"1e50000000", "1e-50000000", "-1e2147483647"} {
			_, err := builder.NewPurchaseBuilder().WithAmount(raw).BuildDomain()
			assert.ErrorIs(t, err, payment.ErrMinAmount, raw)

			_, err = builder.NewPurchaseBuilder().WithTokens(raw).BuildDomain()
			assert.ErrorIs(t, err, payment.ErrInvalidTokens, raw)
		}
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("caller identity", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "missing user id", mutate: func(b *builder.PurchaseBuilder) { b.WithUser("", "buyer@example.com") }, errIs: payment.ErrUserRequired},
			{name: "missing email", mutate: func(b *builder.PurchaseBuilder) { b.WithUser("u1", " ") }, errIs: payment.ErrUserRequired},
		})
	})

	t.Run("validation order", func(t *testing.T) {
		_, err := builder.NewPurchaseBuilder().
			WithCurrency("JPY").
			WithAmount("1").
			WithTokens("0").
			WithUser("", "").
			BuildDomain()
		assert.ErrorIs(t, err, payment.ErrUnsupportedCurrency)

		_, err = builder.NewPurchaseBuilder().WithAmount("1").WithTokens("0").WithUser("", "").BuildDomain()
		assert.ErrorIs(t, err, payment.ErrMinAmount)

		_, err = builder.NewPurchaseBuilder().WithTokens("0").WithUser("", "").BuildDomain()
		assert.ErrorIs(t, err, payment.ErrInvalidTokens)
	})

	t.Run("error classification", func(t *testing.T) {
		assert.True(t, payment.ErrUserRequired.IsAuth())
		assert.False(t, payment.ErrMinAmount.IsAuth())
		assert.Equal(t, payment.Code("min_amount_10"), payment.ErrMinAmount.Code)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {

			actual, err := builder.NewPurchaseBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
