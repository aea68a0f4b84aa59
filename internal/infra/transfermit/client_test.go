//go:build unit

package transfermit_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"token-storefront/internal/domain/payment"
	"token-storefront/internal/infra/transfermit"
	"token-storefront/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIntent() *payment.PaymentIntent {
	return &payment.PaymentIntent{
		ReferenceID: "CS-u1-1700000000000",
		PaymentType: payment.PaymentTypeDeposit,
		Amount:      json.Number("10.00"),
		Currency:    payment.CurrencyEUR,
		Description: "Top-up 50 tokens",
		Customer: payment.Customer{
			ReferenceID: "user_u1",
			Email:       "buyer@example.com",
			Locale:      payment.CustomerLocale,
		},
		AdditionalParameters: payment.AdditionalParameters{
			UserID:      "u1",
			Tokens:      50,
			ReferenceID: "CS-u1-1700000000000",
		},
	}
}

func newClient(t *testing.T, url string, timeout time.Duration) *transfermit.Client {
	t.Helper()
	c, err := transfermit.NewClient(config.TransfermitConfig{
		APIURL:  url,
		APIKey:  "secret-key",
		Timeout: timeout,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return c
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := transfermit.NewClient(config.TransfermitConfig{APIKey: "k"}, logger)
	assert.ErrorIs(t, err, transfermit.ErrMissingAPIURL)

	_, err = transfermit.NewClient(config.TransfermitConfig{APIURL: "http://x"}, logger)
	assert.ErrorIs(t, err, transfermit.ErrMissingAPIKey)
}

func TestClient_Submit(t *testing.T) {
	testCases := []struct {
		name         string
		status       int
		body         string
		wantRedirect string
		wantCode     payment.Code
		wantStatus   int
		wantDetails  string
	}{
		{
			name:         "success: redirect url returned",
			status:       http.StatusOK,
			body:         `{"result":{"redirectUrl":"https://pay.example/r/abc"}}`,
			wantRedirect: "https://pay.example/r/abc",
		},
		{
			name:         "success: created status",
			status:       http.StatusCreated,
			body:         `{"result":{"redirectUrl":"https://pay.example/r/def"}}`,
			wantRedirect: "https://pay.example/r/def",
		},
		{
			name:        "error: upstream rejection keeps status and details",
			status:      http.StatusBadRequest,
			body:        `{"errors":["amount invalid"]}`,
			wantCode:    payment.CodeGatewayError,
			wantStatus:  http.StatusBadRequest,
			wantDetails: `{"errors":["amount invalid"]}`,
		},
		{
			name:        "error: non-json upstream failure",
			status:      http.StatusServiceUnavailable,
			body:        `upstream down`,
			wantCode:    payment.CodeGatewayError,
			wantStatus:  http.StatusServiceUnavailable,
			wantDetails: `{}`,
		},
		{
			name:       "error: success without redirect url",
			status:     http.StatusOK,
			body:       `{"result":{}}`,
			wantCode:   payment.CodeMissingRedirectURL,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var gotAuth, gotPath, gotContentType string
			var gotBody map[string]any
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				gotPath = r.URL.Path
				gotContentType = r.Header.Get("Content-Type")
				_ = json.NewDecoder(r.Body).Decode(&gotBody)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := newClient(t, srv.URL+"/", time.Second)
			redirect, err := c.Submit(context.Background(), testIntent())

			assert.Equal(t, "Bearer secret-key", gotAuth)
			assert.Equal(t, "/payments", gotPath)
			assert.Equal(t, "application/json", gotContentType)
			assert.Equal(t, "CS-u1-1700000000000", gotBody["referenceId"])
			assert.Equal(t, "DEPOSIT", gotBody["paymentType"])

			if tc.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, tc.wantRedirect, redirect)
				return
			}

			var gwErr *payment.GatewayError
			require.True(t, errors.As(err, &gwErr), "expected GatewayError, got %v", err)
			assert.Equal(t, tc.wantCode, gwErr.Code)
			assert.Equal(t, tc.wantStatus, gwErr.Status)
			if tc.wantDetails != "" {
				assert.JSONEq(t, tc.wantDetails, string(gwErr.Details))
			}
		})
	}
}

func TestClient_Submit_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := newClient(t, srv.URL, 50*time.Millisecond)
	_, err := c.Submit(context.Background(), testIntent())

	var gwErr *payment.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, payment.CodeGatewayError, gwErr.Code)
	assert.Equal(t, http.StatusBadGateway, gwErr.Status)
	assert.JSONEq(t, `{}`, string(gwErr.Details))
}
