package transfermit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"token-storefront/internal/domain/payment"
	"token-storefront/internal/pkg/config"
)

const (
	paymentsPath     = "/payments"
	maxResponseBytes = 1 << 20
	defaultTimeout   = 20 * time.Second
)

var (
	ErrMissingAPIURL = errors.New("TRANSFERMIT_API_URL is not set")
	ErrMissingAPIKey = errors.New("TRANSFERMIT_API_KEY is not set")
)

type createPaymentResponse struct {
	Result struct {
		RedirectURL string `json:"redirectUrl"`
	} `json:"result"`
}

// Client submits payment intents to the Transfermit payments API.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.TransfermitConfig, logger *slog.Logger) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	if baseURL == "" {
		return nil, ErrMissingAPIURL
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}, nil
}

// Submit creates the payment and returns the hosted checkout URL. It never retries.
func (c *Client) Submit(ctx context.Context, intent *payment.PaymentIntent) (string, error) {
	body, err := json.Marshal(intent)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payment intent: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+paymentsPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("transfermit request failed",
			"reference_id", intent.ReferenceID,
			"error", err.Error())
		return "", payment.NewGatewayError(payment.CodeGatewayError, http.StatusBadGateway, nil, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", payment.NewGatewayError(payment.CodeGatewayError, http.StatusBadGateway, nil, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("transfermit rejected payment",
			"reference_id", intent.ReferenceID,
			"status", resp.StatusCode)
		return "", payment.NewGatewayError(payment.CodeGatewayError, resp.StatusCode, jsonOrEmpty(respBody), nil)
	}

	var parsed createPaymentResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil || parsed.Result.RedirectURL == "" {
		c.logger.Error("transfermit response without redirect url",
			"reference_id", intent.ReferenceID,
			"status", resp.StatusCode)
		return "", payment.NewGatewayError(payment.CodeMissingRedirectURL, http.StatusInternalServerError, jsonOrEmpty(respBody), nil)
	}

	return parsed.Result.RedirectURL, nil
}

func jsonOrEmpty(b []byte) json.RawMessage {
	if len(bytes.TrimSpace(b)) == 0 || !json.Valid(b) {
		return json.RawMessage(`{}`)
	}
	return json.RawMessage(b)
}
