package payment

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

type State string

const (
	StatePending   State = "PENDING"
	StateCompleted State = "COMPLETED"
	StateDeclined  State = "DECLINED"
)

var (
	ErrMalformedCallback          = errors.New("malformed callback payload")
	ErrIncompleteCreditParameters = errors.New("callback is missing credit parameters")
)

// Callback is the processor's payment object as delivered to the webhook.
type Callback struct {
	ReferenceID          string
	State                State
	CustomerEmail        string
	AdditionalParameters map[string]json.RawMessage
}

// Credit is the balance change a completed callback asks for.
type Credit struct {
	ReferenceID string
	UserID      string
	Tokens      int64
	Email       string
}

type callbackPayload struct {
	ReferenceID string `json:"referenceId"`
	State       string `json:"state"`
	Customer    *struct {
		Email string `json:"email"`
	} `json:"customer"`
	AdditionalParameters map[string]json.RawMessage `json:"additionalParameters"`
}

// ParseCallback decodes a raw callback body, unwrapping an optional
// top-level "result" envelope.
func ParseCallback(raw []byte) (*Callback, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, ErrMalformedCallback
	}

	body := raw
	if inner, ok := envelope["result"]; ok && isObject(inner) {
		body = inner
	}

	var p callbackPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, ErrMalformedCallback
	}

	cb := &Callback{
		ReferenceID:          strings.TrimSpace(p.ReferenceID),
		State:                State(strings.ToUpper(strings.TrimSpace(p.State))),
		AdditionalParameters: p.AdditionalParameters,
	}
	if p.Customer != nil {
		cb.CustomerEmail = strings.TrimSpace(p.Customer.Email)
	}
	if cb.AdditionalParameters == nil {
		cb.AdditionalParameters = map[string]json.RawMessage{}
	}
	if cb.ReferenceID == "" {
		cb.ReferenceID = cb.param("reference_id")
	}
	return cb, nil
}

// Credit extracts the credit instruction of a completed payment. The user id,
// a positive whole token count and the reference id are all required.
func (c *Callback) Credit() (Credit, error) {
	userID := c.param("user_id")
	if userID == "" {
		userID = c.param("userId")
	}

	tokens, ok := wholePositive(ParseNumber(c.AdditionalParameters["tokens"]))
	if userID == "" || !ok || c.ReferenceID == "" {
		return Credit{}, ErrIncompleteCreditParameters
	}

	return Credit{
		ReferenceID: c.ReferenceID,
		UserID:      userID,
		Tokens:      tokens,
		Email:       c.CustomerEmail,
	}, nil
}

// param reads a string or number parameter as text.
func (c *Callback) param(key string) string {
	raw, ok := c.AdditionalParameters[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	if n := ParseNumber(raw); n.Valid {
		return n.Decimal.String()
	}
	return ""
}

func isObject(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '{'
}
