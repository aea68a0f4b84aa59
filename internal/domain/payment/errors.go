package payment

import (
	"encoding/json"
	"fmt"
)

// Code is the machine readable error code returned to the storefront.
type Code string

const (
	CodeUnsupportedCurrency Code = "unsupported_currency"
	CodeMinAmount           Code = "min_amount_10"
	CodeInvalidTokens       Code = "invalid_tokens"
	CodeUserRequired        Code = "user_required"
)

// Error is a client-correctable purchase error.
type Error struct {
	Code    Code
	Message string
	auth    bool
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// IsAuth reports whether the error concerns caller identity rather than input.
func (e *Error) IsAuth() bool {
	return e.auth
}

var (
	ErrUnsupportedCurrency = &Error{Code: CodeUnsupportedCurrency, Message: "currency is not supported"}
	ErrMinAmount           = &Error{Code: CodeMinAmount, Message: "amount is below the minimum purchase amount"}
	ErrInvalidTokens       = &Error{Code: CodeInvalidTokens, Message: "tokens must be a positive whole number"}
	ErrUserRequired        = &Error{Code: CodeUserRequired, Message: "user id and email are required", auth: true}
)

const (
	CodeGatewayError       Code = "transfermit_error"
	CodeMissingRedirectURL Code = "missing_redirect_url"
)

// GatewayError is a failure reported by, or while reaching, the payment processor.
// Status is the HTTP status to relay to the storefront.
type GatewayError struct {
	Code    Code
	Status  int
	Details json.RawMessage
	cause   error
}

func NewGatewayError(code Code, status int, details json.RawMessage, cause error) *GatewayError {
	if len(details) == 0 {
		details = json.RawMessage(`{}`)
	}
	return &GatewayError{Code: code, Status: status, Details: details, cause: cause}
}

func (e *GatewayError) Error() string {
	msg := fmt.Sprintf("%s (status %d)", e.Code, e.Status)
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *GatewayError) Unwrap() error {
	return e.cause
}
