package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Balance errors
	ErrBalanceNotFound    = errors.New("token balance not found")
	ErrInsufficientTokens = errors.New("insufficient tokens")

	// Webhook errors
	ErrInvalidSignature            = errors.New("invalid signature")
	ErrInvalidPayload              = errors.New("invalid payload")
	ErrInvalidAdditionalParameters = errors.New("invalid additional parameters")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
