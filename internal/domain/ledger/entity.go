package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount  = errors.New("token amount must be positive")
	ErrInvalidUserID  = errors.New("user id is required")
	ErrInvalidType    = errors.New("invalid transaction type")
	ErrPromptTooLong  = errors.New("prompt exceeds maximum length")
	ErrMissingPayment = errors.New("payment method is required")
)

const MaxPromptLength = 4000

// Balance is the single mutable token counter of a user.
type Balance struct {
	UserID    string
	Email     *string
	Tokens    int64
	UpdatedAt time.Time
}

// Transaction is an append-only ledger entry.
type Transaction struct {
	id            uuid.UUID
	userID        string
	amount        int64
	txType        TransactionType
	paymentMethod string
	referenceID   *string
}

func NewTransaction(userID string, amount int64, txType TransactionType, paymentMethod string, referenceID *string) (*Transaction, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !txType.IsValid() {
		return nil, ErrInvalidType
	}
	if strings.TrimSpace(paymentMethod) == "" {
		return nil, ErrMissingPayment
	}
	return &Transaction{
		id:            uuid.New(),
		userID:        userID,
		amount:        amount,
		txType:        txType,
		paymentMethod: paymentMethod,
		referenceID:   referenceID,
	}, nil
}

func (t *Transaction) ID() uuid.UUID         { return t.id }
func (t *Transaction) UserID() string        { return t.userID }
func (t *Transaction) Amount() int64         { return t.amount }
func (t *Transaction) Type() TransactionType { return t.txType }
func (t *Transaction) PaymentMethod() string { return t.paymentMethod }
func (t *Transaction) ReferenceID() *string  { return t.referenceID }

// Order is a token-metered action, such as a generated QR code.
type Order struct {
	id       uuid.UUID
	userID   string
	email    string
	prompt   string
	response string
	tokens   int64
}

func NewOrder(userID, email, prompt, response string, tokens int64) (*Order, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if tokens <= 0 {
		return nil, ErrInvalidAmount
	}
	if len(prompt) > MaxPromptLength {
		return nil, ErrPromptTooLong
	}
	return &Order{
		id:       uuid.New(),
		userID:   userID,
		email:    strings.TrimSpace(email),
		prompt:   prompt,
		response: response,
		tokens:   tokens,
	}, nil
}

func (o *Order) ID() uuid.UUID    { return o.id }
func (o *Order) UserID() string   { return o.userID }
func (o *Order) Email() string    { return o.email }
func (o *Order) Prompt() string   { return o.prompt }
func (o *Order) Response() string { return o.response }
func (o *Order) Tokens() int64    { return o.tokens }

// SpendTransaction is the ledger entry paying for the order.
func (o *Order) SpendTransaction() (*Transaction, error) {
	return NewTransaction(o.userID, o.tokens, TransactionSpend, PaymentMethodTokens, nil)
}
