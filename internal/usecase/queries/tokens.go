package queries

import (
	"context"
	"time"

	"token-storefront/internal/infra"
	"token-storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultTransactionLimit = 20
	MaxTransactionLimit     = 100
)

var (
	ErrInvalidLimit  = errs.New("limit must be between 1 and 100")
	ErrInvalidCursor = errs.New("invalid cursor")
)

type BalanceView struct {
	UserID    string     `json:"user_id"`
	Tokens    int64      `json:"tokens"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type TransactionView struct {
	ID            uuid.UUID `json:"id"`
	UserID        string    `json:"user_id"`
	Amount        int64     `json:"amount"`
	Type          string    `json:"type"`
	PaymentMethod string    `json:"payment_method"`
	ReferenceID   *string   `json:"reference_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreditedReferenceView struct {
	ReferenceID string    `json:"reference_id"`
	UserID      string    `json:"user_id"`
	Tokens      int64     `json:"tokens"`
	CreatedAt   time.Time `json:"created_at"`
}

// PaymentStatusView tells a returning buyer whether their purchase was credited.
type PaymentStatusView struct {
	ReferenceID string     `json:"reference_id"`
	Credited    bool       `json:"credited"`
	Tokens      int64      `json:"tokens"`
	CreditedAt  *time.Time `json:"credited_at,omitempty"`
}

type BalanceReadStore interface {
	FindByUserID(ctx context.Context, userID string) (*BalanceView, error)
}

type TransactionReadStore interface {
	ListByUser(ctx context.Context, userID string, limit int32) ([]*TransactionView, error)
	ListByUserKeyset(ctx context.Context, userID string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*TransactionView, error)
}

type CreditedReferenceReadStore interface {
	FindByReference(ctx context.Context, referenceID string) (*CreditedReferenceView, error)
}

type TokenQueries interface {
	GetBalance(ctx context.Context, userID string) (*BalanceView, error)
	ListTransactions(ctx context.Context, userID string, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error)
	GetPaymentStatus(ctx context.Context, userID, referenceID string) (*PaymentStatusView, error)
}

type tokenQueriesImpl struct {
	balances     BalanceReadStore
	transactions TransactionReadStore
	references   CreditedReferenceReadStore
}

func NewTokenQueries(balances BalanceReadStore, transactions TransactionReadStore, references CreditedReferenceReadStore) TokenQueries {
	return &tokenQueriesImpl{
		balances:     balances,
		transactions: transactions,
		references:   references,
	}
}

// GetBalance reports zero for users that never bought tokens.
func (q *tokenQueriesImpl) GetBalance(ctx context.Context, userID string) (*BalanceView, error) {
	view, err := q.balances.FindByUserID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &BalanceView{UserID: userID, Tokens: 0}, nil
		}
		return nil, err
	}
	return view, nil
}

func (q *tokenQueriesImpl) ListTransactions(ctx context.Context, userID string, cursor *Cursor, limit int) ([]*TransactionView, *Cursor, error) {
	if limit == 0 {
		limit = DefaultTransactionLimit
	}
	if limit < 1 || limit > MaxTransactionLimit {
		return nil, nil, ErrInvalidLimit
	}
	pageSize := int32(limit) // #nosec G115 -- bounded above

	var (
		items []*TransactionView
		err   error
	)
	if cursor != nil && cursor.After != "" {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		items, err = q.transactions.ListByUserKeyset(ctx, userID, lastCreatedAt, lastID, pageSize)
	} else {
		items, err = q.transactions.ListByUser(ctx, userID, pageSize)
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) == limit {
		last := items[len(items)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return items, next, nil
}

// References credited to another user are reported as not credited.
func (q *tokenQueriesImpl) GetPaymentStatus(ctx context.Context, userID, referenceID string) (*PaymentStatusView, error) {
	pending := &PaymentStatusView{ReferenceID: referenceID, Credited: false}

	ref, err := q.references.FindByReference(ctx, referenceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return pending, nil
		}
		return nil, err
	}
	if ref.UserID != userID {
		return pending, nil
	}

	creditedAt := ref.CreatedAt
	return &PaymentStatusView{
		ReferenceID: ref.ReferenceID,
		Credited:    true,
		Tokens:      ref.Tokens,
		CreditedAt:  &creditedAt,
	}, nil
}
