//go:build unit || e2e

package builder

import (
	"time"

	"token-storefront/internal/domain/ledger"
	sqlc "token-storefront/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TransactionBuilder struct {
	UserID        string
	Amount        int64
	Type          ledger.TransactionType
	PaymentMethod string
	ReferenceID   *string
	CreatedAt     time.Time
}

func NewTransactionBuilder() *TransactionBuilder {
	ref := "CS-u1-1700000000000"
	return &TransactionBuilder{
		UserID:        "u1",
		Amount:        50,
		Type:          ledger.TransactionCredit,
		PaymentMethod: "transfermit",
		ReferenceID:   &ref,
		CreatedAt:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func (b *TransactionBuilder) With(mutate func(*TransactionBuilder)) *TransactionBuilder {
	mutate(b)
	return b
}

func (b *TransactionBuilder) BuildDomain() (*ledger.Transaction, error) {
	return ledger.NewTransaction(b.UserID, b.Amount, b.Type, b.PaymentMethod, b.ReferenceID)
}

func (b *TransactionBuilder) BuildInfra() sqlc.TokenTransactions {
	ref := pgtype.Text{}
	if b.ReferenceID != nil {
		ref = pgtype.Text{String: *b.ReferenceID, Valid: true}
	}
	return sqlc.TokenTransactions{
		ID:            uuid.New(),
		UserID:        b.UserID,
		Amount:        b.Amount,
		Type:          string(b.Type),
		PaymentMethod: b.PaymentMethod,
		ReferenceID:   ref,
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *TransactionBuilder) AsSpend() *TransactionBuilder {
	b.Type = ledger.TransactionSpend
	b.PaymentMethod = ledger.PaymentMethodTokens
	b.ReferenceID = nil
	return b
}

type BalanceBuilder struct {
	UserID string
	Email  string
	Tokens int64
}

func NewBalanceBuilder() *BalanceBuilder {
	return &BalanceBuilder{UserID: "u1", Email: "buyer@example.com", Tokens: 100}
}

func (b *BalanceBuilder) WithTokens(tokens int64) *BalanceBuilder {
	b.Tokens = tokens
	return b
}

func (b *BalanceBuilder) BuildInfra() sqlc.TokenBalances {
	now := time.Now()
	return sqlc.TokenBalances{
		UserID:    b.UserID,
		Email:     pgtype.Text{String: b.Email, Valid: b.Email != ""},
		Tokens:    b.Tokens,
		CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	}
}

type OrderBuilder struct {
	UserID   string
	Email    string
	Prompt   string
	Response string
	Tokens   int64
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		UserID:   "u1",
		Email:    "buyer@example.com",
		Prompt:   "https://example.com",
		Response: "data:image/png;base64,AAAA",
		Tokens:   10,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildDomain() (*ledger.Order, error) {
	return ledger.NewOrder(b.UserID, b.Email, b.Prompt, b.Response, b.Tokens)
}
