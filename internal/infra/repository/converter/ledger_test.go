//go:build unit

package converter_test

import (
	"testing"
	"time"

	"token-storefront/internal/domain/ledger"
	"token-storefront/internal/infra/repository/converter"
	sqlc "token-storefront/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceFromRow(t *testing.T) {
	updated := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	b := converter.BalanceFromRow(sqlc.TokenBalances{
		UserID:    "u1",
		Email:     pgtype.Text{String: "a@b.com", Valid: true},
		Tokens:    2500,
		UpdatedAt: pgtype.Timestamptz{Time: updated, Valid: true},
	})

	require.NotNil(t, b.Email)
	assert.Equal(t, "a@b.com", *b.Email)
	assert.Equal(t, int64(2500), b.Tokens)
	assert.True(t, updated.Equal(b.UpdatedAt))

	assert.Nil(t, converter.BalanceFromRow(sqlc.TokenBalances{UserID: "u2"}).Email)
}

func TestTransactionToCreateParams(t *testing.T) {
	ref := "CS-u1-1700000000"
	tx, err := ledger.NewTransaction("u1", 2500, ledger.TransactionCredit, "transfermit", &ref)
	require.NoError(t, err)

	p := converter.TransactionToCreateParams(tx)

	assert.Equal(t, tx.ID(), p.ID)
	assert.Equal(t, "credit", p.Type)
	assert.Equal(t, pgtype.Text{String: ref, Valid: true}, p.ReferenceID)
}

func TestOrderToCreateParams(t *testing.T) {
	o, err := ledger.NewOrder("u1", " a@b.com ", "hello", "qr-payload", 3)
	require.NoError(t, err)

	p := converter.OrderToCreateParams(o)

	assert.Equal(t, o.ID(), p.ID)
	assert.Equal(t, "a@b.com", p.Email)
	assert.Equal(t, int64(3), p.Tokens)
}
