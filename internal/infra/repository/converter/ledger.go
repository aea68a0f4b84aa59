package converter

import (
	"token-storefront/internal/domain/ledger"
	sqlc "token-storefront/internal/infra/sqlc/generated"
	"token-storefront/internal/pkg/pgconv"
)

func BalanceFromRow(row sqlc.TokenBalances) *ledger.Balance {
	return &ledger.Balance{
		UserID:    row.UserID,
		Email:     pgconv.StringPtrFromPgtype(row.Email),
		Tokens:    row.Tokens,
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func TransactionToCreateParams(t *ledger.Transaction) sqlc.CreateTokenTransactionParams {
	return sqlc.CreateTokenTransactionParams{
		ID:            t.ID(),
		UserID:        t.UserID(),
		Amount:        t.Amount(),
		Type:          string(t.Type()),
		PaymentMethod: t.PaymentMethod(),
		ReferenceID:   pgconv.StringPtrToPgtype(t.ReferenceID()),
	}
}

func OrderToCreateParams(o *ledger.Order) sqlc.CreateTokenOrderParams {
	return sqlc.CreateTokenOrderParams{
		ID:       o.ID(),
		UserID:   o.UserID(),
		Email:    o.Email(),
		Prompt:   o.Prompt(),
		Response: o.Response(),
		Tokens:   o.Tokens(),
	}
}
