package repository

import (
	"context"

	"token-storefront/internal/domain/ledger"
	"token-storefront/internal/infra"
	"token-storefront/internal/infra/repository/converter"
	sqlc "token-storefront/internal/infra/sqlc/generated"
)

type TransactionWriteQueries interface {
	CreateTokenTransaction(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTokenTransactionParams) (sqlc.TokenTransactions, error)
}

type TransactionRepository struct {
	queries TransactionWriteQueries
}

func NewTransactionRepository(queries TransactionWriteQueries) *TransactionRepository {
	return &TransactionRepository{
		queries: queries,
	}
}

func (r *TransactionRepository) Record(ctx context.Context, tx sqlc.DBTX, t *ledger.Transaction) error {
	params := converter.TransactionToCreateParams(t)
	if _, err := r.queries.CreateTokenTransaction(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to record token transaction", err)
	}
	return nil
}
