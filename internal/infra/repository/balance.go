package repository

import (
	"context"

	"token-storefront/internal/domain/ledger"
	"token-storefront/internal/infra"
	"token-storefront/internal/infra/repository/converter"
	sqlc "token-storefront/internal/infra/sqlc/generated"
	"token-storefront/internal/pkg/errs"
	"token-storefront/internal/pkg/pgconv"
)

type BalanceWriteQueries interface {
	CreditTokenBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.CreditTokenBalanceParams) (sqlc.TokenBalances, error)
	DebitTokenBalance(ctx context.Context, db sqlc.DBTX, arg sqlc.DebitTokenBalanceParams) (sqlc.TokenBalances, error)
	TokenBalanceExists(ctx context.Context, db sqlc.DBTX, userID string) (bool, error)
}

type BalanceRepository struct {
	queries BalanceWriteQueries
}

func NewBalanceRepository(queries BalanceWriteQueries) *BalanceRepository {
	return &BalanceRepository{
		queries: queries,
	}
}

func (r *BalanceRepository) Credit(ctx context.Context, tx sqlc.DBTX, userID string, tokens int64, email *string) (*ledger.Balance, error) {
	row, err := r.queries.CreditTokenBalance(ctx, tx, sqlc.CreditTokenBalanceParams{
		UserID: userID,
		Email:  pgconv.StringPtrToPgtype(email),
		Tokens: tokens,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to credit token balance", err)
	}
	return converter.BalanceFromRow(row), nil
}

// Debit relies on the conditional UPDATE for the floor check, so two concurrent
// spends can never take the balance below zero.
func (r *BalanceRepository) Debit(ctx context.Context, tx sqlc.DBTX, userID string, tokens int64) (*ledger.Balance, error) {
	row, err := r.queries.DebitTokenBalance(ctx, tx, sqlc.DebitTokenBalanceParams{
		Amount: tokens,
		UserID: userID,
	})
	if err == nil {
		return converter.BalanceFromRow(row), nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to debit token balance", err)
	}

	exists, err := r.queries.TokenBalanceExists(ctx, tx, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to check token balance", err)
	}
	if !exists {
		return nil, infra.WrapRepoErr("token balance not found", errs.ErrBalanceNotFound, infra.KindNotFound)
	}
	return nil, infra.WrapRepoErr("token balance too low", errs.ErrInsufficientTokens, infra.KindCheckViolation)
}
