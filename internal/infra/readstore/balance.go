package readstore

import (
	"context"

	"token-storefront/internal/infra"
	sqlc "token-storefront/internal/infra/sqlc/generated"
	"token-storefront/internal/pkg/pgconv"
	"token-storefront/internal/pkg/ptr"
	"token-storefront/internal/usecase/queries"
	"token-storefront/internal/usecase/shared"
)

type BalanceReadQueries interface {
	GetTokenBalance(ctx context.Context, db sqlc.DBTX, userID string) (sqlc.TokenBalances, error)
}

type BalanceReadStore struct {
	queries BalanceReadQueries
	db      sqlc.DBTX
}

func NewBalanceReadStore(queries BalanceReadQueries, db sqlc.DBTX) *BalanceReadStore {
	return &BalanceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BalanceReadStore) FindByUserID(ctx context.Context, userID string) (*queries.BalanceView, error) {
	row, err := r.find(ctx, r.db, userID)
	if err != nil {
		return nil, err
	}
	return &queries.BalanceView{
		UserID:    row.UserID,
		Tokens:    row.Tokens,
		UpdatedAt: ptr.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// SnapshotByUserID reads through the caller's transaction.
func (r *BalanceReadStore) SnapshotByUserID(ctx context.Context, tx sqlc.DBTX, userID string) (*shared.BalanceSnapshot, error) {
	row, err := r.find(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	return &shared.BalanceSnapshot{
		UserID:    row.UserID,
		Tokens:    row.Tokens,
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BalanceReadStore) find(ctx context.Context, db sqlc.DBTX, userID string) (sqlc.TokenBalances, error) {
	row, err := r.queries.GetTokenBalance(ctx, db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return row, infra.WrapRepoErr("token balance not found", err, infra.KindNotFound)
		}
		return row, infra.WrapRepoErr("failed to get token balance", err)
	}
	return row, nil
}
