package readstore

import (
	"context"
	"time"

	"token-storefront/internal/infra"
	sqlc "token-storefront/internal/infra/sqlc/generated"
	"token-storefront/internal/pkg/pgconv"
	"token-storefront/internal/usecase/queries"

	"github.com/google/uuid"
)

type TransactionReadQueries interface {
	ListTokenTransactionsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTokenTransactionsByUserParams) ([]sqlc.TokenTransactions, error)
	ListTokenTransactionsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTokenTransactionsByUserKeysetParams) ([]sqlc.TokenTransactions, error)
}

type TransactionReadStore struct {
	queries TransactionReadQueries
	db      sqlc.DBTX
}

func NewTransactionReadStore(queries TransactionReadQueries, db sqlc.DBTX) *TransactionReadStore {
	return &TransactionReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TransactionReadStore) ListByUser(ctx context.Context, userID string, limit int32) ([]*queries.TransactionView, error) {
	rows, err := r.queries.ListTokenTransactionsByUser(ctx, r.db, sqlc.ListTokenTransactionsByUserParams{
		UserID: userID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list token transactions", err)
	}

	return mapTransactionRows(rows), nil
}

func (r *TransactionReadStore) ListByUserKeyset(ctx context.Context, userID string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.TransactionView, error) {
	rows, err := r.queries.ListTokenTransactionsByUserKeyset(ctx, r.db, sqlc.ListTokenTransactionsByUserKeysetParams{
		UserID:  userID,
		Column2: pgconv.TimeToPgtype(lastCreatedAt),
		Column3: lastID,
		Limit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list token transactions after cursor", err)
	}
	return mapTransactionRows(rows), nil
}

func mapTransactionRows(rows []sqlc.TokenTransactions) []*queries.TransactionView {
	items := make([]*queries.TransactionView, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.TransactionView{
			ID:            row.ID,
			UserID:        row.UserID,
			Amount:        row.Amount,
			Type:          row.Type,
			PaymentMethod: row.PaymentMethod,
			ReferenceID:   pgconv.StringPtrFromPgtype(row.ReferenceID),
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items
}
