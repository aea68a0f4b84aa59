package readstore

import (
	"context"

	"token-storefront/internal/infra"
	sqlc "token-storefront/internal/infra/sqlc/generated"
	"token-storefront/internal/pkg/pgconv"
	"token-storefront/internal/usecase/queries"
)

type CreditedReferenceReadQueries interface {
	GetCreditedReference(ctx context.Context, db sqlc.DBTX, referenceID string) (sqlc.CreditedReferences, error)
}

type CreditedReferenceReadStore struct {
	queries CreditedReferenceReadQueries
	db      sqlc.DBTX
}

func NewCreditedReferenceReadStore(queries CreditedReferenceReadQueries, db sqlc.DBTX) *CreditedReferenceReadStore {
	return &CreditedReferenceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CreditedReferenceReadStore) FindByReference(ctx context.Context, referenceID string) (*queries.CreditedReferenceView, error) {
	row, err := r.queries.GetCreditedReference(ctx, r.db, referenceID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("credited reference not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get credited reference", err)
	}
	return &queries.CreditedReferenceView{
		ReferenceID: row.ReferenceID,
		UserID:      row.UserID,
		Tokens:      row.Tokens,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
