package repository

import (
	"context"

	"token-storefront/internal/infra"
	sqlc "token-storefront/internal/infra/sqlc/generated"
)

type CreditedReferenceWriteQueries interface {
	InsertCreditedReference(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCreditedReferenceParams) (int64, error)
}

type CreditedReferenceRepository struct {
	queries CreditedReferenceWriteQueries
}

func NewCreditedReferenceRepository(queries CreditedReferenceWriteQueries) *CreditedReferenceRepository {
	return &CreditedReferenceRepository{
		queries: queries,
	}
}

func (r *CreditedReferenceRepository) TryInsert(ctx context.Context, tx sqlc.DBTX, referenceID, userID string, tokens int64) (bool, error) {
	affected, err := r.queries.InsertCreditedReference(ctx, tx, sqlc.InsertCreditedReferenceParams{
		ReferenceID: referenceID,
		UserID:      userID,
		Tokens:      tokens,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert credited reference", err)
	}
	return affected == 1, nil
}
