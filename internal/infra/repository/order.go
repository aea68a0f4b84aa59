package repository

import (
	"context"

	"token-storefront/internal/domain/ledger"
	"token-storefront/internal/infra"
	"token-storefront/internal/infra/repository/converter"
	sqlc "token-storefront/internal/infra/sqlc/generated"
)

type OrderWriteQueries interface {
	CreateTokenOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTokenOrderParams) (sqlc.TokenOrders, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{
		queries: queries,
	}
}

func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *ledger.Order) error {
	if _, err := r.queries.CreateTokenOrder(ctx, tx, converter.OrderToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create token order", err)
	}
	return nil
}
