package components

import (
	"token-storefront/internal/infra/readstore"
	sqlc "token-storefront/internal/infra/sqlc/generated"
	"token-storefront/internal/infra/uow"
	"token-storefront/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write repositories are built per transaction by the unit of work.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	uow.NewPostgresUoW,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Balance
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BalanceReadQueries)),
		),
		fx.Annotate(
			readstore.NewBalanceReadStore,
			fx.As(new(queries.BalanceReadStore)),
		),
		// Transaction
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TransactionReadQueries)),
		),
		fx.Annotate(
			readstore.NewTransactionReadStore,
			fx.As(new(queries.TransactionReadStore)),
		),
		// CreditedReference
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CreditedReferenceReadQueries)),
		),
		fx.Annotate(
			readstore.NewCreditedReferenceReadStore,
			fx.As(new(queries.CreditedReferenceReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
