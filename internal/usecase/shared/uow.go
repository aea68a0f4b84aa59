package shared

import (
	"context"

	"token-storefront/internal/domain/ledger"
	sqlc "token-storefront/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Balances() BalanceRepository
	Transactions() TransactionRepository
	CreditedReferences() CreditedReferenceRepository
	Orders() OrderRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	BalanceByUserID(ctx context.Context, userID string) (*BalanceSnapshot, error)
}

type BalanceRepository interface {
	// Credit adds tokens, creating the balance row when missing.
	Credit(ctx context.Context, tx sqlc.DBTX, userID string, tokens int64, email *string) (*ledger.Balance, error)
	// Debit subtracts tokens only when the balance covers them.
	Debit(ctx context.Context, tx sqlc.DBTX, userID string, tokens int64) (*ledger.Balance, error)
}

type TransactionRepository interface {
	Record(ctx context.Context, tx sqlc.DBTX, t *ledger.Transaction) error
}

type CreditedReferenceRepository interface {
	// TryInsert reports false when the reference was already credited.
	TryInsert(ctx context.Context, tx sqlc.DBTX, referenceID, userID string, tokens int64) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *ledger.Order) error
}
