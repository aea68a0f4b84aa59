//go:build unit

// Package memuow is an in-memory shared.UnitOfWork for usecase tests.
// Transactions run one at a time and roll back on error.
package memuow

import (
	"context"
	"errors"
	"maps"
	"sync"
	"time"

	"token-storefront/internal/domain/ledger"
	"token-storefront/internal/infra"
	sqlc "token-storefront/internal/infra/sqlc/generated"
	"token-storefront/internal/pkg/errs"
	"token-storefront/internal/usecase/shared"
)

var ErrFailInjected = errors.New("injected storage failure")

type TransactionRecord struct {
	UserID        string
	Amount        int64
	Type          ledger.TransactionType
	PaymentMethod string
	ReferenceID   *string
}

type OrderRecord struct {
	UserID string
	Email  string
	Prompt string
	Tokens int64
}

type state struct {
	balances     map[string]int64
	emails       map[string]string
	references   map[string]string
	transactions []TransactionRecord
	orders       []OrderRecord
}

func (s state) clone() state {
	return state{
		balances:     maps.Clone(s.balances),
		emails:       maps.Clone(s.emails),
		references:   maps.Clone(s.references),
		transactions: append([]TransactionRecord(nil), s.transactions...),
		orders:       append([]OrderRecord(nil), s.orders...),
	}
}

type Store struct {
	mu    sync.Mutex
	state state

	// FailOn makes the named repository operation fail, e.g. "Balances.Credit".
	FailOn string
}

func New() *Store {
	return &Store{state: state{
		balances:   map[string]int64{},
		emails:     map[string]string{},
		references: map[string]string{},
	}}
}

func (s *Store) SetBalance(userID string, tokens int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.balances[userID] = tokens
}

// Balance returns the tokens of userID and whether a row exists.
func (s *Store) Balance(userID string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.state.balances[userID]
	return v, ok
}

func (s *Store) Email(userID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.emails[userID]
}

func (s *Store) Transactions() []TransactionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]TransactionRecord(nil), s.state.transactions...)
}

func (s *Store) Orders() []OrderRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]OrderRecord(nil), s.state.orders...)
}

func (s *Store) CreditedReferences() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.references)
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := &memTx{store: s, st: s.state.clone()}
	if err := fn(ctx, work); err != nil {
		return err
	}
	s.state = work.st
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) CommandReads() shared.CommandReads {
	return &memReads{get: func() state {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.state.clone()
	}}
}

type memTx struct {
	store *Store
	st    state
}

func (t *memTx) fail(op string) error {
	if t.store.FailOn == op {
		return infra.WrapRepoErr("injected", ErrFailInjected)
	}
	return nil
}

func (t *memTx) Balances() shared.BalanceRepository                     { return (*memBalances)(t) }
func (t *memTx) Transactions() shared.TransactionRepository             { return (*memTransactions)(t) }
func (t *memTx) CreditedReferences() shared.CreditedReferenceRepository { return (*memReferences)(t) }
func (t *memTx) Orders() shared.OrderRepository                         { return (*memOrders)(t) }
func (t *memTx) DB() sqlc.DBTX                                          { return nil }
func (t *memTx) Reads() shared.CommandReads {
	return &memReads{get: func() state { return t.st }}
}

type memBalances memTx

func (b *memBalances) Credit(_ context.Context, _ sqlc.DBTX, userID string, tokens int64, email *string) (*ledger.Balance, error) {
	t := (*memTx)(b)
	if err := t.fail("Balances.Credit"); err != nil {
		return nil, err
	}
	t.st.balances[userID] += tokens
	if email != nil {
		t.st.emails[userID] = *email
	}
	return &ledger.Balance{UserID: userID, Tokens: t.st.balances[userID], UpdatedAt: time.Now()}, nil
}

func (b *memBalances) Debit(_ context.Context, _ sqlc.DBTX, userID string, tokens int64) (*ledger.Balance, error) {
	t := (*memTx)(b)
	if err := t.fail("Balances.Debit"); err != nil {
		return nil, err
	}
	current, ok := t.st.balances[userID]
	if !ok {
		return nil, infra.WrapRepoErr("token balance not found", errs.ErrBalanceNotFound, infra.KindNotFound)
	}
	if current < tokens {
		return nil, infra.WrapRepoErr("token balance too low", errs.ErrInsufficientTokens, infra.KindCheckViolation)
	}
	t.st.balances[userID] = current - tokens
	return &ledger.Balance{UserID: userID, Tokens: current - tokens, UpdatedAt: time.Now()}, nil
}

type memTransactions memTx

func (r *memTransactions) Record(_ context.Context, _ sqlc.DBTX, txn *ledger.Transaction) error {
	t := (*memTx)(r)
	if err := t.fail("Transactions.Record"); err != nil {
		return err
	}
	t.st.transactions = append(t.st.transactions, TransactionRecord{
		UserID:        txn.UserID(),
		Amount:        txn.Amount(),
		Type:          txn.Type(),
		PaymentMethod: txn.PaymentMethod(),
		ReferenceID:   txn.ReferenceID(),
	})
	return nil
}

type memReferences memTx

func (r *memReferences) TryInsert(_ context.Context, _ sqlc.DBTX, referenceID, userID string, _ int64) (bool, error) {
	t := (*memTx)(r)
	if err := t.fail("CreditedReferences.TryInsert"); err != nil {
		return false, err
	}
	if _, ok := t.st.references[referenceID]; ok {
		return false, nil
	}
	t.st.references[referenceID] = userID
	return true, nil
}

type memOrders memTx

func (r *memOrders) Create(_ context.Context, _ sqlc.DBTX, o *ledger.Order) error {
	t := (*memTx)(r)
	if err := t.fail("Orders.Create"); err != nil {
		return err
	}
	t.st.orders = append(t.st.orders, OrderRecord{
		UserID: o.UserID(),
		Email:  o.Email(),
		Prompt: o.Prompt(),
		Tokens: o.Tokens(),
	})
	return nil
}

type memReads struct {
	get func() state
}

func (r *memReads) BalanceByUserID(_ context.Context, userID string) (*shared.BalanceSnapshot, error) {
	st := r.get()
	tokens, ok := st.balances[userID]
	if !ok {
		return nil, infra.WrapRepoErr("token balance not found", errs.ErrBalanceNotFound, infra.KindNotFound)
	}
	return &shared.BalanceSnapshot{UserID: userID, Tokens: tokens}, nil
}
