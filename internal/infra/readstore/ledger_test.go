//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"token-storefront/internal/infra"
	"token-storefront/internal/infra/readstore"
	sqlc "token-storefront/internal/infra/sqlc/generated"
	"token-storefront/tests/common/builder"
	readstoremock "token-storefront/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBalanceReadStore_FindByUserID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockBalanceReadQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success",
			setupMock: func(mock *readstoremock.MockBalanceReadQueries) {
				mock.EXPECT().GetTokenBalance(ctx, gomock.Any(), "u1").Return(builder.NewBalanceBuilder().BuildInfra(), nil)
			},
		},
		{
			name: "not found",
			setupMock: func(mock *readstoremock.MockBalanceReadQueries) {
				mock.EXPECT().GetTokenBalance(ctx, gomock.Any(), "u1").Return(sqlc.TokenBalances{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "database failure",
			setupMock: func(mock *readstoremock.MockBalanceReadQueries) {
				mock.EXPECT().GetTokenBalance(ctx, gomock.Any(), "u1").Return(sqlc.TokenBalances{}, errors.New("connection refused"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockBalanceReadQueries(ctrl)
			store := readstore.NewBalanceReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			view, err := store.FindByUserID(ctx, "u1")

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", view.UserID)
			assert.Equal(t, int64(100), view.Tokens)
			assert.NotNil(t, view.UpdatedAt)
		})
	}
}

func TestBalanceReadStore_SnapshotUsesCallerTx(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockBalanceReadQueries(ctrl)
	poolDB := &mockDBTX{}
	txDB := &mockDBTX{name: "tx"}
	store := readstore.NewBalanceReadStore(mockQueries, poolDB)

	mockQueries.EXPECT().GetTokenBalance(ctx, txDB, "u1").Return(builder.NewBalanceBuilder().WithTokens(7).BuildInfra(), nil)

	snap, err := store.SnapshotByUserID(ctx, txDB, "u1")

	require.NoError(t, err)
	assert.Equal(t, int64(7), snap.Tokens)
}

func TestTransactionReadStore(t *testing.T) {
	ctx := context.Background()

	t.Run("first page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockTransactionReadQueries(ctrl)
		store := readstore.NewTransactionReadStore(mockQueries, &mockDBTX{})

		credit := builder.NewTransactionBuilder().BuildInfra()
		spend := builder.NewTransactionBuilder().AsSpend().BuildInfra()
		mockQueries.EXPECT().ListTokenTransactionsByUser(ctx, gomock.Any(), sqlc.ListTokenTransactionsByUserParams{UserID: "u1", Limit: 20}).
			Return([]sqlc.TokenTransactions{credit, spend}, nil)

		items, err := store.ListByUser(ctx, "u1", 20)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, credit.ID, items[0].ID)
		require.NotNil(t, items[0].ReferenceID)
		assert.Equal(t, "CS-u1-1700000000000", *items[0].ReferenceID)
		assert.Equal(t, "spend", items[1].Type)
		assert.Nil(t, items[1].ReferenceID)
	})

	t.Run("keyset page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockTransactionReadQueries(ctrl)
		store := readstore.NewTransactionReadStore(mockQueries, &mockDBTX{})

		lastAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		lastID := uuid.New()
		mockQueries.EXPECT().ListTokenTransactionsByUserKeyset(ctx, gomock.Any(), sqlc.ListTokenTransactionsByUserKeysetParams{
			UserID:  "u1",
			Column2: pgtype.Timestamptz{Time: lastAt, Valid: true},
			Column3: lastID,
			Limit:   5,
		}).Return(nil, nil)

		items, err := store.ListByUserKeyset(ctx, "u1", lastAt, lastID, 5)

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockTransactionReadQueries(ctrl)
		store := readstore.NewTransactionReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListTokenTransactionsByUser(ctx, gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		_, err := store.ListByUser(ctx, "u1", 20)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestCreditedReferenceReadStore_FindByReference(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockCreditedReferenceReadQueries(ctrl)
	store := readstore.NewCreditedReferenceReadStore(mockQueries, &mockDBTX{})

	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mockQueries.EXPECT().GetCreditedReference(ctx, gomock.Any(), "CS-u1-1").Return(sqlc.CreditedReferences{
		ReferenceID: "CS-u1-1",
		UserID:      "u1",
		Tokens:      50,
		CreatedAt:   pgtype.Timestamptz{Time: createdAt, Valid: true},
	}, nil)
	mockQueries.EXPECT().GetCreditedReference(ctx, gomock.Any(), "CS-u1-2").Return(sqlc.CreditedReferences{}, pgx.ErrNoRows)

	view, err := store.FindByReference(ctx, "CS-u1-1")
	require.NoError(t, err)
	assert.Equal(t, int64(50), view.Tokens)
	assert.True(t, createdAt.Equal(view.CreatedAt))

	_, err = store.FindByReference(ctx, "CS-u1-2")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

type mockDBTX struct {
	name string
}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
