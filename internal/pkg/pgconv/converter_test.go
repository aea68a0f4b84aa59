//go:build unit

package pgconv

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestStringPtrToPgtype(t *testing.T) {
	s := "buyer@example.com"
	blank := "  "

	assert.Equal(t, pgtype.Text{String: s, Valid: true}, StringPtrToPgtype(&s))
	assert.False(t, StringPtrToPgtype(nil).Valid)
	assert.False(t, StringPtrToPgtype(&blank).Valid)
}

func TestStringPtrFromPgtype(t *testing.T) {
	assert.Nil(t, StringPtrFromPgtype(pgtype.Text{}))

	got := StringPtrFromPgtype(pgtype.Text{String: "x", Valid: true})
	if assert.NotNil(t, got) {
		assert.Equal(t, "x", *got)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, now, TimeFromPgtype(TimeToPgtype(now)))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(sql.ErrNoRows))
	assert.True(t, IsNoRows(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
	assert.False(t, IsNoRows(errors.New("boom")))
	assert.False(t, IsNoRows(nil))
}
