package ptr

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func To[T any](v T) *T {
	return &v
}

func String(s string) *string {
	return &s
}

// NonBlank returns nil for empty or whitespace-only strings.
func NonBlank(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func TimeFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	return &pt.Time
}
