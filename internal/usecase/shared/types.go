package shared

import "time"

// Write-side snapshot; keeps commands independent of read models
type BalanceSnapshot struct {
	UserID    string
	Tokens    int64
	UpdatedAt time.Time
}
