package payment

import (
	"fmt"
	"sync/atomic"

	"token-storefront/internal/pkg/clock"
)

// ReferenceGenerator mints `<prefix>-<userID>-<epochMillis>` reference ids.
// Millisecond values are strictly increasing per process so two purchases
// started within the same millisecond never share a reference id.
type ReferenceGenerator struct {
	prefix string
	clock  clock.Clock
	last   atomic.Int64
}

func NewReferenceGenerator(prefix string, clk clock.Clock) *ReferenceGenerator {
	return &ReferenceGenerator{prefix: prefix, clock: clk}
}

func (g *ReferenceGenerator) Next(userID string) string {
	return fmt.Sprintf("%s-%s-%d", g.prefix, userID, g.nextMillis())
}

func (g *ReferenceGenerator) nextMillis() int64 {
	now := g.clock.Now().UnixMilli()
	for {
		last := g.last.Load()
		next := now
		if next <= last {
			next = last + 1
		}
		if g.last.CompareAndSwap(last, next) {
			return next
		}
	}
}
