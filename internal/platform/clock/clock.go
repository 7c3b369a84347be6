// Package clock provides the ledger time sources that stamp recorded transactions.
package clock

import (
	"context"
	"sync/atomic"
	"time"
)

// SystemClock reads wall-clock Unix seconds from the host.
type SystemClock struct{}

func (SystemClock) Now(context.Context) uint64 {
	return uint64(time.Now().Unix())
}

// FixedClock returns a settable reading, for tests and replaying a known ledger time.
type FixedClock struct {
	seconds atomic.Uint64
}

// NewFixedClock returns a clock stuck at seconds until Set is called.
func NewFixedClock(seconds uint64) *FixedClock {
	c := &FixedClock{}
	c.seconds.Store(seconds)
	return c
}

func (c *FixedClock) Now(context.Context) uint64 {
	return c.seconds.Load()
}

// Set moves the clock to seconds.
func (c *FixedClock) Set(seconds uint64) {
	c.seconds.Store(seconds)
}
