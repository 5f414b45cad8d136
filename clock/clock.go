// Package clock supplies the monotonically non-decreasing time unit the
// ledger engine uses to measure elapsed staking duration. Deployments pick
// either wall-clock timestamps or an externally advanced height counter.
package clock

import (
	"fmt"
	"sync/atomic"

	"github.com/jonboulle/clockwork"
)

// Source is queried by the engine on every operation and never mutated by it.
type Source interface {
	// Now returns the current clock value. Successive calls never return
	// a smaller value.
	Now() uint64
}

// TimestampSource measures staking duration in Unix seconds.
type TimestampSource struct {
	clock clockwork.Clock
}

// NewTimestampSource wraps the given clock; passing nil uses the real
// wall clock. Tests pass a clockwork fake for deterministic time.
func NewTimestampSource(c clockwork.Clock) *TimestampSource {
	if c == nil {
		c = clockwork.NewRealClock()
	}

	return &TimestampSource{clock: c}
}

func (s *TimestampSource) Now() uint64 {
	return uint64(s.clock.Now().Unix())
}

// HeightSource measures staking duration in block heights fed in by an
// external observer.
type HeightSource struct {
	height atomic.Uint64
}

func NewHeightSource(start uint64) *HeightSource {
	s := &HeightSource{}
	s.height.Store(start)

	return s
}

func (s *HeightSource) Now() uint64 {
	return s.height.Load()
}

// Advance moves the counter forward by n heights and returns the new value.
func (s *HeightSource) Advance(n uint64) uint64 {
	return s.height.Add(n)
}

// SetHeight moves the counter to the given height. Moving backwards is
// rejected to preserve monotonicity.
func (s *HeightSource) SetHeight(h uint64) error {
	for {
		cur := s.height.Load()
		if h < cur {
			return fmt.Errorf("height %d is below current height %d", h, cur)
		}
		if s.height.CompareAndSwap(cur, h) {
			return nil
		}
	}
}
