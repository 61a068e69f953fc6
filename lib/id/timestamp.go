// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package id

import (
	"fmt"
	"sync"
	"time"

	"github.com/pubky/pubky-app-specs/lib/clock"
	"github.com/pubky/pubky-app-specs/lib/crockford"
)

// TimestampLength is the symbol count of a timestamp identifier.
const TimestampLength = 13

// minTimestampMicros is 2024-10-01T00:00:00Z in microseconds since the
// Unix epoch. No valid document predates the network, so identifiers
// older than this are rejected.
const minTimestampMicros = 1727740800000000

// maxFutureSkew is how far ahead of the local clock an identifier's
// timestamp may sit before it is rejected. Generous enough for
// ordinary clock drift between peers.
const maxFutureSkew = 2 * time.Hour

// Source mints timestamp identifiers. Each Source is strictly
// monotonic: successive Next calls return strictly increasing
// identifiers even when the clock reading has not moved, because a
// reading that is not beyond the last one is bumped by one
// microsecond. Safe for concurrent use.
//
// Monotonicity is per Source, not per host. Independent processes are
// expected to interleave by clock time alone.
type Source struct {
	mu    sync.Mutex
	clock clock.Clock
	last  int64
}

// NewSource returns a Source reading from the given clock.
func NewSource(c clock.Clock) *Source {
	return &Source{clock: c}
}

// Next returns a new timestamp identifier. The caller may rely on
// Next(n+1) > Next(n) both numerically and lexically.
func (s *Source) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.clock.Now().UnixMicro()
	if now <= s.last {
		now = s.last + 1
	}
	s.last = now
	return crockford.EncodeUint64(uint64(now))
}

// ValidateTimestamp checks that id is a well-formed timestamp
// identifier carrying a plausible instant: 13 decodable symbols, not
// before the network epoch, and not more than two hours ahead of the
// given clock.
func ValidateTimestamp(id string, c clock.Clock) error {
	if len(id) != TimestampLength {
		return fmt.Errorf("timestamp id %q is %d symbols, want %d", id, len(id), TimestampLength)
	}
	micros, err := crockford.DecodeUint64(id)
	if err != nil {
		return fmt.Errorf("timestamp id %q: %w", id, err)
	}
	instant := int64(micros)
	if instant < minTimestampMicros {
		return fmt.Errorf("timestamp id %q predates the network epoch (2024-10-01)", id)
	}
	if instant > c.Now().UnixMicro()+maxFutureSkew.Microseconds() {
		return fmt.Errorf("timestamp id %q is too far in the future", id)
	}
	return nil
}
