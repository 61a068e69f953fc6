// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for testability.
//
// Timestamp identifiers are derived from the current time, so any code
// that mints them accepts a Clock instead of calling time.Now directly.
// Production code injects Real(); tests inject Fake() and advance it
// deterministically, which makes identifier generation reproducible.
package clock

import "time"

// Clock abstracts the current-time read. Implementations must be safe
// for concurrent use.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
