// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/pubky/pubky-app-specs/lib/uri"
)

// LastRead is the singleton marker at last_read recording when the
// user last checked notifications. Unlike created_at fields this
// timestamp is in milliseconds.
type LastRead struct {
	Timestamp int64 `json:"timestamp"`
}

func (LastRead) ResourceKind() uri.Kind { return uri.KindLastRead }
func (LastRead) isEntity()      {}

func (l LastRead) Sanitize() Entity { return l }

func (l LastRead) Validate() error {
	if l.Timestamp <= 0 {
		return errf("timestamp", "range", "%d, want > 0", l.Timestamp)
	}
	return nil
}
