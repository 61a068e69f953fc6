// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/pubky/pubky-app-specs/lib/pubky"
	"github.com/pubky/pubky-app-specs/lib/uri"
)

// Mute is a mute edge at mutes/:mutee, shaped like Follow.
type Mute struct {
	Muted     pubky.ID `json:"-"`
	CreatedAt int64    `json:"created_at"`
}

func (Mute) ResourceKind() uri.Kind { return uri.KindMute }
func (Mute) isEntity()      {}

func (m Mute) Sanitize() Entity { return m }

func (m Mute) Validate() error {
	if m.Muted.IsZero() {
		return errf("muted", "required", "missing muted public key")
	}
	return nil
}
