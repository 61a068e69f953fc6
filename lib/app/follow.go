// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/pubky/pubky-app-specs/lib/pubky"
	"github.com/pubky/pubky-app-specs/lib/uri"
)

// Follow is a follow edge at follows/:followee. The followee key is
// the resource id, not part of the stored document, which is why it is
// excluded from the JSON form.
type Follow struct {
	Followee  pubky.ID `json:"-"`
	CreatedAt int64    `json:"created_at"`
}

func (Follow) ResourceKind() uri.Kind { return uri.KindFollow }
func (Follow) isEntity()      {}

func (f Follow) Sanitize() Entity { return f }

func (f Follow) Validate() error {
	if f.Followee.IsZero() {
		return errf("followee", "required", "missing followee public key")
	}
	return nil
}
