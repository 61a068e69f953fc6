// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/pubky/pubky-app-specs/lib/uri"
)

const maxBlobSize = 100 << 20

// Blob holds the raw bytes of an uploaded file at blobs/:id. Unlike
// every other kind the stored document is the bytes themselves, not
// JSON.
type Blob struct {
	Data []byte
}

func (Blob) ResourceKind() uri.Kind { return uri.KindBlob }
func (Blob) isEntity()      {}

// Sanitize is the identity: blob bytes are opaque.
func (b Blob) Sanitize() Entity { return b }

func (b Blob) Validate() error {
	if len(b.Data) == 0 {
		return errf("data", "required", "empty blob")
	}
	if len(b.Data) > maxBlobSize {
		return errf("data", "range", "%d bytes, max %d", len(b.Data), maxBlobSize)
	}
	return nil
}
