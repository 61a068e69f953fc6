// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"strings"

	"github.com/pubky/pubky-app-specs/lib/uri"
)

// Bookmark marks a referenced document at bookmarks/:id. The document
// id is derived from the uri alone, so re-bookmarking overwrites
// rather than duplicates.
type Bookmark struct {
	URI       string `json:"uri"`
	CreatedAt int64  `json:"created_at"`
}

func (Bookmark) ResourceKind() uri.Kind { return uri.KindBookmark }
func (Bookmark) isEntity()      {}

func (b Bookmark) Sanitize() Entity {
	b.URI = strings.TrimSpace(b.URI)
	return b
}

func (b Bookmark) Validate() error {
	if b.URI == "" {
		return errf("uri", "required", "missing bookmarked uri")
	}
	if !wellFormedURL(b.URI) {
		return errf("uri", "format", "not a valid URL")
	}
	return nil
}

// HashData is the byte string the bookmark's document id is derived
// from.
func (b Bookmark) HashData() []byte {
	return []byte(b.URI)
}
