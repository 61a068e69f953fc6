// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"strings"
	"unicode"

	"github.com/pubky/pubky-app-specs/lib/uri"
)

const (
	minTagLabelLen = 1
	maxTagLabelLen = 20
)

// invalidLabelChars are rejected in tag labels on top of the
// whitespace ban: ',' because the indexer uses comma-separated label
// lists, ':' because it separates URI from label in the hash input.
const invalidLabelChars = ",:"

// Tag labels a referenced document at tags/:id. The document id is
// derived from uri and label, so equal tags by the same author always
// collide into one document.
type Tag struct {
	URI       string `json:"uri"`
	Label     string `json:"label"`
	CreatedAt int64  `json:"created_at"`
}

func (Tag) ResourceKind() uri.Kind { return uri.KindTag }
func (Tag) isEntity()      {}

// Sanitize canonicalizes the tagged URI and normalizes the label. The
// document id is derived from both, so two spellings of the same
// target must sanitize to identical bytes. An unparseable URI is kept
// trimmed for Validate to reject.
func (t Tag) Sanitize() Entity {
	if normalized, ok := normalizeURL(t.URI); ok {
		t.URI = normalized
	} else {
		t.URI = strings.TrimSpace(t.URI)
	}
	t.Label = SanitizeLabel(t.Label)
	return t
}

func (t Tag) Validate() error {
	if t.URI == "" {
		return errf("uri", "required", "missing tagged uri")
	}
	if !wellFormedURL(t.URI) {
		return errf("uri", "format", "not a valid URL")
	}
	return ValidateLabel("label", t.Label)
}

// HashData is the byte string the tag's document id is derived from.
// Callers hash it only after Sanitize and Validate have passed.
func (t Tag) HashData() []byte {
	return []byte(t.URI + ":" + t.Label)
}

// SanitizeLabel normalizes a tag label: outer whitespace trimmed,
// lowercased. Shared with feed configs, which carry label lists.
func SanitizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// ValidateLabel checks a sanitized tag label against the label rules,
// reporting violations against the given field name.
func ValidateLabel(field, label string) error {
	n := runeLen(label)
	if n < minTagLabelLen {
		return errf(field, "length", "empty label")
	}
	if n > maxTagLabelLen {
		return errf(field, "length", "label %q is %d runes, max %d", label, n, maxTagLabelLen)
	}
	for _, r := range label {
		if unicode.IsSpace(r) {
			return errf(field, "format", "label %q contains whitespace", label)
		}
		if strings.ContainsRune(invalidLabelChars, r) {
			return errf(field, "format", "label %q contains invalid character %q", label, r)
		}
	}
	return nil
}
