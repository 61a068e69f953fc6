// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

// Package app defines the document kinds stored under a user's
// pubky.app drive and their sanitization and validation rules.
//
// Every kind is a plain value type whose JSON form is the byte-exact
// document stored on the homeserver. Sanitize is a pure function from
// raw input to normalized input; Validate checks the normalized value
// and reports the first violated constraint. Neither touches the
// network or the clock, so both are safe to call anywhere. Identifier
// policy (timestamp ranges, hash matching, counterpart keys) lives in
// the registry, not here.
package app

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/pubky/pubky-app-specs/lib/uri"
)

// Tombstone is the content marker clients write in place of a deleted
// document that still has relationships pointing at it. Writing it as
// live content is rejected.
const Tombstone = "[DELETED]"

// Entity is a document kind that can be sanitized, validated, and
// addressed. Implementations are value types; Sanitize returns a
// normalized copy and never mutates the receiver.
type Entity interface {
	ResourceKind() uri.Kind
	Sanitize() Entity
	Validate() error

	// closed set; the registry switches exhaustively over it
	isEntity()
}

// ValidationError reports the first constraint a document violates.
type ValidationError struct {
	Field      string
	Constraint string
	Message    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validate %s: %s", e.Field, e.Message)
}

func errf(field, constraint, format string, args ...any) error {
	return &ValidationError{
		Field:      field,
		Constraint: constraint,
		Message:    fmt.Sprintf(format, args...),
	}
}

// runeLen counts Unicode scalar values. All length limits in this
// package are rune counts, never bytes or UTF-16 units.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// wellFormedURL reports whether s parses as an absolute URL. Scheme
// presence is what separates a URL from a bare word; everything after
// the scheme is the referenced system's business.
func wellFormedURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != ""
}

// normalizeURL returns the canonical serialization of s when it parses
// as an absolute URL, and ok=false otherwise. The host is folded to
// lowercase: hosts are case-insensitive, and identifiers derived from
// normalized URLs must agree across clients.
func normalizeURL(s string) (string, bool) {
	s = strings.TrimSpace(s)
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return "", false
	}
	u.Host = strings.ToLower(u.Host)
	return u.String(), true
}

// trimOpt trims an optional string field, normalizing a pointer to an
// empty or all-space value to absent.
func trimOpt(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
