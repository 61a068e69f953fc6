// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec centralizes JSON serialization for document bodies.
//
// Every document stored on a homeserver is JSON except blobs, and some
// identifiers are derived from serialized bytes, so all encoding goes
// through this package to keep the byte-level output in one place.
package codec

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// RawMessage is a raw encoded JSON value, passed through untouched.
type RawMessage = json.RawMessage

// Marshal encodes v as compact JSON.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// MarshalIndent encodes v as indented JSON, for tool output.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(v, prefix, indent)
}

// Unmarshal decodes JSON data into v.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Canonical encodes v as the byte form used for content-addressed
// identifiers: compact JSON with no HTML escaping, so that characters
// like '&' and '<' serialize as themselves and the derived identifier
// is stable across encoders.
func Canonical(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("canonical encode: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
