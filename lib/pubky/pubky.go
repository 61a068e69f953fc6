// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

// Package pubky provides the validated public-key identifier that owns
// every pubky.app namespace.
package pubky

import "fmt"

// Length is the symbol count of an encoded public key: 32 bytes of
// Ed25519 key material in z-base-32.
const Length = 52

// zbase32Alphabet is the z-base-32 symbol set used by key encodings.
// Distinct from the Crockford alphabet used for resource identifiers;
// the two encodings are never interchangeable.
const zbase32Alphabet = "ybndrfg8ejkmcpqxot1uwisza345h769"

var allowed [256]bool

func init() {
	for _, symbol := range []byte(zbase32Alphabet) {
		allowed[symbol] = true
	}
}

// ID is a validated public-key identifier (e.g.
// "operrr8wsbpr3ue9d4qj41ge1kcc6r7fdiy6o3ugjrrhi4y77rdo"). It names the
// owner of a namespace and appears as the host segment of every
// canonical URI.
//
// Validation is purely syntactic: 52 z-base-32 symbols. Whether a key
// resolves to anything is the transport layer's concern. ID is an
// immutable value type; the zero value is not valid, use IsZero to
// check.
type ID struct {
	key string
}

// Parse validates and wraps a raw public-key string.
func Parse(raw string) (ID, error) {
	if len(raw) != Length {
		return ID{}, fmt.Errorf("public key is %d characters, want %d", len(raw), Length)
	}
	for i := 0; i < len(raw); i++ {
		if !allowed[raw[i]] {
			return ID{}, fmt.Errorf("public key has invalid z-base-32 symbol %q at position %d", raw[i], i)
		}
	}
	return ID{key: raw}, nil
}

// MustParse is like Parse but panics on error. Use in tests and static
// initialization where the input is known-valid.
func MustParse(raw string) ID {
	parsed, err := Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("pubky.MustParse(%q): %v", raw, err))
	}
	return parsed
}

// String returns the encoded public key.
func (i ID) String() string { return i.key }

// IsZero reports whether the ID is the zero value (uninitialized).
func (i ID) IsZero() bool { return i.key == "" }

// MarshalText implements encoding.TextMarshaler for JSON and other
// text-based serialization formats.
func (i ID) MarshalText() ([]byte, error) {
	if i.key == "" {
		return []byte{}, nil
	}
	return []byte(i.key), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Validates the key
// format. An empty input produces the zero value (unset ID).
func (i *ID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*i = ID{}
		return nil
	}
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
