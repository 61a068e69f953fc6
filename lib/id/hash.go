// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package id

import (
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/pubky/pubky-app-specs/lib/crockford"
)

// HashLength is the symbol count of a hash identifier: 16 digest bytes
// encode to 26 Base32 symbols.
const HashLength = 26

// hashBytes is the digest prefix length used for identifiers, the
// first half of a 32-byte BLAKE3 digest. Fixed by the network format.
const hashBytes = 16

// Hash returns the content-addressed identifier for the given
// identifying bytes. Pure and deterministic: equal input always
// produces an equal identifier.
func Hash(data []byte) string {
	digest := blake3.Sum256(data)
	return crockford.Encode(digest[:hashBytes])
}

// ValidateHash checks that id has the shape of a hash identifier:
// exactly 26 decodable symbols.
func ValidateHash(id string) error {
	if len(id) != HashLength {
		return fmt.Errorf("hash id %q is %d symbols, want %d", id, len(id), HashLength)
	}
	if _, err := crockford.Decode(id); err != nil {
		return fmt.Errorf("hash id %q: %w", id, err)
	}
	return nil
}

// ValidateHashOf checks that id is exactly the identifier derived from
// the given identifying bytes.
func ValidateHashOf(id string, data []byte) error {
	expected := Hash(data)
	if id != expected {
		return fmt.Errorf("hash id %q does not match content (want %q)", id, expected)
	}
	return nil
}
