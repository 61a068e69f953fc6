// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package crockford

import (
	"encoding/binary"
	"fmt"
)

// Alphabet is the Crockford Base32 symbol set: digits and uppercase
// letters with I, L, O, and U removed. The ASCII ordering of the
// alphabet is what makes the encoding order-preserving.
const Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// invalid marks bytes that decode to nothing.
const invalid = 0xFF

// decodeTable maps an input byte to its 5-bit value. Lowercase letters
// fold to uppercase; the ambiguous glyphs o/O and i/I/l/L fold to the
// digits 0 and 1.
var decodeTable [256]byte

func init() {
	for i := range decodeTable {
		decodeTable[i] = invalid
	}
	for value, symbol := range []byte(Alphabet) {
		decodeTable[symbol] = byte(value)
		if symbol >= 'A' && symbol <= 'Z' {
			decodeTable[symbol+'a'-'A'] = byte(value)
		}
	}
	decodeTable['o'], decodeTable['O'] = 0, 0
	decodeTable['i'], decodeTable['I'] = 1, 1
	decodeTable['l'], decodeTable['L'] = 1, 1
}

// EncodedLen returns the number of symbols produced by encoding n bytes.
func EncodedLen(n int) int {
	return (n*8 + 4) / 5
}

// Encode returns the Crockford Base32 encoding of data. The result is
// EncodedLen(len(data)) uppercase symbols; an empty input encodes to
// the empty string.
func Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	out := make([]byte, 0, EncodedLen(len(data)))
	var buffer uint16
	var bits uint
	for _, b := range data {
		buffer = buffer<<8 | uint16(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out = append(out, Alphabet[(buffer>>bits)&31])
		}
	}
	if bits > 0 {
		// Final group: remaining bits, zero-padded on the right.
		out = append(out, Alphabet[(buffer<<(5-bits))&31])
	}
	return string(out)
}

// Decode returns the bytes encoded by s. Lowercase and ambiguous-glyph
// spellings are accepted. Trailing pad bits are discarded without
// inspection, matching the behavior other network implementations rely
// on. An invalid symbol is an error naming the byte and its position.
func Decode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)*5/8)
	var buffer uint16
	var bits uint
	for i := 0; i < len(s); i++ {
		value := decodeTable[s[i]]
		if value == invalid {
			return nil, fmt.Errorf("invalid base32 symbol %q at position %d", s[i], i)
		}
		buffer = buffer<<5 | uint16(value)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(buffer>>bits))
		}
	}
	return out, nil
}

// EncodeUint64 encodes v as 8 big-endian bytes, producing exactly 13
// symbols. For two values a < b, EncodeUint64(a) < EncodeUint64(b) in
// byte order.
func EncodeUint64(v uint64) string {
	var raw [8]byte
	binary.BigEndian.PutUint64(raw[:], v)
	return Encode(raw[:])
}

// DecodeUint64 is the inverse of EncodeUint64. The input must be
// exactly 13 symbols.
func DecodeUint64(s string) (uint64, error) {
	if len(s) != 13 {
		return 0, fmt.Errorf("encoded uint64 is %d symbols, want 13", len(s))
	}
	raw, err := Decode(s)
	if err != nil {
		return 0, err
	}
	if len(raw) != 8 {
		return 0, fmt.Errorf("encoded uint64 decoded to %d bytes, want 8", len(raw))
	}
	return binary.BigEndian.Uint64(raw), nil
}
