// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

// Package crockford implements Crockford Base32, the encoding used for
// every pubky.app resource identifier.
//
// The encoding is uppercase, unpadded, and big-endian: input bytes are
// consumed left to right in 5-bit groups, and the final group is padded
// with zero bits. Because the alphabet is in ASCII order, encoded
// strings of equal length sort in the same order as their inputs, the
// property that makes timestamp identifiers lexically sortable.
//
// Decoding is deliberately forgiving, per Crockford's specification:
// lowercase input is accepted, and the ambiguous glyphs o/O, i/I, and
// l/L fold to 0 and 1. Encoding never produces those glyphs. Two
// distinct spellings of the same identifier therefore decode to the
// same bytes, but only one spelling is ever written.
package crockford
