// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

// Package id generates and validates pubky.app resource identifiers.
//
// Two identifier flavors exist, both Crockford Base32 encoded:
//
//   - Timestamp identifiers: 13 symbols encoding a microsecond Unix
//     timestamp as a big-endian uint64. Lexical order equals creation
//     order. A Source guarantees strict per-process monotonicity: two
//     identifiers minted in the same microsecond never collide, because
//     ties are broken by bumping the reading.
//   - Hash identifiers: 26 symbols encoding the first half of a BLAKE3
//     digest of the entity's identifying content. Content-addressed:
//     the same content always yields the same identifier, in every
//     implementation, in every process.
//
// Identifiers are part of the network's canonical addressing: any
// change to the encoding, the digest truncation, or the timestamp
// resolution silently partitions clients into incompatible groups.
package id
