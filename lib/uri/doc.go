// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

// Package uri composes and parses canonical pubky:// locations.
//
// Every pubky.app document lives at a well-known path under its owner's
// namespace:
//
//	pubky://<owner>/pub/pubky.app/<segment>[<resource-id>]
//
// The owner is a public-key identifier, the segment selects the
// resource kind, and the resource id (when the kind carries one) is a
// timestamp identifier, a hash identifier, or a counterpart public key,
// depending on the kind. Singleton kinds (the profile document and the
// last-read marker) have no resource id.
//
// Parsing validates shape only: the scheme, the owner key format, the
// fixed /pub/pubky.app/ prefix, and for follow and mute targets the
// counterpart key format. A well-formed URI whose resource segment is
// not recognized parses successfully as KindUnknown, so old clients can
// walk namespaces written by newer ones.
package uri
