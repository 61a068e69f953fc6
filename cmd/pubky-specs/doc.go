// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

// pubky-specs inspects pubky.app documents and addresses from the
// command line.
//
// Subcommands:
//
//	parse <uri>       decompose a pubky:// address into owner, kind,
//	                  and resource id
//	id                mint a timestamp id, or derive the hash id of
//	                  bytes read from stdin
//	validate          decode and validate a stored document against
//	                  its address
//
// Exit codes: 0 on success, 1 when the input fails validation, 2 on
// usage errors.
package main
