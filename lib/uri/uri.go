// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package uri

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pubky/pubky-app-specs/lib/pubky"
)

// Scheme is the URI scheme addressing homeserver-hosted documents.
const Scheme = "pubky"

// appRoot is the path prefix every pubky.app document lives under.
const appRoot = "/pub/pubky.app/"

// ParseReason classifies why a URI failed to parse.
type ParseReason int

const (
	// ReasonMalformed: the string is not a parseable URL at all.
	ReasonMalformed ParseReason = iota
	// ReasonScheme: the scheme is not "pubky".
	ReasonScheme
	// ReasonOwner: the authority is not a valid public key.
	ReasonOwner
	// ReasonPath: the path does not start with /pub/pubky.app/.
	ReasonPath
	// ReasonResource: the resource portion of the path is malformed.
	ReasonResource
)

func (r ParseReason) String() string {
	switch r {
	case ReasonMalformed:
		return "malformed"
	case ReasonScheme:
		return "scheme"
	case ReasonOwner:
		return "owner"
	case ReasonPath:
		return "path"
	case ReasonResource:
		return "resource"
	}
	return "unknown"
}

// ParseError reports a URI that could not be parsed, with the reason
// classified for callers that branch on it.
type ParseError struct {
	URI     string
	Reason  ParseReason
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s: %s", e.URI, e.Reason, e.Message)
}

func parseError(raw string, reason ParseReason, format string, args ...any) error {
	return &ParseError{URI: raw, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// Resource names a document kind together with its resource id. The id
// is empty for singleton kinds and for KindUnknown.
type Resource struct {
	Kind Kind
	ID   string
}

// Path returns the document path under the owner's public drive, e.g.
// "/pub/pubky.app/posts/0032SSN7Q4EVG". KindUnknown has no addressable
// path and returns "".
func (r Resource) Path() string {
	segment := r.Kind.Segment()
	if segment == "" {
		return ""
	}
	return appRoot + segment + r.ID
}

// ParsedURI is a structurally valid pubky.app document address: an
// owner public key plus the resource the path selects.
type ParsedURI struct {
	Owner    pubky.ID
	Resource Resource
}

// String composes the canonical pubky:// form of the address.
func (u ParsedURI) String() string {
	return Scheme + "://" + u.Owner.String() + u.Resource.Path()
}

// New composes an address from its parts without validating that the
// id matches the kind's identifier flavor; Parse and the registry do
// that where it matters.
func New(owner pubky.ID, kind Kind, id string) ParsedURI {
	return ParsedURI{Owner: owner, Resource: Resource{Kind: kind, ID: id}}
}

// Parse checks a raw string against the pubky.app addressing shape and
// splits it into its parts. The scheme must be exactly "pubky", the
// authority a valid public key, and the path rooted at /pub/pubky.app/.
//
// Resource segments this client does not recognize parse to a Resource
// with KindUnknown and the remaining path in ID, so that newer kinds
// round-trip through older clients instead of erroring.
func Parse(raw string) (ParsedURI, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return ParsedURI{}, parseError(raw, ReasonMalformed, "%v", err)
	}
	if u.Scheme != Scheme {
		return ParsedURI{}, parseError(raw, ReasonScheme, "scheme %q, want %q", u.Scheme, Scheme)
	}
	if u.Host == "" {
		return ParsedURI{}, parseError(raw, ReasonOwner, "missing owner public key")
	}
	owner, err := pubky.Parse(u.Host)
	if err != nil {
		return ParsedURI{}, parseError(raw, ReasonOwner, "%v", err)
	}
	rest, ok := strings.CutPrefix(u.Path, appRoot)
	if !ok {
		return ParsedURI{}, parseError(raw, ReasonPath, "path %q not under %s", u.Path, appRoot)
	}

	resource, err := parseResource(raw, rest)
	if err != nil {
		return ParsedURI{}, err
	}
	return ParsedURI{Owner: owner, Resource: resource}, nil
}

func parseResource(raw, rest string) (Resource, error) {
	if rest == "" {
		// Address of the drive root itself.
		return Resource{Kind: KindUnknown}, nil
	}

	segment, id, slashed := strings.Cut(rest, "/")
	kind, ok := segmentToKind[segment]
	if !ok {
		return Resource{Kind: KindUnknown, ID: rest}, nil
	}

	if kind.Singleton() {
		if slashed {
			return Resource{}, parseError(raw, ReasonResource, "%s is a singleton document", kind)
		}
		return Resource{Kind: kind}, nil
	}
	if !slashed {
		// Collection address without an id, e.g. .../posts. Treated
		// as unrecognized rather than a document address.
		return Resource{Kind: KindUnknown, ID: rest}, nil
	}
	if id == "" {
		return Resource{Kind: KindUnknown, ID: rest}, nil
	}
	if strings.Contains(id, "/") {
		return Resource{}, parseError(raw, ReasonResource, "%s id %q contains a path separator", kind, id)
	}
	if kind.Flavor() == IDPubky {
		if _, err := pubky.Parse(id); err != nil {
			return Resource{}, parseError(raw, ReasonResource, "%s target: %v", kind, err)
		}
	}
	return Resource{Kind: kind, ID: id}, nil
}
