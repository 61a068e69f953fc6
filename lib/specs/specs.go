// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

// Package specs orchestrates the write and read paths for pubky.app
// documents: Build turns a raw entity into a validated document with
// its identifier and address, Import turns stored bytes back into a
// validated entity.
package specs

import (
	"fmt"

	"github.com/pubky/pubky-app-specs/lib/app"
	"github.com/pubky/pubky-app-specs/lib/clock"
	"github.com/pubky/pubky-app-specs/lib/codec"
	"github.com/pubky/pubky-app-specs/lib/id"
	"github.com/pubky/pubky-app-specs/lib/pubky"
	"github.com/pubky/pubky-app-specs/lib/uri"
)

// Meta is the identity Build assigns to a document: its resource id
// (empty for singleton kinds), its path under the owner's drive, and
// its full pubky:// address.
type Meta struct {
	ID   string `json:"id,omitempty"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

// Registry builds and imports documents for one owner. The only
// shared state is the timestamp id source's critical section, so a
// Registry is safe for concurrent use.
type Registry struct {
	owner pubky.ID
	clock clock.Clock
	ids   *id.Source
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock substitutes the clock used for created-at stamping and
// timestamp ids. Tests use it for determinism.
func WithClock(c clock.Clock) Option {
	return func(r *Registry) { r.clock = c }
}

// New returns a Registry minting documents owned by owner.
func New(owner pubky.ID, opts ...Option) *Registry {
	r := &Registry{owner: owner, clock: clock.Real()}
	for _, opt := range opts {
		opt(r)
	}
	r.ids = id.NewSource(r.clock)
	return r
}

// Owner returns the public key the Registry builds documents for.
func (r *Registry) Owner() pubky.ID { return r.owner }

// Build runs the write path over a raw entity: sanitize, stamp a
// missing created-at, validate, assign the resource id the kind calls
// for, and compose the document's address. The returned entity is the
// exact value whose serialization belongs at Meta.Path.
func (r *Registry) Build(e app.Entity) (app.Entity, Meta, error) {
	e = e.Sanitize()
	e = r.stamp(e)
	if err := e.Validate(); err != nil {
		return nil, Meta{}, err
	}
	rid, err := r.assignID(e)
	if err != nil {
		return nil, Meta{}, err
	}
	res := uri.Resource{Kind: e.ResourceKind(), ID: rid}
	return e, Meta{
		ID:   rid,
		Path: res.Path(),
		URL:  uri.ParsedURI{Owner: r.owner, Resource: res}.String(),
	}, nil
}

// stamp fills a zero created-at from the clock. Entities that arrive
// with a timestamp keep it, so re-building an imported document is
// stable.
func (r *Registry) stamp(e app.Entity) app.Entity {
	micros := r.clock.Now().UnixMicro()
	switch v := e.(type) {
	case app.File:
		if v.CreatedAt == 0 {
			v.CreatedAt = micros
		}
		return v
	case app.Tag:
		if v.CreatedAt == 0 {
			v.CreatedAt = micros
		}
		return v
	case app.Bookmark:
		if v.CreatedAt == 0 {
			v.CreatedAt = micros
		}
		return v
	case app.Follow:
		if v.CreatedAt == 0 {
			v.CreatedAt = micros
		}
		return v
	case app.Mute:
		if v.CreatedAt == 0 {
			v.CreatedAt = micros
		}
		return v
	case app.Feed:
		if v.CreatedAt == 0 {
			v.CreatedAt = micros
		}
		return v
	case app.LastRead:
		if v.Timestamp == 0 {
			v.Timestamp = r.clock.Now().UnixMilli()
		}
		return v
	}
	return e
}

// assignID mints the resource id for a validated entity. The switch
// is exhaustive over the closed entity set.
func (r *Registry) assignID(e app.Entity) (string, error) {
	switch v := e.(type) {
	case app.User, app.LastRead:
		return "", nil
	case app.Post, app.File, app.Blob:
		return r.ids.Next(), nil
	case app.Tag:
		return id.Hash(v.HashData()), nil
	case app.Bookmark:
		return id.Hash(v.HashData()), nil
	case app.Feed:
		data, err := codec.Canonical(v.Config)
		if err != nil {
			return "", fmt.Errorf("feed config: %w", err)
		}
		return id.Hash(data), nil
	case app.Follow:
		return v.Followee.String(), nil
	case app.Mute:
		return v.Muted.String(), nil
	}
	return "", fmt.Errorf("unsupported entity %T", e)
}
