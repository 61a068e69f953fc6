// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package specs

import (
	"fmt"

	"github.com/pubky/pubky-app-specs/lib/app"
	"github.com/pubky/pubky-app-specs/lib/codec"
	"github.com/pubky/pubky-app-specs/lib/id"
	"github.com/pubky/pubky-app-specs/lib/pubky"
	"github.com/pubky/pubky-app-specs/lib/uri"
)

// Import runs the read path over a stored document: decode the bytes
// for the resource's kind, sanitize, validate, and verify the resource
// id against the document per the kind's id flavor. Blob documents are
// the raw bytes; every other kind is JSON.
func (r *Registry) Import(res uri.Resource, data []byte) (app.Entity, error) {
	e, err := decode(res, data)
	if err != nil {
		return nil, err
	}
	e = e.Sanitize()
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if err := r.verifyID(res, e); err != nil {
		return nil, err
	}
	return e, nil
}

// ImportURI is Import for a full pubky:// address.
func (r *Registry) ImportURI(raw string, data []byte) (app.Entity, uri.ParsedURI, error) {
	parsed, err := uri.Parse(raw)
	if err != nil {
		return nil, uri.ParsedURI{}, err
	}
	if parsed.Resource.Kind == uri.KindUnknown {
		return nil, uri.ParsedURI{}, fmt.Errorf("import %s: unrecognized resource", raw)
	}
	e, err := r.Import(parsed.Resource, data)
	if err != nil {
		return nil, uri.ParsedURI{}, err
	}
	return e, parsed, nil
}

func decode(res uri.Resource, data []byte) (app.Entity, error) {
	switch res.Kind {
	case uri.KindUser:
		return unmarshal[app.User](res, data)
	case uri.KindPost:
		return unmarshal[app.Post](res, data)
	case uri.KindFile:
		return unmarshal[app.File](res, data)
	case uri.KindBlob:
		return app.Blob{Data: data}, nil
	case uri.KindTag:
		return unmarshal[app.Tag](res, data)
	case uri.KindBookmark:
		return unmarshal[app.Bookmark](res, data)
	case uri.KindFollow:
		target, err := pubky.Parse(res.ID)
		if err != nil {
			return nil, fmt.Errorf("follow target: %w", err)
		}
		var v app.Follow
		if err := codec.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode follow document: %w", err)
		}
		v.Followee = target
		return v, nil
	case uri.KindMute:
		target, err := pubky.Parse(res.ID)
		if err != nil {
			return nil, fmt.Errorf("mute target: %w", err)
		}
		var v app.Mute
		if err := codec.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("decode mute document: %w", err)
		}
		v.Muted = target
		return v, nil
	case uri.KindFeed:
		return unmarshal[app.Feed](res, data)
	case uri.KindLastRead:
		return unmarshal[app.LastRead](res, data)
	}
	return nil, fmt.Errorf("unrecognized resource kind %v", res.Kind)
}

// unmarshal decodes a JSON document into the concrete entity type for
// its kind.
func unmarshal[E app.Entity](res uri.Resource, data []byte) (app.Entity, error) {
	var v E
	if err := codec.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode %s document: %w", res.Kind, err)
	}
	return v, nil
}

// verifyID checks the stored resource id against the decoded entity.
// For hash kinds the id must match the entity's identifying content
// after sanitization, so a tampered document fails import.
func (r *Registry) verifyID(res uri.Resource, e app.Entity) error {
	switch res.Kind.Flavor() {
	case uri.IDNone:
		if res.ID != "" {
			return fmt.Errorf("%s is a singleton, got id %q", res.Kind, res.ID)
		}
		return nil
	case uri.IDTimestamp:
		return id.ValidateTimestamp(res.ID, r.clock)
	case uri.IDPubky:
		// Parsed during decode.
		return nil
	}

	var data []byte
	switch v := e.(type) {
	case app.Tag:
		data = v.HashData()
	case app.Bookmark:
		data = v.HashData()
	case app.Feed:
		canonical, err := codec.Canonical(v.Config)
		if err != nil {
			return fmt.Errorf("feed config: %w", err)
		}
		data = canonical
	default:
		return fmt.Errorf("no hash input for %T", e)
	}
	return id.ValidateHashOf(res.ID, data)
}
