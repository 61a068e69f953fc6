// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"strings"

	"github.com/pubky/pubky-app-specs/lib/uri"
)

const (
	maxShortContentLen = 2000
	maxLongContentLen  = 50000
)

// PostKind labels what a post's content is, primarily for display.
type PostKind string

const (
	PostShort PostKind = "short"
	PostLong  PostKind = "long"
	PostImage PostKind = "image"
	PostVideo PostKind = "video"
	PostLink  PostKind = "link"
	PostFile  PostKind = "file"
)

// ParsePostKind maps the lowercase wire form to a PostKind.
func ParsePostKind(s string) (PostKind, error) {
	switch k := PostKind(s); k {
	case PostShort, PostLong, PostImage, PostVideo, PostLink, PostFile:
		return k, nil
	}
	return "", fmt.Errorf("invalid post kind %q", s)
}

func (k PostKind) valid() bool {
	_, err := ParsePostKind(string(k))
	return err == nil
}

// maxContent returns the content limit for the kind. Only long-form
// posts get the extended limit.
func (k PostKind) maxContent() int {
	if k == PostLong {
		return maxLongContentLen
	}
	return maxShortContentLen
}

// PostEmbed references content embedded in a post, e.g. the reposted
// post of a repost.
type PostEmbed struct {
	Kind PostKind `json:"kind"`
	URI  string   `json:"uri"`
}

// Post is a post document at posts/:id. Optional fields serialize as
// null, matching the stored document shape.
type Post struct {
	Content     string     `json:"content"`
	Kind        PostKind   `json:"kind"`
	Parent      *string    `json:"parent"`
	Embed       *PostEmbed `json:"embed"`
	Attachments []string   `json:"attachments"`
}

func (Post) ResourceKind() uri.Kind { return uri.KindPost }
func (Post) isEntity()      {}

// Sanitize trims content, canonicalizes the parent and embed URIs, and
// drops either when it does not parse. Attachment entries are trimmed
// but kept for Validate to judge.
func (p Post) Sanitize() Entity {
	out := Post{
		Content: strings.TrimSpace(p.Content),
		Kind:    p.Kind,
	}
	if p.Parent != nil {
		if parent, ok := normalizeURL(*p.Parent); ok {
			out.Parent = &parent
		}
	}
	if p.Embed != nil {
		if embedded, ok := normalizeURL(p.Embed.URI); ok {
			out.Embed = &PostEmbed{Kind: p.Embed.Kind, URI: embedded}
		}
	}
	if p.Attachments != nil {
		out.Attachments = make([]string, len(p.Attachments))
		for i, a := range p.Attachments {
			out.Attachments[i] = strings.TrimSpace(a)
		}
	}
	return out
}

func (p Post) Validate() error {
	if !p.Kind.valid() {
		return errf("kind", "enum", "invalid post kind %q", string(p.Kind))
	}
	if p.Content == Tombstone {
		return errf("content", "forbidden", "%q is reserved for deleted posts", Tombstone)
	}
	if p.Content == "" && p.Embed == nil {
		return errf("content", "required", "empty content on a post with no embed")
	}
	if n := runeLen(p.Content); n > p.Kind.maxContent() {
		return errf("content", "length", "%d runes, max %d for kind %q", n, p.Kind.maxContent(), string(p.Kind))
	}
	if p.Parent != nil && !wellFormedURL(*p.Parent) {
		return errf("parent", "format", "not a valid URL")
	}
	if p.Embed != nil {
		if !p.Embed.Kind.valid() {
			return errf("embed", "enum", "invalid post kind %q", string(p.Embed.Kind))
		}
		if !wellFormedURL(p.Embed.URI) {
			return errf("embed", "format", "uri is not a valid URL")
		}
	}
	for i, a := range p.Attachments {
		if !wellFormedURL(a) {
			return errf("attachments", "format", "attachment %d is not a valid URL", i)
		}
	}
	return nil
}
