// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"strings"

	"github.com/pubky/pubky-app-specs/lib/uri"
)

const (
	minUserNameLen  = 3
	maxUserNameLen  = 50
	maxUserBioLen   = 160
	maxUserImageLen = 300
	maxUserLinks    = 5
	maxLinkTitleLen = 100
	maxLinkURLLen   = 300
	maxUserStatus   = 50
)

// User is the profile document at profile.json. Optional fields
// serialize as null, matching the stored document shape.
type User struct {
	Name   string     `json:"name"`
	Bio    *string    `json:"bio"`
	Image  *string    `json:"image"`
	Links  []UserLink `json:"links"`
	Status *string    `json:"status"`
}

// UserLink is one entry in a profile's link list.
type UserLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (User) ResourceKind() uri.Kind { return uri.KindUser }
func (User) isEntity()      {}

// Sanitize trims every string field, normalizes empty optionals to
// absent, canonicalizes URL fields, and drops the image and any links
// whose URL does not parse.
func (u User) Sanitize() Entity {
	out := User{
		Name:   strings.TrimSpace(u.Name),
		Bio:    trimOpt(u.Bio),
		Status: trimOpt(u.Status),
	}
	if u.Image != nil {
		if image, ok := normalizeURL(*u.Image); ok {
			out.Image = &image
		}
	}
	if u.Links != nil {
		links := make([]UserLink, 0, len(u.Links))
		for _, l := range u.Links {
			title := strings.TrimSpace(l.Title)
			link, ok := normalizeURL(l.URL)
			if !ok {
				continue
			}
			links = append(links, UserLink{Title: title, URL: link})
		}
		out.Links = links
	}
	return out
}

func (u User) Validate() error {
	if u.Name == Tombstone {
		return errf("name", "forbidden", "%q is reserved for deleted profiles", Tombstone)
	}
	if n := runeLen(u.Name); n < minUserNameLen || n > maxUserNameLen {
		return errf("name", "length", "%d runes, want %d..%d", n, minUserNameLen, maxUserNameLen)
	}
	if u.Bio != nil {
		if n := runeLen(*u.Bio); n > maxUserBioLen {
			return errf("bio", "length", "%d runes, max %d", n, maxUserBioLen)
		}
	}
	if u.Image != nil {
		if n := runeLen(*u.Image); n > maxUserImageLen {
			return errf("image", "length", "%d runes, max %d", n, maxUserImageLen)
		}
		if !wellFormedURL(*u.Image) {
			return errf("image", "format", "not a valid URL")
		}
	}
	if len(u.Links) > maxUserLinks {
		return errf("links", "length", "%d entries, max %d", len(u.Links), maxUserLinks)
	}
	for i, l := range u.Links {
		if n := runeLen(l.Title); n > maxLinkTitleLen {
			return errf("links", "length", "link %d title: %d runes, max %d", i, n, maxLinkTitleLen)
		}
		if n := runeLen(l.URL); n > maxLinkURLLen {
			return errf("links", "length", "link %d url: %d runes, max %d", i, n, maxLinkURLLen)
		}
		if !wellFormedURL(l.URL) {
			return errf("links", "format", "link %d url: not a valid URL", i)
		}
	}
	if u.Status != nil {
		if n := runeLen(*u.Status); n > maxUserStatus {
			return errf("status", "length", "%d runes, max %d", n, maxUserStatus)
		}
	}
	return nil
}
