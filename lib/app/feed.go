// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"strings"

	"github.com/pubky/pubky-app-specs/lib/uri"
)

// FeedReach selects whose posts a feed draws from.
type FeedReach string

const (
	ReachFollowing FeedReach = "following"
	ReachFollowers FeedReach = "followers"
	ReachFriends   FeedReach = "friends"
	ReachAll       FeedReach = "all"
)

// ParseFeedReach maps the lowercase wire form to a FeedReach.
func ParseFeedReach(s string) (FeedReach, error) {
	switch r := FeedReach(s); r {
	case ReachFollowing, ReachFollowers, ReachFriends, ReachAll:
		return r, nil
	}
	return "", fmt.Errorf("invalid feed reach %q", s)
}

// FeedLayout selects how a feed is rendered.
type FeedLayout string

const (
	LayoutColumns FeedLayout = "columns"
	LayoutWide    FeedLayout = "wide"
	LayoutVisual  FeedLayout = "visual"
)

// ParseFeedLayout maps the lowercase wire form to a FeedLayout.
func ParseFeedLayout(s string) (FeedLayout, error) {
	switch l := FeedLayout(s); l {
	case LayoutColumns, LayoutWide, LayoutVisual:
		return l, nil
	}
	return "", fmt.Errorf("invalid feed layout %q", s)
}

// FeedSort selects a feed's post ordering.
type FeedSort string

const (
	SortRecent     FeedSort = "recent"
	SortPopularity FeedSort = "popularity"
)

// ParseFeedSort maps the lowercase wire form to a FeedSort.
func ParseFeedSort(s string) (FeedSort, error) {
	switch o := FeedSort(s); o {
	case SortRecent, SortPopularity:
		return o, nil
	}
	return "", fmt.Errorf("invalid feed sort %q", s)
}

// FeedConfig is the filter a saved feed applies. Its canonical JSON
// serialization is the input to the feed's document id, so field order
// here is part of the wire contract.
type FeedConfig struct {
	Tags    []string   `json:"tags"`
	Reach   FeedReach  `json:"reach"`
	Layout  FeedLayout `json:"layout"`
	Sort    FeedSort   `json:"sort"`
	Content *PostKind  `json:"content"`
}

// Feed is a saved feed document at feeds/:id.
type Feed struct {
	Config    FeedConfig `json:"feed"`
	Name      string     `json:"name"`
	CreatedAt int64      `json:"created_at"`
}

func (Feed) ResourceKind() uri.Kind { return uri.KindFeed }
func (Feed) isEntity()      {}

// Sanitize trims the name and normalizes tag labels the way tag
// documents do.
func (f Feed) Sanitize() Entity {
	f.Name = strings.TrimSpace(f.Name)
	if f.Config.Tags != nil {
		tags := make([]string, len(f.Config.Tags))
		for i, t := range f.Config.Tags {
			tags[i] = SanitizeLabel(t)
		}
		f.Config.Tags = tags
	}
	return f
}

func (f Feed) Validate() error {
	if f.Name == "" {
		return errf("name", "required", "missing feed name")
	}
	if _, err := ParseFeedReach(string(f.Config.Reach)); err != nil {
		return errf("feed.reach", "enum", "%v", err)
	}
	if _, err := ParseFeedLayout(string(f.Config.Layout)); err != nil {
		return errf("feed.layout", "enum", "%v", err)
	}
	if _, err := ParseFeedSort(string(f.Config.Sort)); err != nil {
		return errf("feed.sort", "enum", "%v", err)
	}
	if f.Config.Content != nil && !f.Config.Content.valid() {
		return errf("feed.content", "enum", "invalid post kind %q", string(*f.Config.Content))
	}
	for _, t := range f.Config.Tags {
		if err := ValidateLabel("feed.tags", t); err != nil {
			return err
		}
	}
	return nil
}
