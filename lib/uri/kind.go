// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package uri

// Kind enumerates the closed set of pubky.app resource kinds, plus
// KindUnknown for forward compatibility with kinds this client does
// not recognize.
type Kind int

const (
	KindUnknown Kind = iota
	KindUser
	KindPost
	KindFile
	KindBlob
	KindTag
	KindBookmark
	KindFollow
	KindMute
	KindFeed
	KindLastRead
)

// IDFlavor describes what a kind's resource identifier is, which
// determines how identifiers are minted and verified.
type IDFlavor int

const (
	// IDNone: singleton kinds addressed by path alone.
	IDNone IDFlavor = iota
	// IDTimestamp: 13-symbol monotonic timestamp identifiers.
	IDTimestamp
	// IDHash: 26-symbol content-addressed identifiers.
	IDHash
	// IDPubky: the resource id is a counterpart public key.
	IDPubky
)

// kindInfo is the per-kind route table. segment is the path component
// under /pub/pubky.app/; a trailing slash marks kinds whose documents
// sit below the segment, keyed by resource id.
type kindInfo struct {
	name    string
	segment string
	flavor  IDFlavor
}

var kinds = map[Kind]kindInfo{
	KindUser:     {name: "user", segment: "profile.json", flavor: IDNone},
	KindPost:     {name: "post", segment: "posts/", flavor: IDTimestamp},
	KindFile:     {name: "file", segment: "files/", flavor: IDTimestamp},
	KindBlob:     {name: "blob", segment: "blobs/", flavor: IDTimestamp},
	KindTag:      {name: "tag", segment: "tags/", flavor: IDHash},
	KindBookmark: {name: "bookmark", segment: "bookmarks/", flavor: IDHash},
	KindFollow:   {name: "follow", segment: "follows/", flavor: IDPubky},
	KindMute:     {name: "mute", segment: "mutes/", flavor: IDPubky},
	KindFeed:     {name: "feed", segment: "feeds/", flavor: IDHash},
	KindLastRead: {name: "last_read", segment: "last_read", flavor: IDNone},
}

// segmentToKind is the inverse route table used by Parse, keyed by the
// bare segment name without the trailing slash.
var segmentToKind = map[string]Kind{}

func init() {
	for kind, info := range kinds {
		key := info.segment
		if n := len(key); n > 0 && key[n-1] == '/' {
			key = key[:n-1]
		}
		segmentToKind[key] = kind
	}
}

// String returns the kind's lowercase name ("post", "last_read", ...).
// KindUnknown stringifies as "unknown".
func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return "unknown"
}

// Segment returns the kind's path component under /pub/pubky.app/.
// Empty for KindUnknown.
func (k Kind) Segment() string {
	return kinds[k].segment
}

// Flavor returns the kind's resource-identifier flavor. KindUnknown
// reports IDNone.
func (k Kind) Flavor() IDFlavor {
	return kinds[k].flavor
}

// Singleton reports whether the kind is addressed by path alone, with
// no resource id segment.
func (k Kind) Singleton() bool {
	return k != KindUnknown && kinds[k].flavor == IDNone
}

// ParseKind maps a lowercase kind name back to its Kind. Unrecognized
// names map to KindUnknown with ok=false.
func ParseKind(name string) (Kind, bool) {
	for kind, info := range kinds {
		if info.name == name {
			return kind, true
		}
	}
	return KindUnknown, false
}
