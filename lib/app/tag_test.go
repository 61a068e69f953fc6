// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package app_test

import (
	"strings"
	"testing"

	"github.com/pubky/pubky-app-specs/lib/app"
)

func TestTagSanitize(t *testing.T) {
	tag := app.Tag{
		URI:   "  https://example.com/post  ",
		Label: "  CoOl  ",
	}
	got := tag.Sanitize().(app.Tag)
	if got.URI != "https://example.com/post" {
		t.Errorf("uri = %q", got.URI)
	}
	if got.Label != "cool" {
		t.Errorf("label = %q", got.Label)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate after Sanitize: %v", err)
	}
}

func TestTagSanitizeCanonicalizesURI(t *testing.T) {
	// Tag identifiers are derived from the sanitized URI, so every
	// spelling of the same address must converge on one form.
	canonical := app.Tag{URI: "https://example.com/post/1", Label: "cool"}.
		Sanitize().(app.Tag)
	for _, raw := range []string{
		"HTTPS://EXAMPLE.COM/post/1",
		"https://EXAMPLE.com/post/1",
		"  https://example.com/post/1  ",
	} {
		got := app.Tag{URI: raw, Label: "cool"}.Sanitize().(app.Tag)
		if got.URI != canonical.URI {
			t.Errorf("Sanitize(%q).URI = %q, want %q", raw, got.URI, canonical.URI)
		}
		if string(got.HashData()) != string(canonical.HashData()) {
			t.Errorf("HashData(%q) = %q, want %q", raw, got.HashData(), canonical.HashData())
		}
	}

	// An unparseable URI survives trimmed so Validate can name it.
	broken := app.Tag{URI: "  ://nope  ", Label: "cool"}.Sanitize().(app.Tag)
	if broken.URI != "://nope" {
		t.Errorf("broken uri = %q", broken.URI)
	}
	if err := broken.Validate(); err == nil {
		t.Error("broken uri accepted")
	}
}

func TestTagValidate(t *testing.T) {
	cases := []struct {
		name  string
		tag   app.Tag
		field string
	}{
		{"missing uri", app.Tag{Label: "cool"}, "uri"},
		{"bad uri", app.Tag{URI: "nope", Label: "cool"}, "uri"},
		{"empty label", app.Tag{URI: "https://example.com", Label: ""}, "label"},
		{"long label", app.Tag{URI: "https://example.com", Label: strings.Repeat("a", 21)}, "label"},
		{"inner space", app.Tag{URI: "https://example.com", Label: "co ol"}, "label"},
		{"comma", app.Tag{URI: "https://example.com", Label: "co,ol"}, "label"},
		{"colon", app.Tag{URI: "https://example.com", Label: "co:ol"}, "label"},
	}
	for _, tc := range cases {
		err := tc.tag.Validate()
		if err == nil {
			t.Errorf("%s: no error", tc.name)
			continue
		}
		if got := field(t, err); got != tc.field {
			t.Errorf("%s: field %q, want %q", tc.name, got, tc.field)
		}
	}
}

func TestTagLabelCountsRunes(t *testing.T) {
	tag := app.Tag{URI: "https://example.com", Label: strings.Repeat("б", 20)}
	if err := tag.Validate(); err != nil {
		t.Errorf("20-rune label: %v", err)
	}
	tag.Label = strings.Repeat("б", 21)
	if err := tag.Validate(); err == nil {
		t.Error("21-rune label accepted")
	}
}

func TestTagHashData(t *testing.T) {
	tag := app.Tag{URI: "pubky://user_id/pub/pubky.app/posts/post_id", Label: "cool"}
	want := "pubky://user_id/pub/pubky.app/posts/post_id:cool"
	if got := string(tag.HashData()); got != want {
		t.Fatalf("HashData = %q, want %q", got, want)
	}
}

func TestValidateLabelReportsField(t *testing.T) {
	err := app.ValidateLabel("feed.tags", "bad label")
	if err == nil {
		t.Fatal("no error")
	}
	if got := field(t, err); got != "feed.tags" {
		t.Fatalf("field = %q", got)
	}
}
