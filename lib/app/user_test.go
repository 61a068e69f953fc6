// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package app_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/pubky/pubky-app-specs/lib/app"
	"github.com/pubky/pubky-app-specs/lib/codec"
)

func strptr(s string) *string { return &s }

func field(t *testing.T, err error) string {
	t.Helper()
	var verr *app.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error %T, want *ValidationError: %v", err, err)
	}
	return verr.Field
}

func TestUserSanitize(t *testing.T) {
	u := app.User{
		Name:   "   Alice   ",
		Bio:    strptr("  Maximalist and developer.  "),
		Image:  strptr(" https://example.com/image.png "),
		Status: strptr("   "),
		Links: []app.UserLink{
			{Title: " GitHub ", URL: " https://github.com/alice "},
			{Title: "Website", URL: "invalid_url"},
		},
	}
	got := u.Sanitize().(app.User)

	if got.Name != "Alice" {
		t.Errorf("name = %q", got.Name)
	}
	if got.Bio == nil || *got.Bio != "Maximalist and developer." {
		t.Errorf("bio = %v", got.Bio)
	}
	if got.Image == nil || *got.Image != "https://example.com/image.png" {
		t.Errorf("image = %v", got.Image)
	}
	if got.Status != nil {
		t.Errorf("blank status kept: %q", *got.Status)
	}
	if len(got.Links) != 1 {
		t.Fatalf("links = %v, want the invalid one dropped", got.Links)
	}
	if got.Links[0].Title != "GitHub" || got.Links[0].URL != "https://github.com/alice" {
		t.Errorf("link = %+v", got.Links[0])
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate after Sanitize: %v", err)
	}
}

func TestUserValidate(t *testing.T) {
	valid := func() app.User {
		return app.User{Name: "Alice", Bio: strptr("Maximalist")}
	}
	if err := valid().Validate(); err != nil {
		t.Fatalf("valid user: %v", err)
	}

	cases := []struct {
		name  string
		mut   func(*app.User)
		field string
	}{
		{"short name", func(u *app.User) { u.Name = "Al" }, "name"},
		{"long name", func(u *app.User) { u.Name = strings.Repeat("é", 51) }, "name"},
		{"tombstone name", func(u *app.User) { u.Name = "[DELETED]" }, "name"},
		{"long bio", func(u *app.User) { u.Bio = strptr(strings.Repeat("б", 161)) }, "bio"},
		{"bad image", func(u *app.User) { u.Image = strptr("not a url") }, "image"},
		{"long image", func(u *app.User) { u.Image = strptr("https://x.io/" + strings.Repeat("a", 300)) }, "image"},
		{"long status", func(u *app.User) { u.Status = strptr(strings.Repeat("s", 51)) }, "status"},
		{"too many links", func(u *app.User) {
			for i := 0; i < 6; i++ {
				u.Links = append(u.Links, app.UserLink{Title: "x", URL: "https://example.com"})
			}
		}, "links"},
		{"bad link url", func(u *app.User) {
			u.Links = []app.UserLink{{Title: "x", URL: "no-scheme"}}
		}, "links"},
	}
	for _, tc := range cases {
		u := valid()
		tc.mut(&u)
		err := u.Validate()
		if err == nil {
			t.Errorf("%s: no error", tc.name)
			continue
		}
		if got := field(t, err); got != tc.field {
			t.Errorf("%s: field %q, want %q", tc.name, got, tc.field)
		}
	}
}

func TestUserNameCountsRunes(t *testing.T) {
	// 50 multi-byte runes is the longest legal name.
	u := app.User{Name: strings.Repeat("🦀", 50)}
	if err := u.Validate(); err != nil {
		t.Errorf("50-rune name: %v", err)
	}
	u.Name = strings.Repeat("🦀", 51)
	if err := u.Validate(); err == nil {
		t.Error("51-rune name accepted")
	}
}

func TestUserJSONShape(t *testing.T) {
	data, err := codec.Marshal(app.User{Name: "Alice"})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"name":"Alice","bio":null,"image":null,"links":null,"status":null}`
	if string(data) != want {
		t.Fatalf("marshal = %s, want %s", data, want)
	}
}
