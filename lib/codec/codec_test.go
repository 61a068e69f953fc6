// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package codec_test

import (
	"bytes"
	"testing"

	"github.com/pubky/pubky-app-specs/lib/codec"
)

func TestCanonicalNoHTMLEscaping(t *testing.T) {
	got, err := codec.Canonical(map[string]string{"q": "a&b<c>"})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"q":"a&b<c>"}`
	if string(got) != want {
		t.Fatalf("Canonical = %q, want %q", got, want)
	}
}

func TestCanonicalNoTrailingNewline(t *testing.T) {
	got, err := codec.Canonical([]int{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if bytes.HasSuffix(got, []byte("\n")) {
		t.Fatalf("Canonical output ends in newline: %q", got)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	data, err := codec.Marshal(doc{Name: "x", Count: 3})
	if err != nil {
		t.Fatal(err)
	}
	var back doc
	if err := codec.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back.Name != "x" || back.Count != 3 {
		t.Fatalf("round trip = %+v", back)
	}
}
