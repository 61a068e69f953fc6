// Copyright 2026 The Pubky App Authors
// SPDX-License-Identifier: Apache-2.0

package id_test

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/pubky/pubky-app-specs/lib/clock"
	"github.com/pubky/pubky-app-specs/lib/id"
)

var testEpoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNextLength(t *testing.T) {
	source := id.NewSource(clock.Real())
	generated := source.Next()
	if len(generated) != id.TimestampLength {
		t.Errorf("Next() = %q, len %d, want %d", generated, len(generated), id.TimestampLength)
	}
}

func TestNextMonotonicSameTick(t *testing.T) {
	// The fake clock never moves, so every reading ties and the
	// tie-break counter must separate them.
	source := id.NewSource(clock.Fake(testEpoch))
	previous := source.Next()
	for i := 0; i < 1000; i++ {
		next := source.Next()
		if next <= previous {
			t.Fatalf("Next() = %q not after %q", next, previous)
		}
		previous = next
	}
}

func TestNextMonotonicAcrossBackwardClock(t *testing.T) {
	fake := clock.Fake(testEpoch)
	source := id.NewSource(fake)
	first := source.Next()
	fake.Advance(-time.Second)
	second := source.Next()
	if second <= first {
		t.Errorf("Next() after clock stepped backward = %q, not after %q", second, first)
	}
}

func TestNextConcurrentUnique(t *testing.T) {
	source := id.NewSource(clock.Fake(testEpoch))
	const workers = 8
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[string]bool, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, source.Next())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, generated := range local {
				if seen[generated] {
					t.Errorf("duplicate identifier %q", generated)
				}
				seen[generated] = true
			}
		}()
	}
	wg.Wait()
	if len(seen) != workers*perWorker {
		t.Errorf("got %d unique identifiers, want %d", len(seen), workers*perWorker)
	}
}

func TestNextLexicalOrderTracksTime(t *testing.T) {
	fake := clock.Fake(testEpoch)
	source := id.NewSource(fake)
	var generated []string
	for i := 0; i < 50; i++ {
		generated = append(generated, source.Next())
		fake.Advance(time.Duration(i%3) * time.Microsecond)
	}
	if !sort.StringsAreSorted(generated) {
		t.Error("identifiers are not in lexical generation order")
	}
}

func TestValidateTimestamp(t *testing.T) {
	fake := clock.Fake(testEpoch)
	source := id.NewSource(fake)
	generated := source.Next()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "fresh", id: generated},
		{name: "short", id: "0032SSN7Q4EV", wantErr: true},
		{name: "long", id: generated + "0", wantErr: true},
		{name: "bad-symbol", id: "0032SSN7Q4EV!", wantErr: true},
		{name: "epoch-zero", id: "0000000000000", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := id.ValidateTimestamp(tt.id, fake)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateTimestamp(%q) = nil, want error", tt.id)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateTimestamp(%q) = %v", tt.id, err)
			}
		})
	}
}

func TestValidateTimestampFutureSkew(t *testing.T) {
	fake := clock.Fake(testEpoch)
	source := id.NewSource(fake)
	generated := source.Next()

	// Within the allowed window from a verifier slightly behind.
	behind := clock.Fake(testEpoch.Add(-time.Hour))
	if err := id.ValidateTimestamp(generated, behind); err != nil {
		t.Errorf("ValidateTimestamp within skew window: %v", err)
	}

	// Beyond the window.
	farBehind := clock.Fake(testEpoch.Add(-3 * time.Hour))
	if err := id.ValidateTimestamp(generated, farBehind); err == nil {
		t.Error("ValidateTimestamp beyond skew window = nil, want error")
	}
}

func TestHashKnownAnswers(t *testing.T) {
	// Identifiers precomputed by existing network clients. These pin
	// the digest choice, the truncation, and the encoding all at once.
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "bookmark-of-post",
			data: []byte("pubky://user_id/pub/pubky.app/posts/post_id"),
			want: "2GN0JCHX9NYXPECQDS8KSMSE7M",
		},
		{
			name: "tag-on-post",
			data: []byte("pubky://user_id/pub/pubky.app/posts/post_id:cool"),
			want: "CBYS8P6VJPHC5XXT4WDW26662W",
		},
		{
			name: "raw-bytes",
			data: []byte{1, 2},
			want: "PZBQ010FF079VVZPQG1RNFN6DR",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := id.Hash(tt.data); got != tt.want {
				t.Errorf("Hash(%q) = %q, want %q", tt.data, got, tt.want)
			}
		})
	}
}

func TestHashDeterministic(t *testing.T) {
	data := []byte("pubky://owner/pub/pubky.app/posts/0032SSN7Q4EVG:bitcoin")
	first := id.Hash(data)
	if len(first) != id.HashLength {
		t.Fatalf("Hash length %d, want %d", len(first), id.HashLength)
	}
	for i := 0; i < 10; i++ {
		if got := id.Hash(data); got != first {
			t.Fatalf("Hash produced %q then %q for identical input", first, got)
		}
	}
	if id.Hash([]byte("different")) == first {
		t.Error("distinct inputs produced identical identifiers")
	}
}

func TestValidateHash(t *testing.T) {
	valid := id.Hash([]byte("content"))
	if err := id.ValidateHash(valid); err != nil {
		t.Errorf("ValidateHash(%q) = %v", valid, err)
	}
	for _, bad := range []string{"", "SHORT", valid + "0", "!!!!!!!!!!!!!!!!!!!!!!!!!!"} {
		if err := id.ValidateHash(bad); err == nil {
			t.Errorf("ValidateHash(%q) = nil, want error", bad)
		}
	}
}

func TestValidateHashOf(t *testing.T) {
	data := []byte("pubky://user_id/pub/pubky.app/posts/post_id")
	if err := id.ValidateHashOf(id.Hash(data), data); err != nil {
		t.Errorf("ValidateHashOf with matching content: %v", err)
	}
	if err := id.ValidateHashOf(id.Hash(data), []byte("other")); err == nil {
		t.Error("ValidateHashOf with mismatched content = nil, want error")
	}
}
