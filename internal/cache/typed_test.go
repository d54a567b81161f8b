// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testPayload struct {
	Name  string
	Count int
}

func TestTypedCacheRoundTrip(t *testing.T) {
	backend := NewSimpleMemoryCache(time.Minute)
	t.Cleanup(func() { _ = backend.Close() })
	tc := NewTypedCache[testPayload](backend, time.Minute)
	ctx := context.Background()

	if err := tc.Set(ctx, "key", &testPayload{Name: "lion", Count: 5}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok := tc.Get(ctx, "key")
	if !ok {
		t.Fatal("Get() returned false for existing key")
	}
	if got.Name != "lion" || got.Count != 5 {
		t.Errorf("Get() = %+v", got)
	}

	if _, ok := tc.Get(ctx, "missing"); ok {
		t.Error("Get() returned true for missing key")
	}
}

func TestTypedCacheGetOrSet(t *testing.T) {
	backend := NewSimpleMemoryCache(time.Minute)
	t.Cleanup(func() { _ = backend.Close() })
	tc := NewTypedCache[testPayload](backend, time.Minute)
	ctx := context.Background()

	calls := 0
	fetch := func() (*testPayload, error) {
		calls++
		return &testPayload{Name: "cheetah"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := tc.GetOrSet(ctx, "key", fetch)
		if err != nil {
			t.Fatalf("GetOrSet() error = %v", err)
		}
		if got.Name != "cheetah" {
			t.Errorf("GetOrSet() = %+v", got)
		}
	}
	if calls != 1 {
		t.Errorf("compute function called %d times, want 1", calls)
	}
}

func TestTypedCacheGetOrSetError(t *testing.T) {
	backend := NewSimpleMemoryCache(time.Minute)
	t.Cleanup(func() { _ = backend.Close() })
	tc := NewTypedCache[testPayload](backend, time.Minute)

	wantErr := errors.New("fetch failed")
	_, err := tc.GetOrSet(context.Background(), "key", func() (*testPayload, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("GetOrSet() error = %v, want %v", err, wantErr)
	}
}
