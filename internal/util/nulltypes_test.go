// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"testing"
	"time"
)

func TestNullInt64FromValue(t *testing.T) {
	got := NullInt64FromValue(42)
	if !got.Valid || got.Int64 != 42 {
		t.Errorf("NullInt64FromValue(42) = %+v, want valid 42", got)
	}
}

func TestNullTimeFromValue(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	got := NullTimeFromValue(ts)
	if !got.Valid || !got.Time.Equal(ts) {
		t.Errorf("NullTimeFromValue(%v) = %+v, want valid %v", ts, got, ts)
	}
}
