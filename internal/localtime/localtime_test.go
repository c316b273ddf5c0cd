package localtime

import (
	"testing"
	"time"
)

func TestDateOf_LocalDateBehindUTC(t *testing.T) {
	// 23:30 UTC on Jan 1 is 18:30 on Jan 1 in UTC-5: the local date, not
	// the UTC rollover, decides the bucket.
	n := New(time.FixedZone("UTC-5", -5*3600))
	ts := time.Date(2025, 1, 1, 23, 30, 0, 0, time.UTC)

	y, m, d := n.DateOf(ts)
	if y != 2025 || m != time.January || d != 1 {
		t.Errorf("DateOf = %d-%v-%d, want 2025-January-1", y, m, d)
	}
}

func TestDateOf_LocalDateAheadOfUTC(t *testing.T) {
	// 16:00 UTC on Aug 18 is already 01:00 on Aug 19 in UTC+9.
	n := New(time.FixedZone("UTC+9", 9*3600))
	ts := time.Date(2025, 8, 18, 16, 0, 0, 0, time.UTC)

	y, m, d := n.DateOf(ts)
	if y != 2025 || m != time.August || d != 19 {
		t.Errorf("DateOf = %d-%v-%d, want 2025-August-19", y, m, d)
	}
}

func TestToLocal(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	n := New(loc)
	ts := time.Date(2025, 8, 18, 16, 21, 28, 0, time.UTC)

	local := n.ToLocal(ts)
	if local.Location() != loc {
		t.Errorf("location = %v, want %v", local.Location(), loc)
	}
	if local.Hour() != 11 {
		t.Errorf("hour = %d, want 11", local.Hour())
	}
	if !local.Equal(ts) {
		t.Error("conversion must preserve the instant")
	}
}

func TestSameLocalDay(t *testing.T) {
	n := New(time.FixedZone("UTC-5", -5*3600))

	// Both 2025-01-01 local despite the UTC date differing.
	a := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	b := time.Date(2025, 1, 2, 3, 0, 0, 0, time.UTC) // 22:00 Jan 1 local
	if !n.SameLocalDay(a, b) {
		t.Error("expected same local day")
	}

	c := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)
	if n.SameLocalDay(a, c) {
		t.Error("expected different local days")
	}
}

func TestNew_NilDefaultsToLocal(t *testing.T) {
	n := New(nil)
	if n.Location() != time.Local {
		t.Errorf("location = %v, want time.Local", n.Location())
	}
}
