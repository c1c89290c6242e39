package civildate

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	t.Parallel()

	d, err := Parse("2025-03-09")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if d != New(2025, time.March, 9) {
		t.Fatalf("unexpected date: %v", d)
	}

	for _, raw := range []string{"", "2025-3-9", "09-03-2025", "2025-03-09T00:00:00Z", "not-a-date"} {
		if _, err := Parse(raw); !errors.Is(err, ErrUnparseable) {
			t.Errorf("Parse(%q): expected ErrUnparseable, got %v", raw, err)
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	want := New(2025, time.March, 9)

	cases := []struct {
		name  string
		value any
	}{
		{"date", want},
		{"date pointer", &want},
		{"time", time.Date(2025, 3, 9, 18, 30, 12, 0, time.UTC)},
		{"date string", "2025-03-09"},
		{"rfc3339 string", "2025-03-09T18:30:12Z"},
		{"datetime string", "2025-03-09T18:30:12"},
		{"space separated string", "2025-03-09 18:30:12"},
		{"bytes", []byte("2025-03-09")},
	}

	for _, tc := range cases {
		got, err := Normalize(tc.value)
		if err != nil {
			t.Errorf("%s: Normalize returned error: %v", tc.name, err)
			continue
		}
		if got != want {
			t.Errorf("%s: expected %v, got %v", tc.name, want, got)
		}
	}

	pointerTime := time.Date(2025, 3, 9, 1, 0, 0, 0, time.UTC)
	got, err := Normalize(&pointerTime)
	if err != nil || got != want {
		t.Errorf("time pointer: expected %v, got %v (err=%v)", want, got, err)
	}
}

func TestNormalize_Unparseable(t *testing.T) {
	t.Parallel()

	for _, value := range []any{nil, 42, "garbage", "", (*time.Time)(nil), (*Date)(nil)} {
		if _, err := Normalize(value); !errors.Is(err, ErrUnparseable) {
			t.Errorf("Normalize(%v): expected ErrUnparseable, got %v", value, err)
		}
	}
}

func TestDateArithmetic(t *testing.T) {
	t.Parallel()

	d := New(2025, time.March, 1)

	if got := d.AddDays(-1); got != New(2025, time.February, 28) {
		t.Errorf("AddDays(-1): got %v", got)
	}
	if got := d.AddDays(31); got != New(2025, time.April, 1) {
		t.Errorf("AddDays(31): got %v", got)
	}
	if got := d.DaysSince(New(2025, time.February, 1)); got != 28 {
		t.Errorf("DaysSince: expected 28, got %d", got)
	}
	if !New(2025, time.February, 28).Before(d) {
		t.Error("expected Feb 28 to be before Mar 1")
	}
	if d.Before(d) {
		t.Error("a date must not be before itself")
	}
}

func TestDateJSON(t *testing.T) {
	t.Parallel()

	d := New(2025, time.March, 9)

	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON returned error: %v", err)
	}
	if string(b) != `"2025-03-09"` {
		t.Fatalf("unexpected JSON: %s", b)
	}

	var parsed Date
	if err := parsed.UnmarshalJSON([]byte(`"2025-03-09"`)); err != nil {
		t.Fatalf("UnmarshalJSON returned error: %v", err)
	}
	if parsed != d {
		t.Fatalf("round trip mismatch: %v", parsed)
	}

	if err := parsed.UnmarshalJSON([]byte(`"bad"`)); !errors.Is(err, ErrUnparseable) {
		t.Fatalf("expected ErrUnparseable, got %v", err)
	}
}
