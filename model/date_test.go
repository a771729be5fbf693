package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-15")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.Year != 2025 || d.Month != time.March || d.Day != 15 {
		t.Errorf("got %+v, want 2025-03-15", d)
	}

	if _, err := ParseDate("15/03/2025"); err == nil {
		t.Error("expected error for non-ISO format")
	}
	if _, err := ParseDate("2025-13-01"); err == nil {
		t.Error("expected error for month 13")
	}
}

func TestAddDaysRollover(t *testing.T) {
	tests := []struct {
		start string
		days  int
		want  string
	}{
		{"2025-01-31", 1, "2025-02-01"},
		{"2025-12-31", 1, "2026-01-01"},
		{"2024-02-28", 1, "2024-02-29"}, // leap year
		{"2025-02-28", 1, "2025-03-01"},
		{"2025-03-10", -10, "2025-02-28"},
		{"2025-03-10", 0, "2025-03-10"},
	}

	for _, tt := range tests {
		start, err := ParseDate(tt.start)
		if err != nil {
			t.Fatal(err)
		}
		got := start.AddDays(tt.days)
		if got.String() != tt.want {
			t.Errorf("%s + %d days = %s, want %s", tt.start, tt.days, got, tt.want)
		}
	}
}

func TestDaysUntil(t *testing.T) {
	a, _ := ParseDate("2025-03-10")
	b, _ := ParseDate("2025-03-15")

	if got := a.DaysUntil(b); got != 5 {
		t.Errorf("DaysUntil = %d, want 5", got)
	}
	if got := b.DaysUntil(a); got != -5 {
		t.Errorf("reverse DaysUntil = %d, want -5", got)
	}
	if got := a.DaysUntil(a); got != 0 {
		t.Errorf("same-day DaysUntil = %d, want 0", got)
	}

	// Across a month boundary.
	c, _ := ParseDate("2025-04-02")
	if got := a.DaysUntil(c); got != 23 {
		t.Errorf("cross-month DaysUntil = %d, want 23", got)
	}
}

func TestDateOfIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2025, time.June, 1, 23, 59, 59, 0, time.UTC)
	early := time.Date(2025, time.June, 1, 0, 0, 1, 0, time.UTC)

	if DateOf(late) != DateOf(early) {
		t.Error("same calendar day should produce equal dates")
	}
}

func TestDateJSON(t *testing.T) {
	d, _ := ParseDate("2025-07-04")

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"2025-07-04"` {
		t.Errorf("marshal = %s, want \"2025-07-04\"", data)
	}

	var parsed Date
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if parsed != d {
		t.Errorf("round trip mismatch: %v != %v", parsed, d)
	}

	var zero Date
	if err := json.Unmarshal([]byte("null"), &zero); err != nil {
		t.Fatalf("null unmarshal failed: %v", err)
	}
	if !zero.IsZero() {
		t.Error("null should decode to zero date")
	}
}

func TestDateOrdering(t *testing.T) {
	a, _ := ParseDate("2025-03-10")
	b, _ := ParseDate("2025-03-11")

	if !a.Before(b) || b.Before(a) {
		t.Error("Before ordering wrong")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After ordering wrong")
	}
	if !a.Equal(a) || a.Equal(b) {
		t.Error("Equal wrong")
	}
}
