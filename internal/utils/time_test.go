package utils

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		want    int
		wantErr bool
	}{
		{"same day", "2026-03-10", "2026-03-10", 0, false},
		{"next day", "2026-03-10", "2026-03-11", 1, false},
		{"previous day", "2026-03-10", "2026-03-09", -1, false},
		{"across month", "2026-02-27", "2026-03-02", 3, false},
		{"across year", "2025-12-30", "2026-01-02", 3, false},
		{"invalid first", "not-a-date", "2026-03-10", 0, true},
		{"invalid second", "2026-03-10", "not-a-date", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysBetween(tt.a, tt.b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DaysBetween(%q, %q) error = %v, wantErr %v", tt.a, tt.b, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("DaysBetween(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		date string
		days int
		want string
	}{
		{"forward", "2026-03-10", 2, "2026-03-12"},
		{"backward", "2026-03-10", -10, "2026-02-28"},
		{"zero", "2026-03-10", 0, "2026-03-10"},
		{"leap february", "2024-02-28", 1, "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddDays(tt.date, tt.days)
			if err != nil {
				t.Fatalf("AddDays(%q, %d) failed: %v", tt.date, tt.days, err)
			}
			if got != tt.want {
				t.Errorf("AddDays(%q, %d) = %q, want %q", tt.date, tt.days, got, tt.want)
			}
		})
	}

	if _, err := AddDays("bogus", 1); err == nil {
		t.Error("AddDays should reject an unparseable date")
	}
}

func TestMinutesOfDay(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         int
	}{
		{0, 0, 0},
		{8, 59, 539},
		{9, 0, 540},
		{15, 0, 900},
		{23, 59, 1439},
	}

	for _, tt := range tests {
		ts := time.Date(2026, 3, 10, tt.hour, tt.minute, 30, 0, time.UTC)
		if got := MinutesOfDay(ts); got != tt.want {
			t.Errorf("MinutesOfDay(%02d:%02d) = %d, want %d", tt.hour, tt.minute, got, tt.want)
		}
	}
}

func TestLoadLocation(t *testing.T) {
	loc, err := LoadLocation("")
	if err != nil || loc != time.Local {
		t.Errorf("LoadLocation(\"\") = %v, %v, want system local", loc, err)
	}

	loc, err = LoadLocation("Local")
	if err != nil || loc != time.Local {
		t.Errorf("LoadLocation(\"Local\") = %v, %v, want system local", loc, err)
	}

	loc, err = LoadLocation("UTC")
	if err != nil {
		t.Fatalf("LoadLocation(\"UTC\") failed: %v", err)
	}
	if loc.String() != "UTC" {
		t.Errorf("location = %q, want UTC", loc.String())
	}

	if _, err := LoadLocation("Not/AZone"); err == nil {
		t.Error("LoadLocation should reject an unknown zone name")
	}
}
