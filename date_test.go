package logslice

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateValid(t *testing.T) {
	d, err := ParseDate("2024-12-02")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year != 2024 || d.Month != time.December || d.Day != 2 {
		t.Errorf("d = %+v", d)
	}
	if d.String() != "2024-12-02" {
		t.Errorf("String = %q", d.String())
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, s := range []string{
		"",
		"2024-13-01",
		"2024-02-30",
		"2024/12/02",
		"02-12-2024",
		"2024-12-02 extra",
		"not a date",
	} {
		if _, err := ParseDate(s); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("ParseDate(%q) = %v, want ErrInvalidDate", s, err)
		}
	}
}

func TestDaysFrom(t *testing.T) {
	tests := []struct {
		date string
		year int
		want int
	}{
		{"2024-01-01", 2024, 0},
		{"2024-02-01", 2024, 31},
		{"2024-12-02", 2024, 336}, // leap year
		{"2023-12-31", 2024, -1},
		{"2025-01-01", 2024, 366},
	}
	for _, tt := range tests {
		d, err := ParseDate(tt.date)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tt.date, err)
		}
		if got := d.daysFrom(tt.year); got != tt.want {
			t.Errorf("daysFrom(%s, %d) = %d, want %d", tt.date, tt.year, got, tt.want)
		}
	}
}

func TestDatePrefix(t *testing.T) {
	d, _ := ParseDate("2024-12-02")
	if string(d.prefix()) != "2024-12-02" {
		t.Errorf("prefix = %q", d.prefix())
	}
}
