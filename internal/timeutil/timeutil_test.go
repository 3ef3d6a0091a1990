package timeutil_test

import (
	"testing"
	"time"

	"github.com/UzielLH/PSP/internal/timeutil"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00"},
		{59 * time.Second, "00:00:59"},
		{61 * time.Second, "00:01:01"},
		{90*time.Minute + 5*time.Second, "01:30:05"},
		{25 * time.Hour, "25:00:00"},
		{-3 * time.Second, "00:00:00"},
		{2*time.Minute + 500*time.Millisecond, "00:02:00"},
	}

	for _, tc := range cases {
		got := timeutil.FormatDuration(tc.in)
		if got != tc.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWholeMinutes(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want int
	}{
		{0, 0},
		{59 * time.Second, 0},
		{60 * time.Second, 1},
		{119 * time.Second, 1},
		{15*time.Minute + 59*time.Second, 15},
		{-time.Minute, 0},
	}

	for _, tc := range cases {
		got := timeutil.WholeMinutes(tc.in)
		if got != tc.want {
			t.Errorf("WholeMinutes(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	valid := []string{"01/01/2024", "31/12/1999", "29/02/2024"}

	for _, v := range valid {
		if _, err := timeutil.ParseDate(v); err != nil {
			t.Errorf("ParseDate(%q) returned error: %v", v, err)
		}
	}

	invalid := []string{
		"",
		"2024-01-01",
		"1/1/2024",
		"32/01/2024",
		"01/13/2024",
		"January 1, 2024",
		"01/01/24",
	}

	for _, v := range invalid {
		if _, err := timeutil.ParseDate(v); err == nil {
			t.Errorf("ParseDate(%q) expected error, got none", v)
		}
	}
}

func TestLongDate(t *testing.T) {
	// 2 January 2006 was a Monday.
	d := time.Date(2006, time.January, 2, 0, 0, 0, 0, time.Local)

	got := timeutil.LongDate(d)
	want := "Lunes, 02 enero 2006"

	if got != want {
		t.Errorf("LongDate = %q, want %q", got, want)
	}
}
