package bot

import (
	"testing"
	"time"
)

func TestParseTimeValid(t *testing.T) {
	cases := []struct {
		in   string
		h, m int
	}{
		{"09:30", 9, 30},
		{"9:30", 9, 30},
		{"9.30", 9, 30},
		{" 9 : 30 ", 9, 30},
		{"0:00", 0, 0},
		{"23:59", 23, 59},
		{"23.59", 23, 59},
	}
	for _, c := range cases {
		h, m, ok := ParseTime(c.in)
		if !ok {
			t.Fatalf("ParseTime(%q): unexpected failure", c.in)
		}
		if h != c.h || m != c.m {
			t.Fatalf("ParseTime(%q) = %d:%d, want %d:%d", c.in, h, m, c.h, c.m)
		}
	}
}

func TestParseTimeInvalid(t *testing.T) {
	cases := []string{
		"", "930", "9", "24:00", "23:60", "9:60", "-1:30",
		"9:30:00", "ab:cd", "9:", ":30", "9,30",
	}
	for _, c := range cases {
		if _, _, ok := ParseTime(c); ok {
			t.Fatalf("ParseTime(%q): expected failure", c)
		}
	}
}

func TestParseDateKeywords(t *testing.T) {
	now := time.Date(2026, 2, 17, 10, 0, 0, 0, time.UTC)

	for _, in := range []string{"today", "сегодня", "Today", "СЕГОДНЯ"} {
		d, ok := ParseDate(in, now)
		if !ok {
			t.Fatalf("ParseDate(%q): unexpected failure", in)
		}
		want := time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC)
		if !d.Equal(want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", in, d, want)
		}
	}

	for _, in := range []string{"tomorrow", "завтра", "Tomorrow"} {
		d, ok := ParseDate(in, now)
		if !ok {
			t.Fatalf("ParseDate(%q): unexpected failure", in)
		}
		want := time.Date(2026, 2, 18, 0, 0, 0, 0, time.UTC)
		if !d.Equal(want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", in, d, want)
		}
	}
}

func TestParseDateNumeric(t *testing.T) {
	now := time.Date(2026, 2, 17, 10, 0, 0, 0, time.UTC)

	d1, ok := ParseDate("17.02.2026", now)
	if !ok {
		t.Fatalf("ParseDate(17.02.2026): unexpected failure")
	}
	want := time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC)
	if !d1.Equal(want) {
		t.Fatalf("ParseDate(17.02.2026) = %v, want %v", d1, want)
	}

	// слэш и точка равнозначны
	d2, ok := ParseDate("17/02/2026", now)
	if !ok {
		t.Fatalf("ParseDate(17/02/2026): unexpected failure")
	}
	if !d2.Equal(d1) {
		t.Fatalf("separator mismatch: %v vs %v", d2, d1)
	}
}

func TestParseDateInvalid(t *testing.T) {
	now := time.Date(2026, 2, 17, 10, 0, 0, 0, time.UTC)
	cases := []string{
		"", "31.02.2026", "32.01.2026", "00.01.2026", "17.13.2026",
		"17.02", "17-02-2026", "17.02.2026.5", "aa.bb.cccc", "вчера",
	}
	for _, c := range cases {
		if _, ok := ParseDate(c, now); ok {
			t.Fatalf("ParseDate(%q): expected failure", c)
		}
	}
}
