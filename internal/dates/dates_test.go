package dates_test

import (
	"testing"
	"time"

	"recpub/internal/dates"
)

var reference = time.Date(2026, time.August, 30, 14, 25, 0, 0, time.UTC)

func TestParseInputAcceptedForms(t *testing.T) {
	cases := []struct {
		input string
		want  time.Time
	}{
		{"2026-02-03", time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)},
		{"20260203", time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)},
		{"02-03", time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)},
		{"2-3", time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)},
		{"2-13", time.Date(2026, time.February, 13, 0, 0, 0, 0, time.UTC)},
		{"12-3", time.Date(2026, time.December, 3, 0, 0, 0, 0, time.UTC)},
		{"today", time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)},
		{"Today", time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)},
		{" yesterday ", time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, err := dates.ParseInput(tc.input, reference)
		if err != nil {
			t.Fatalf("ParseInput(%q) returned error: %v", tc.input, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("ParseInput(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestParseInputRejectsUnknownForms(t *testing.T) {
	for _, input := range []string{"", "tomorrow", "2026/02/03", "Feb 3", "202602030", "03"} {
		if _, err := dates.ParseInput(input, reference); err == nil {
			t.Fatalf("ParseInput(%q) succeeded, want error", input)
		}
	}
}

func TestTitleStamp(t *testing.T) {
	day := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)
	if got := dates.TitleStamp(day); got != "20260203" {
		t.Fatalf("TitleStamp = %q, want 20260203", got)
	}
}

func TestDisplayForms(t *testing.T) {
	day := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)
	want := []string{"Feb 3, 2026", "Feb 03, 2026", "2/3/2026", "02/03/2026", "2026-02-03"}

	got := dates.DisplayForms(day)
	if len(got) != len(want) {
		t.Fatalf("DisplayForms returned %d forms, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("form %d = %q, want %q", i, got[i], want[i])
		}
	}
}
