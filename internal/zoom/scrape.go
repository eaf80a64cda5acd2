package zoom

import (
	"regexp"
	"strings"
)

// Recording is one meeting recording scraped from the listing page. Date
// carries the service's own rendering of the date, not a normalized form;
// (Topic, Date) is the identity used for deduplication.
type Recording struct {
	Topic       string
	Date        string
	Duration    string
	DownloadURL string
}

// entry is the raw scrape of one listing-page link: its rendered text and
// its href.
type entry struct {
	text string
	href string
}

var (
	// dateLineRe matches the listing's observed date renderings: a
	// month-name form ("Feb 3, 2026"), a numeric slash form ("2/3/2026"),
	// or the ISO form ("2026-02-03").
	dateLineRe = regexp.MustCompile(`(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+\d{1,2},\s+\d{4}|\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{2}-\d{2}`)
	// durationRe matches a whole line holding an HH:MM:SS duration.
	durationRe = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)
)

// keyboardHintPrefix marks accessibility helper lines the listing injects
// into entry text.
const keyboardHintPrefix = "Press Shift"

// collect turns raw listing entries into Recordings for the requested day.
//
// Each entry's text is split into non-empty lines; entries with two or fewer
// lines are summary rows and yield nothing. Lines are classified by content
// rather than position: the first date-looking line is the date, the first
// HH:MM:SS line the duration, and the first remaining line that is neither
// purely numeric nor trivially short the topic. A topic that itself looks
// like a date or duration is misclassified; that is a known limitation of
// the heuristic, kept as observed.
//
// Entries whose date line contains none of dateForms are dropped, and
// (topic, date) duplicates keep only their first occurrence.
func collect(entries []entry, dateForms []string) []Recording {
	recordings := make([]Recording, 0, len(entries))
	seen := map[string]bool{}

	for _, e := range entries {
		rec, ok := parseEntry(e.text)
		if !ok {
			continue
		}
		if !containsAny(rec.Date, dateForms) {
			continue
		}
		key := rec.Topic + "|" + rec.Date
		if seen[key] {
			continue
		}
		seen[key] = true

		rec.DownloadURL = e.href
		recordings = append(recordings, rec)
	}
	return recordings
}

// parseEntry classifies one entry's rendered text. ok is false for summary
// rows (two or fewer non-empty lines).
func parseEntry(text string) (Recording, bool) {
	lines := nonEmptyLines(text)
	if len(lines) <= 2 {
		return Recording{}, false
	}

	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, keyboardHintPrefix) {
			continue
		}
		kept = append(kept, line)
	}

	var rec Recording
	for _, line := range kept {
		switch {
		case rec.Date == "" && dateLineRe.MatchString(line):
			rec.Date = line
		case rec.Duration == "" && durationRe.MatchString(line):
			rec.Duration = line
		case rec.Topic == "" && !allDigits(line) && len(line) > 3:
			rec.Topic = line
		}
	}
	if rec.Topic == "" {
		rec.Topic = "Unknown"
	}
	return rec, true
}

func nonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func containsAny(value string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(value, needle) {
			return true
		}
	}
	return false
}

func allDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return value != ""
}
