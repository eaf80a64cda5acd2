// Package dates parses the flexible meeting-date input accepted on the
// command line and renders the date forms the rest of the tool needs.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// ParseInput converts user-supplied date text into a calendar day.
//
// Accepted forms: YYYY-MM-DD, YYYYMMDD, MM-DD (current year), and the
// literal words "today" and "yesterday". Anything else is a user error.
func ParseInput(text string, now time.Time) (time.Time, error) {
	trimmed := strings.ToLower(strings.TrimSpace(text))

	switch trimmed {
	case "today":
		return truncateToDay(now), nil
	case "yesterday":
		return truncateToDay(now.AddDate(0, 0, -1)), nil
	}

	if len(trimmed) == 10 && trimmed[4] == '-' {
		parsed, err := time.Parse("2006-01-02", trimmed)
		if err != nil {
			return time.Time{}, parseError(text)
		}
		return parsed, nil
	}

	if len(trimmed) == 8 && allDigits(trimmed) {
		parsed, err := time.Parse("20060102", trimmed)
		if err != nil {
			return time.Time{}, parseError(text)
		}
		return parsed, nil
	}

	if len(trimmed) <= 5 && strings.Contains(trimmed, "-") {
		// The lenient layout accepts both padded and unpadded months/days.
		parsed, err := time.Parse("1-2", trimmed)
		if err != nil {
			return time.Time{}, parseError(text)
		}
		return time.Date(now.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
	}

	return time.Time{}, parseError(text)
}

// TitleStamp renders a day as YYYYMMDD for use in computed video titles.
func TitleStamp(day time.Time) string {
	return day.Format("20060102")
}

// DisplayForms returns every textual rendering of a day that the recordings
// listing has been observed to use. A listing entry matches the requested
// day when its date line contains any of these forms.
//
// For 2026-02-03 the forms are "Feb 3, 2026", "Feb 03, 2026", "2/3/2026",
// "02/03/2026", and "2026-02-03".
func DisplayForms(day time.Time) []string {
	month := int(day.Month())
	return []string{
		fmt.Sprintf("%s %d, %d", day.Format("Jan"), day.Day(), day.Year()),
		fmt.Sprintf("%s %02d, %d", day.Format("Jan"), day.Day(), day.Year()),
		fmt.Sprintf("%d/%d/%d", month, day.Day(), day.Year()),
		fmt.Sprintf("%02d/%02d/%d", month, day.Day(), day.Year()),
		day.Format("2006-01-02"),
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func allDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return value != ""
}

func parseError(input string) error {
	return fmt.Errorf("cannot parse date %q: use YYYY-MM-DD, YYYYMMDD, MM-DD, \"today\", or \"yesterday\"", strings.TrimSpace(input))
}
