package browser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// ErrNoStrategy reports that every probe in an ordered list failed.
var ErrNoStrategy = errors.New("browser: no strategy succeeded")

// Strategy is one ordered attempt at finding or operating a page control.
// Drivers build a list of these for each control whose markup is not stable
// and evaluate them with First.
type Strategy struct {
	Name string
	Try  func() error
}

// First evaluates strategies in order and returns the name of the first one
// that succeeds. When all fail, the returned error wraps ErrNoStrategy and
// names every attempt.
func First(strategies ...Strategy) (string, error) {
	names := make([]string, 0, len(strategies))
	for _, strategy := range strategies {
		if err := strategy.Try(); err == nil {
			return strategy.Name, nil
		}
		names = append(names, strategy.Name)
	}
	return "", fmt.Errorf("%w: tried %s", ErrNoStrategy, strings.Join(names, ", "))
}

// FirstVisible scans selectors in order and returns the first visible match
// on the page. Matches within one selector are scanned in DOM order so
// hidden duplicates (nav links, templates) are skipped.
func FirstVisible(page playwright.Page, selectors ...string) (playwright.Locator, bool) {
	for _, selector := range selectors {
		loc := page.Locator(selector)
		count, err := loc.Count()
		if err != nil {
			continue
		}
		for i := 0; i < count; i++ {
			candidate := loc.Nth(i)
			visible, err := candidate.IsVisible()
			if err == nil && visible {
				return candidate, true
			}
		}
	}
	return nil, false
}
