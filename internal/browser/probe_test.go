package browser_test

import (
	"errors"
	"strings"
	"testing"

	"recpub/internal/browser"
)

func TestFirstReturnsEarliestSuccess(t *testing.T) {
	calls := []string{}
	name, err := browser.First(
		browser.Strategy{Name: "a", Try: func() error { calls = append(calls, "a"); return errors.New("nope") }},
		browser.Strategy{Name: "b", Try: func() error { calls = append(calls, "b"); return nil }},
		browser.Strategy{Name: "c", Try: func() error { calls = append(calls, "c"); return nil }},
	)
	if err != nil {
		t.Fatalf("First returned error: %v", err)
	}
	if name != "b" {
		t.Fatalf("First = %q, want b", name)
	}
	if len(calls) != 2 {
		t.Fatalf("later strategies should not run, got calls %v", calls)
	}
}

func TestFirstReportsAllAttempts(t *testing.T) {
	fail := func() error { return errors.New("nope") }
	_, err := browser.First(
		browser.Strategy{Name: "primary selector", Try: fail},
		browser.Strategy{Name: "role lookup", Try: fail},
	)
	if !errors.Is(err, browser.ErrNoStrategy) {
		t.Fatalf("expected ErrNoStrategy, got %v", err)
	}
	for _, want := range []string{"primary selector", "role lookup"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing attempt %q", err, want)
		}
	}
}

func TestFirstWithNoStrategies(t *testing.T) {
	if _, err := browser.First(); !errors.Is(err, browser.ErrNoStrategy) {
		t.Fatalf("expected ErrNoStrategy for empty list, got %v", err)
	}
}
