package console_test

import (
	"bytes"
	"strings"
	"testing"

	"recpub/internal/console"
)

func TestConfirmDefaultAndAnswers(t *testing.T) {
	cases := []struct {
		input      string
		defaultYes bool
		want       bool
	}{
		{"\n", false, false},
		{"\n", true, true},
		{"y\n", false, true},
		{"YES\n", false, true},
		{"n\n", true, false},
		{"maybe\nno\n", true, false},
	}

	for _, tc := range cases {
		var out bytes.Buffer
		term := console.NewTerminal(&out, strings.NewReader(tc.input))
		got, err := term.Confirm("Upload again?", tc.defaultYes)
		if err != nil {
			t.Fatalf("Confirm(%q) error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("Confirm(%q, default=%v) = %v, want %v", tc.input, tc.defaultYes, got, tc.want)
		}
	}
}

func TestAskReturnsDefaultOnEmptyAnswer(t *testing.T) {
	var out bytes.Buffer
	term := console.NewTerminal(&out, strings.NewReader("\n"))
	got, err := term.Ask("Meeting date", "today")
	if err != nil {
		t.Fatalf("Ask error: %v", err)
	}
	if got != "today" {
		t.Fatalf("Ask = %q, want default", got)
	}
}

func TestAskTrimsAnswer(t *testing.T) {
	var out bytes.Buffer
	term := console.NewTerminal(&out, strings.NewReader("  2026-02-03  \n"))
	got, err := term.Ask("Meeting date", "today")
	if err != nil {
		t.Fatalf("Ask error: %v", err)
	}
	if got != "2026-02-03" {
		t.Fatalf("Ask = %q", got)
	}
}

func TestAskSecretFallsBackToLineRead(t *testing.T) {
	var out bytes.Buffer
	term := console.NewTerminal(&out, strings.NewReader("hunter2\n"))
	got, err := term.AskSecret("Password")
	if err != nil {
		t.Fatalf("AskSecret error: %v", err)
	}
	if got != "hunter2" {
		t.Fatalf("AskSecret = %q", got)
	}
}

func TestTableRendersHeadersAndRows(t *testing.T) {
	var out bytes.Buffer
	term := console.NewTerminal(&out, strings.NewReader(""))
	term.Table([]string{"#", "Topic"}, [][]string{{"1", "Weekly Sync"}})

	rendered := out.String()
	for _, want := range []string{"Topic", "Weekly Sync"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("table output missing %q:\n%s", want, rendered)
		}
	}
}
