package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"recpub/internal/logging"
)

func TestNewWritesCompactLines(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{Level: "info", Writer: &buf})

	logger.With("component", "zoom").Info("recordings listed", "count", 3)

	line := buf.String()
	for _, want := range []string{"INFO", "[zoom]", "recordings listed", "count=3"} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line missing %q: %s", want, line)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{Level: "warn", Writer: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn record missing: %s", out)
	}
}

func TestQuotedAttrValues(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{Level: "info", Writer: &buf})

	logger.Info("selected", "topic", "Weekly Sync")

	if !strings.Contains(buf.String(), `topic="Weekly Sync"`) {
		t.Fatalf("expected quoted attr value: %s", buf.String())
	}
}
