package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func requireContains(t *testing.T, output, needle string) {
	t.Helper()
	if !strings.Contains(output, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, output)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	target := filepath.Join(t.TempDir(), "config.toml")
	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}
}

func TestConfigInitRefusesExistingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	target := filepath.Join(t.TempDir(), "config.toml")
	if _, err := runCommand(t, "config", "init", "--path", target); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config file already exists")
	}
}

func TestConfigPathPrintsResolvedLocation(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCommand(t, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	requireContains(t, out, "config.toml")
}

func TestConfigShowHonorsConfigFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	base := t.TempDir()
	configPath := filepath.Join(base, "custom.toml")
	content := "log_level = \"debug\"\n\n[publish]\ntitle_format = \"Meeting {date}\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runCommand(t, "--config", configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, configPath)
	requireContains(t, out, "Log level: debug")
}

func TestUploadsRendersLedger(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	base := t.TempDir()
	ledgerPath := filepath.Join(base, "uploads.json")
	if err := os.WriteFile(ledgerPath, []byte(`{"Meeting 20260203":"https://youtu.be/abc123"}`), 0o644); err != nil {
		t.Fatalf("write ledger: %v", err)
	}

	configPath := filepath.Join(base, "config.toml")
	content := "ledger_path = " + tomlQuote(ledgerPath) + "\n\n[publish]\ntitle_format = \"Meeting {date}\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runCommand(t, "--config", configPath, "uploads")
	if err != nil {
		t.Fatalf("uploads: %v", err)
	}
	requireContains(t, out, "Meeting 20260203")
	requireContains(t, out, "https://youtu.be/abc123")
}

func TestUploadsEmptyLedger(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	base := t.TempDir()
	configPath := filepath.Join(base, "config.toml")
	content := "ledger_path = " + tomlQuote(filepath.Join(base, "uploads.json")) + "\n\n[publish]\ntitle_format = \"Meeting {date}\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := runCommand(t, "--config", configPath, "uploads")
	if err != nil {
		t.Fatalf("uploads: %v", err)
	}
	requireContains(t, out, "No uploads recorded yet.")
}

// tomlQuote quotes a path for TOML.
func tomlQuote(path string) string {
	return `"` + strings.ReplaceAll(path, `\`, `\\`) + `"`
}
