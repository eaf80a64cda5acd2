package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"recpub/internal/config"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	if cfg.Publish.Visibility != "public" {
		t.Fatalf("unexpected default visibility: %q", cfg.Publish.Visibility)
	}
	if cfg.Publish.MadeForKids {
		t.Fatal("expected made_for_kids to default to false")
	}
	if !strings.Contains(cfg.Publish.TitleFormat, "{date}") {
		t.Fatalf("default title format missing placeholder: %q", cfg.Publish.TitleFormat)
	}
	wantLedger := filepath.Join(tempHome, ".local", "share", "recpub", "uploads.json")
	if cfg.LedgerPath != wantLedger {
		t.Fatalf("unexpected ledger path: got %q want %q", cfg.LedgerPath, wantLedger)
	}
	if cfg.Browser.DownloadDir == "" {
		t.Fatal("expected download dir to default to the temp directory")
	}
	if cfg.Browser.Headless {
		t.Fatal("expected headed browser by default")
	}
	if cfg.Timeouts.Processing() != 600*time.Second {
		t.Fatalf("unexpected processing wait: %s", cfg.Timeouts.Processing())
	}
	if cfg.Timeouts.Field() != 60*time.Second {
		t.Fatalf("unexpected field wait: %s", cfg.Timeouts.Field())
	}
}

func TestLoadParsesFileAndNormalizes(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, "config.toml")
	content := `
log_level = "DEBUG"

[publish]
title_format = "Team Sync {date}"
visibility = "Unlisted"

[youtube]
playlist_name = "Team Meetings"

[timeouts]
processing_wait = 1200
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level not normalized: %q", cfg.LogLevel)
	}
	if cfg.Publish.Visibility != "unlisted" {
		t.Fatalf("visibility not normalized: %q", cfg.Publish.Visibility)
	}
	if cfg.YouTube.PlaylistName != "Team Meetings" {
		t.Fatalf("playlist not loaded: %q", cfg.YouTube.PlaylistName)
	}
	if cfg.Timeouts.Processing() != 1200*time.Second {
		t.Fatalf("processing wait override ignored: %s", cfg.Timeouts.Processing())
	}
	if cfg.Timeouts.Login() != 300*time.Second {
		t.Fatalf("login wait default lost: %s", cfg.Timeouts.Login())
	}
}

func TestLoadRejectsInvalidVisibility(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, "config.toml")
	if err := os.WriteFile(path, []byte("[publish]\nvisibility = \"secret\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for unknown visibility")
	}
}

func TestLoadRejectsTitleFormatWithoutPlaceholder(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(tempHome, "config.toml")
	if err := os.WriteFile(path, []byte("[publish]\ntitle_format = \"static title\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for missing {date} placeholder")
	}
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	if _, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for explicit missing config path")
	}
}
