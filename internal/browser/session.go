// Package browser hosts the shared persistent browsing session both service
// drivers run against, plus the selector-probing helpers they use to cope
// with unstable markup.
//
// The session wraps a headed Chromium instance over an on-disk profile so a
// single human login to each service survives across runs. The profile
// directory is guarded with a file lock; two processes must never share it.
package browser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/playwright-community/playwright-go"
)

const lockFileName = "recpub.lock"

// Options configures the launched session.
type Options struct {
	ProfileDir     string
	Headless       bool
	DefaultTimeout time.Duration
}

// Session owns the playwright runtime, the persistent browser context, and
// the profile-directory lock.
type Session struct {
	pw      *playwright.Playwright
	context playwright.BrowserContext
	lock    *flock.Flock
}

// Launch starts the browser over the persistent profile directory.
func Launch(opts Options) (*Session, error) {
	if opts.ProfileDir == "" {
		return nil, errors.New("browser: profile directory required")
	}
	if err := os.MkdirAll(opts.ProfileDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure profile directory: %w", err)
	}

	lock := flock.New(filepath.Join(opts.ProfileDir, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire profile lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another recpub instance is already using this browser profile")
	}

	pw, err := playwright.Run()
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	timeout := opts.DefaultTimeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	context, err := pw.Chromium.LaunchPersistentContext(opts.ProfileDir, playwright.BrowserTypeLaunchPersistentContextOptions{
		Headless:        playwright.Bool(opts.Headless),
		Viewport:        &playwright.Size{Width: 1280, Height: 900},
		AcceptDownloads: playwright.Bool(true),
		Timeout:         playwright.Float(Millis(timeout)),
		Args:            []string{"--disable-blink-features=AutomationControlled"},
		IgnoreDefaultArgs: []string{
			"--enable-automation",
		},
	})
	if err != nil {
		_ = pw.Stop()
		_ = lock.Unlock()
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	return &Session{pw: pw, context: context, lock: lock}, nil
}

// NewPage opens a fresh page in the shared context.
func (s *Session) NewPage() (playwright.Page, error) {
	page, err := s.context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	return page, nil
}

// Close tears down the browser context, the playwright runtime, and the
// profile lock. The first error wins; later cleanup still runs.
func (s *Session) Close() error {
	var first error
	if err := s.context.Close(); err != nil && first == nil {
		first = fmt.Errorf("close browser context: %w", err)
	}
	if err := s.pw.Stop(); err != nil && first == nil {
		first = fmt.Errorf("stop playwright: %w", err)
	}
	if err := s.lock.Unlock(); err != nil && first == nil {
		first = fmt.Errorf("release profile lock: %w", err)
	}
	return first
}

// Millis converts a duration to the millisecond float playwright expects.
func Millis(d time.Duration) float64 {
	return float64(d.Milliseconds())
}
