// Package zoom drives the recording service's web UI: locating recordings on
// the listing page for a requested day and downloading a chosen recording.
//
// The listing markup is scraped heuristically; see scrape.go for the line
// classification rules and their known limitations.
package zoom

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"recpub/internal/browser"
	"recpub/internal/config"
	"recpub/internal/console"
	"recpub/internal/credentials"
	"recpub/internal/dates"
)

const (
	baseURL       = "https://zoom.us"
	recordingsURL = baseURL + "/recording"
)

var (
	// ErrDownloadUnavailable reports that no actionable download control was
	// found on a recording's detail page.
	ErrDownloadUnavailable = errors.New("zoom: no download control found on the recording detail page; try downloading manually from the browser")
	// ErrLoginTimeout reports that the login flow did not return to the
	// recordings page within the bounded wait.
	ErrLoginTimeout = errors.New("zoom: timed out waiting for login to complete")
)

// Client drives the recording service through the shared browser session.
// It is not safe for concurrent use; the workflow runs it strictly
// sequentially on one page.
type Client struct {
	session  *browser.Session
	creds    credentials.Store
	reporter console.Reporter
	logger   *slog.Logger
	timeouts config.Timeouts
	page     playwright.Page
}

// NewClient builds a Client over the shared session.
func NewClient(session *browser.Session, creds credentials.Store, reporter console.Reporter, logger *slog.Logger, timeouts config.Timeouts) *Client {
	return &Client{
		session:  session,
		creds:    creds,
		reporter: reporter,
		logger:   logger.With("component", "zoom"),
		timeouts: timeouts,
	}
}

// EnsureLoggedIn navigates to the recordings page and, when redirected to
// the identity provider, auto-fills the stored credentials. It blocks until
// the URL returns to the recordings page or the login wait expires.
func (c *Client) EnsureLoggedIn(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	page, err := c.activePage()
	if err != nil {
		return err
	}

	if _, err := page.Goto(recordingsURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("open recordings page: %w", err)
	}
	page.WaitForTimeout(3000)

	if !isLoginURL(page.URL()) {
		return nil
	}

	email, password, err := credentials.ZoomLogin(c.creds, c.reporter)
	if err != nil {
		return err
	}

	c.reporter.Info("Logging in to Zoom...")
	if err := page.Locator(`input[type="email"], input[name="email"], #email`).First().Fill(email); err != nil {
		return fmt.Errorf("fill email field: %w", err)
	}
	if err := page.Locator(`input[type="password"], input[name="password"], #password`).First().Fill(password); err != nil {
		return fmt.Errorf("fill password field: %w", err)
	}
	if err := page.Locator(`button:has-text("Sign In"), button:has-text("Next"), input[type="submit"]`).First().Click(); err != nil {
		return fmt.Errorf("submit login form: %w", err)
	}

	page.WaitForTimeout(3000)
	if isLoginURL(page.URL()) {
		c.reporter.Warn("Automatic login needs additional input. Please complete login in the browser window.")
	}

	if err := page.WaitForURL("**/recording**", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(browser.Millis(c.timeouts.Login())),
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrLoginTimeout, err)
	}
	if err := page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("settle recordings page: %w", err)
	}
	c.logger.Debug("login confirmed", "url", page.URL())
	return nil
}

// ListRecordings re-scrapes the live listing page and returns the recordings
// whose date line matches the requested day. Zero matches is an empty slice,
// not an error. The server-side date filter is not trusted, so the page is
// loaded fresh and filtered locally.
func (c *Client) ListRecordings(ctx context.Context, day time.Time) ([]Recording, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	page, err := c.activePage()
	if err != nil {
		return nil, err
	}

	if _, err := page.Goto(recordingsURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return nil, fmt.Errorf("open recordings page: %w", err)
	}
	page.WaitForTimeout(3000)

	links := page.Locator(`a[href*="/recording/detail"], a[href*="/rec/share"]`)
	count, err := links.Count()
	if err != nil {
		return nil, fmt.Errorf("enumerate recording links: %w", err)
	}

	entries := make([]entry, 0, count)
	for i := 0; i < count; i++ {
		link := links.Nth(i)
		text, err := link.InnerText()
		if err != nil {
			continue
		}
		href, err := link.GetAttribute("href")
		if err != nil {
			href = ""
		}
		entries = append(entries, entry{text: strings.TrimSpace(text), href: href})
	}

	recordings := collect(entries, dates.DisplayForms(day))
	c.logger.Info("recordings listed", "links", count, "matches", len(recordings), "date", day.Format("2006-01-02"))
	return recordings, nil
}

// ClosePage closes the driver's page, leaving the shared session running.
func (c *Client) ClosePage() {
	if c.page != nil {
		_ = c.page.Close()
		c.page = nil
	}
}

func (c *Client) activePage() (playwright.Page, error) {
	if c.page != nil {
		return c.page, nil
	}
	page, err := c.session.NewPage()
	if err != nil {
		return nil, err
	}
	c.page = page
	return page, nil
}

func isLoginURL(url string) bool {
	return strings.Contains(url, "/signin") || strings.Contains(url, "/login")
}
