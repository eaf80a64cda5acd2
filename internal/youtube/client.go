// Package youtube drives the video platform's creator-studio upload wizard
// through the shared browser session.
//
// The wizard is a multi-step flow whose markup is not guaranteed stable, so
// every control is reached through an ordered list of probe strategies.
// Optional steps (thumbnail, playlist, audience flag, visibility radio) skip
// with a warning when no probe matches; the processing wait and the publish
// click are the only fatal points.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strings"

	"github.com/playwright-community/playwright-go"

	"recpub/internal/browser"
	"recpub/internal/config"
	"recpub/internal/console"
)

const studioURL = "https://studio.youtube.com"

// uploadFallbackURL opens the upload dialog directly when no create control
// can be found.
const uploadFallbackURL = studioURL + "/channel/UC/videos/upload?d=ud"

var (
	// ErrLoginTimeout reports that the human did not complete the federated
	// login within the bounded wait.
	ErrLoginTimeout = errors.New("youtube: timed out waiting for login to complete")
	// ErrUploadFailed reports that upload processing failed or never
	// finished within the bounded wait.
	ErrUploadFailed = errors.New("youtube: upload failed")
	// ErrPublishControlMissing reports that no publish/save control could be
	// clicked after processing completed.
	ErrPublishControlMissing = errors.New("youtube: could not click the publish control")
)

// wizardState names the Upload Director's position in the publish flow.
type wizardState string

const (
	stateIdle               wizardState = "idle"
	stateFileChosen         wizardState = "file_chosen"
	stateDetailsEntered     wizardState = "details_entered"
	stateAwaitingProcessing wizardState = "awaiting_processing"
	statePublished          wizardState = "published"
	stateFailed             wizardState = "failed"
)

// Client drives the creator studio through the shared browser session. Not
// safe for concurrent use; the workflow runs it strictly sequentially on one
// page.
type Client struct {
	session  *browser.Session
	reporter console.Reporter
	logger   *slog.Logger
	timeouts config.Timeouts
	page     playwright.Page
}

// NewClient builds a Client over the shared session.
func NewClient(session *browser.Session, reporter console.Reporter, logger *slog.Logger, timeouts config.Timeouts) *Client {
	return &Client{
		session:  session,
		reporter: reporter,
		logger:   logger.With("component", "youtube"),
		timeouts: timeouts,
	}
}

// EnsureLoggedIn navigates to the creator studio and, when redirected to the
// federated identity provider, waits for the human to complete login in the
// visible browser. Automating that login is deliberately out of scope.
func (c *Client) EnsureLoggedIn(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	page, err := c.activePage()
	if err != nil {
		return err
	}

	if _, err := page.Goto(studioURL); err != nil {
		return fmt.Errorf("open creator studio: %w", err)
	}
	if err := page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("settle creator studio: %w", err)
	}

	if !strings.Contains(page.URL(), "accounts.google.com") {
		return nil
	}

	c.reporter.Warn("Please log in to your Google account in the browser window.")
	if err := page.WaitForURL("**/studio.youtube.com/**", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(browser.Millis(c.timeouts.Login())),
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrLoginTimeout, err)
	}
	if err := page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("settle creator studio: %w", err)
	}
	c.logger.Debug("login confirmed", "url", page.URL())
	return nil
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

func (c *Client) transition(current *wizardState, next wizardState) {
	c.logger.Debug("wizard state", "from", string(*current), "to", string(next))
	*current = next
}

// dismissOverlays presses Escape to close any open dialog. Best effort.
func (c *Client) dismissOverlays(page playwright.Page) {
	if err := page.Keyboard().Press("Escape"); err != nil {
		return
	}
	page.WaitForTimeout(500)
}

func selectAllCombo(goos string) string {
	if goos == "darwin" {
		return "Meta+a"
	}
	return "Control+a"
}

func hostSelectAllCombo() string {
	return selectAllCombo(runtime.GOOS)
}
