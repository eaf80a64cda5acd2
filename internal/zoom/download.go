package zoom

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"

	"recpub/internal/browser"
)

// downloadControlSelectors is the ordered list of candidate selectors for
// the detail page's download action. The UI varies between recording types.
var downloadControlSelectors = []string{
	`button:has-text("Download")`,
	`a[href*="dl=1"]`,
	`a[href*="ssv="]`,
	`a[href*="rec/download"]`,
	`[aria-label*="ownload"]`,
}

// confirmationSelectors scope the follow-up "Download" control to the
// confirmation modal some recordings show before the transfer starts.
var confirmationSelectors = []string{
	`.zm-modal-footer button:has-text("Download")`,
	`.modal-footer button:has-text("Download")`,
	`[role="dialog"] button:has-text("Download")`,
	`.ReactModal__Content button:has-text("Download")`,
}

// Download drives the detail page's confirmation/download flow for the
// recording and persists the transferred bytes at dest. On failure a partial
// file may remain; cleanup is the caller's responsibility.
func (c *Client) Download(ctx context.Context, rec Recording, dest string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	page, err := c.activePage()
	if err != nil {
		return "", err
	}

	url := rec.DownloadURL
	if !strings.HasPrefix(url, "http") {
		url = baseURL + url
	}
	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return "", fmt.Errorf("open recording detail page: %w", err)
	}
	page.WaitForTimeout(3000)

	control, ok := browser.FirstVisible(page, downloadControlSelectors...)
	if !ok {
		return "", ErrDownloadUnavailable
	}

	// The first click either starts the transfer directly or raises a
	// confirmation modal; either way the real download is awaited below.
	if err := control.Click(); err != nil {
		return "", fmt.Errorf("click download control: %w", err)
	}
	page.WaitForTimeout(2000)

	waitOpts := playwright.PageExpectDownloadOptions{
		Timeout: playwright.Float(browser.Millis(c.timeouts.Download())),
	}

	var download playwright.Download
	strategy, err := browser.First(
		browser.Strategy{
			Name: "modal confirmation control",
			Try: func() error {
				confirm, ok := browser.FirstVisible(page, confirmationSelectors...)
				if !ok {
					return errors.New("no visible confirmation control")
				}
				d, err := page.ExpectDownload(func() error { return confirm.Click() }, waitOpts)
				if err != nil {
					return err
				}
				download = d
				return nil
			},
		},
		browser.Strategy{
			// Confirmation controls render after the triggering control, so
			// the last download control on the page is the modal's.
			Name: "last download control",
			Try: func() error {
				all := page.Locator(`button:has-text("Download")`)
				count, err := all.Count()
				if err != nil {
					return err
				}
				if count < 2 {
					return errors.New("no trailing download control")
				}
				d, err := page.ExpectDownload(func() error { return all.Nth(count - 1).Click() }, waitOpts)
				if err != nil {
					return err
				}
				download = d
				return nil
			},
		},
		browser.Strategy{
			// No modal appeared; assume the original control starts the
			// transfer and wait it out.
			Name: "re-click original control",
			Try: func() error {
				d, err := page.ExpectDownload(func() error { return control.Click() }, waitOpts)
				if err != nil {
					return err
				}
				download = d
				return nil
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("start recording download: %w", err)
	}
	c.logger.Debug("download started", "strategy", strategy, "topic", rec.Topic)

	if err := download.SaveAs(dest); err != nil {
		return "", fmt.Errorf("save recording to %s: %w", dest, err)
	}
	c.logger.Info("recording downloaded", "topic", rec.Topic, "dest", dest)
	return dest, nil
}
