package youtube

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"recpub/internal/browser"
)

// wizardNextSteps is the fixed number of "Next" clicks between the details
// form and the visibility step (video elements, checks, visibility).
const wizardNextSteps = 3

// createControlSelectors locate the studio's create/upload entry point,
// which renders under different labels.
var createControlSelectors = []string{
	"#create-icon",
	`[aria-label="Create"]`,
	`button:has-text("Create")`,
	"#upload-icon",
}

// errorRegionSelectors locate the wizard's dedicated error elements.
var errorRegionSelectors = []string{
	".error-area",
	"#error-message",
	"ytcp-uploads-dialog .error-short",
	".error-short-blurb",
}

// progressSelectors locate the upload/processing status text scraped for
// diagnostics.
var progressSelectors = []string{
	"ytcp-video-upload-progress",
	".progress-label",
	"span.progress-label",
}

// Upload walks the publish wizard to completion for the request and returns
// the published result. A publish whose identifier cannot be extracted is a
// soft success carrying the "unknown" sentinel, not an error.
func (c *Client) Upload(ctx context.Context, req UploadRequest) (UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return UploadResult{}, err
	}
	if err := req.Validate(); err != nil {
		return UploadResult{}, err
	}
	page, err := c.activePage()
	if err != nil {
		return UploadResult{}, err
	}

	state := stateIdle
	fail := func(err error) (UploadResult, error) {
		c.transition(&state, stateFailed)
		return UploadResult{}, err
	}

	if _, err := page.Goto(studioURL); err != nil {
		return fail(fmt.Errorf("open creator studio: %w", err))
	}
	if err := page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateDomcontentloaded,
	}); err != nil {
		return fail(fmt.Errorf("settle creator studio: %w", err))
	}
	page.WaitForTimeout(3000)

	if err := c.openUploadDialog(page); err != nil {
		return fail(err)
	}

	resolved, err := filepath.Abs(req.FilePath)
	if err != nil {
		return fail(fmt.Errorf("resolve upload file: %w", err))
	}
	if err := page.Locator(`input[type="file"]`).SetInputFiles(resolved); err != nil {
		return fail(fmt.Errorf("feed file to upload input: %w", err))
	}
	c.transition(&state, stateFileChosen)

	// The title field rendering confirms the file was accepted.
	if _, err := page.WaitForSelector("#title-textarea", playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(browser.Millis(c.timeouts.Field())),
	}); err != nil {
		return fail(fmt.Errorf("%w: details form did not render, file may not have been accepted: %v", ErrUploadFailed, err))
	}
	page.WaitForTimeout(1500)

	if err := c.enterDetails(page, req); err != nil {
		return fail(err)
	}
	c.transition(&state, stateDetailsEntered)

	c.advanceWizard(page)
	c.setVisibility(page, req.Visibility)
	page.WaitForTimeout(1000)
	c.transition(&state, stateAwaitingProcessing)

	if err := c.waitForProcessing(page); err != nil {
		return fail(err)
	}
	page.WaitForTimeout(1000)

	if err := c.clickPublish(page); err != nil {
		return fail(err)
	}
	c.transition(&state, statePublished)

	page.WaitForTimeout(5000)
	id := c.extractVideoID(page)
	result := UploadResult{VideoID: id, Title: req.Title}
	c.logger.Info("upload published", "title", req.Title, "video_id", id)
	return result, nil
}

// openUploadDialog probes the create controls and falls back to the direct
// upload URL when none is visible.
func (c *Client) openUploadDialog(page playwright.Page) error {
	create, ok := browser.FirstVisible(page, createControlSelectors...)
	if ok {
		if err := create.Click(); err != nil {
			return fmt.Errorf("click create control: %w", err)
		}
		if err := page.GetByText("Upload videos").Click(); err != nil {
			return fmt.Errorf("open upload dialog: %w", err)
		}
		return nil
	}

	c.logger.Debug("no create control visible, using direct upload url")
	if _, err := page.Goto(uploadFallbackURL); err != nil {
		return fmt.Errorf("open upload page: %w", err)
	}
	if err := page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("settle upload page: %w", err)
	}
	page.WaitForTimeout(2000)
	return nil
}

// enterDetails fills the details step. Title and description go through the
// keyboard rather than value assignment so the host page's own input
// handlers fire.
func (c *Client) enterDetails(page playwright.Page, req UploadRequest) error {
	if err := page.Locator("#title-textarea #textbox").Click(); err != nil {
		return fmt.Errorf("focus title field: %w", err)
	}
	if err := page.Keyboard().Press(hostSelectAllCombo()); err != nil {
		return fmt.Errorf("select default title: %w", err)
	}
	if err := page.Keyboard().Type(req.Title, playwright.KeyboardTypeOptions{
		Delay: playwright.Float(15),
	}); err != nil {
		return fmt.Errorf("type title: %w", err)
	}

	if err := page.Locator("#description-textarea #textbox").Click(); err != nil {
		return fmt.Errorf("focus description field: %w", err)
	}
	if err := page.Keyboard().Type(req.Description, playwright.KeyboardTypeOptions{
		Delay: playwright.Float(15),
	}); err != nil {
		return fmt.Errorf("type description: %w", err)
	}

	if req.ThumbnailPath != "" {
		c.setThumbnail(page, req.ThumbnailPath)
	}
	if req.PlaylistName != "" {
		c.setPlaylist(page, req.PlaylistName)
	}

	// The audience section sits below the fold.
	_ = page.Mouse().Wheel(0, 300)
	page.WaitForTimeout(500)
	c.setAudience(page, req.MadeForKids)
	page.WaitForTimeout(1000)
	return nil
}

// advanceWizard clicks through the fixed Next steps. Each click is best
// effort: the wizard may already be positioned correctly, so failures log a
// diagnostic and do not abort.
func (c *Client) advanceWizard(page playwright.Page) {
	for step := 1; step <= wizardNextSteps; step++ {
		if err := page.Locator("#next-button").Click(playwright.LocatorClickOptions{
			Timeout: playwright.Float(10_000),
		}); err != nil {
			c.reporter.Warn("Could not advance the upload wizard at step %d.", step)
			browser.Capture(page, c.logger, fmt.Sprintf("yt_debug_step%d.png", step))
			continue
		}
		page.WaitForTimeout(browser.Millis(c.timeouts.Step()))
	}
}

// setVisibility selects the requested visibility radio, warning and
// continuing on failure.
func (c *Client) setVisibility(page playwright.Page, visibility Visibility) {
	_, err := browser.First(
		browser.Strategy{
			Name: "radio value name",
			Try: func() error {
				return page.Locator(`[name="` + visibility.RadioName() + `"]`).Click(playwright.LocatorClickOptions{
					Timeout: playwright.Float(5000),
				})
			},
		},
		browser.Strategy{
			Name: "role lookup by label",
			Try: func() error {
				return page.GetByRole(*playwright.AriaRoleRadio, playwright.PageGetByRoleOptions{
					Name: visibility.Label(),
				}).Click(playwright.LocatorClickOptions{Timeout: playwright.Float(5000)})
			},
		},
	)
	if err != nil {
		c.reporter.Warn("Could not set visibility to %q; leaving the wizard's selection.", string(visibility))
		browser.Capture(page, c.logger, "yt_debug_visibility.png")
	}
}

// waitForProcessing polls the wizard until the finish control becomes
// enabled, a known failure phrase appears, or the processing wait expires.
func (c *Client) waitForProcessing(page playwright.Page) error {
	deadline := time.Now().Add(c.timeouts.Processing())
	for {
		if phrase, found := c.detectFailure(page); found {
			browser.Capture(page, c.logger, "yt_debug_upload_error.png")
			return fmt.Errorf("%w: page reported %q%s", ErrUploadFailed, phrase, c.statusSuffix(page))
		}
		if c.finishEnabled(page) {
			return nil
		}
		if time.Now().After(deadline) {
			browser.Capture(page, c.logger, "yt_debug_upload_timeout.png")
			return fmt.Errorf("%w: processing did not finish within %s%s", ErrUploadFailed, c.timeouts.Processing(), c.statusSuffix(page))
		}
		page.WaitForTimeout(3000)
	}
}

// detectFailure checks the dedicated error region for any failure phrase and
// the whole page text for the specific ones.
func (c *Client) detectFailure(page playwright.Page) (string, bool) {
	if region, ok := browser.FirstVisible(page, errorRegionSelectors...); ok {
		if text, err := region.InnerText(); err == nil {
			if phrase, found := failurePhrase(text, true); found {
				return phrase, true
			}
		}
	}
	if body, err := page.Locator("body").InnerText(); err == nil {
		if phrase, found := failurePhrase(body, false); found {
			return phrase, true
		}
	}
	return "", false
}

func (c *Client) finishEnabled(page playwright.Page) bool {
	done := page.Locator("#done-button")
	count, err := done.Count()
	if err != nil || count == 0 {
		return false
	}
	disabled, err := done.First().GetAttribute("aria-disabled")
	if err != nil {
		return false
	}
	return disabled != "true"
}

// statusSuffix scrapes any visible progress/status text for the diagnostic
// message. Empty when nothing is visible.
func (c *Client) statusSuffix(page playwright.Page) string {
	if status, ok := browser.FirstVisible(page, progressSelectors...); ok {
		if text, err := status.InnerText(); err == nil {
			if trimmed := strings.Join(strings.Fields(text), " "); trimmed != "" {
				return fmt.Sprintf(" (status: %s)", trimmed)
			}
		}
	}
	return ""
}

// clickPublish clicks the finish control, falling back to role-based
// lookups. Failure here is fatal.
func (c *Client) clickPublish(page playwright.Page) error {
	_, err := browser.First(
		browser.Strategy{
			Name: "finish control",
			Try: func() error {
				return page.Locator("#done-button").Click(playwright.LocatorClickOptions{
					Timeout: playwright.Float(10_000),
				})
			},
		},
		browser.Strategy{
			Name: `role button "Publish"`,
			Try: func() error {
				return page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
					Name: "Publish",
				}).Click(playwright.LocatorClickOptions{Timeout: playwright.Float(5000)})
			},
		},
		browser.Strategy{
			Name: `role button "Save"`,
			Try: func() error {
				return page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
					Name: "Save",
				}).Click(playwright.LocatorClickOptions{Timeout: playwright.Float(5000)})
			},
		},
	)
	if err != nil {
		browser.Capture(page, c.logger, "yt_debug_publish.png")
		return fmt.Errorf("%w: %v", ErrPublishControlMissing, err)
	}
	return nil
}

// extractVideoID scans the success dialog for a published link and falls
// back to the page URL. The sentinel marks a completed-but-unconfirmed
// publish.
func (c *Client) extractVideoID(page playwright.Page) string {
	link := page.Locator(`a[href*="youtu.be"], a[href*="youtube.com/video"]`).First()
	href, err := link.GetAttribute("href", playwright.LocatorGetAttributeOptions{
		Timeout: playwright.Float(5000),
	})
	if err == nil {
		if id, ok := videoIDFromHref(href); ok {
			return id
		}
	}
	if id, ok := videoIDFromPageURL(page.URL()); ok {
		return id
	}
	c.logger.Warn("could not extract published video id")
	return UnknownVideoID
}
