package youtube

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/playwright-community/playwright-go"

	"recpub/internal/browser"
)

// thumbnailInputSelectors are direct file inputs tried after the
// file-chooser flow fails.
var thumbnailInputSelectors = []string{
	`input[type="file"][accept*="image"]`,
	`#still-picker input[type="file"]`,
}

// setThumbnail uploads a custom thumbnail, preferring the file-chooser flow
// over direct file inputs. Skips with a warning when neither works.
func (c *Client) setThumbnail(page playwright.Page, path string) {
	resolved, err := filepath.Abs(path)
	if err != nil {
		c.reporter.Warn("Could not resolve thumbnail path %q; skipping.", path)
		return
	}

	_, err = browser.First(
		browser.Strategy{
			Name: "file chooser via upload control",
			Try: func() error {
				chooser, err := page.ExpectFileChooser(func() error {
					return page.GetByText("Upload thumbnail").First().Click(playwright.LocatorClickOptions{
						Timeout: playwright.Float(5000),
					})
				}, playwright.PageExpectFileChooserOptions{Timeout: playwright.Float(5000)})
				if err != nil {
					return err
				}
				return chooser.SetFiles(resolved)
			},
		},
		browser.Strategy{
			Name: "direct image file input",
			Try: func() error {
				for _, selector := range thumbnailInputSelectors {
					err := page.Locator(selector).First().SetInputFiles(resolved, playwright.LocatorSetInputFilesOptions{
						Timeout: playwright.Float(3000),
					})
					if err == nil {
						return nil
					}
				}
				return errors.New("no image file input accepted the thumbnail")
			},
		},
	)
	if err != nil {
		c.reporter.Warn("Could not set thumbnail; skipping.")
		browser.Capture(page, c.logger, "yt_debug_thumbnail.png")
		return
	}
	page.WaitForTimeout(2000)
}

// setPlaylist checks the playlist matching the visible label text, then
// always closes the playlist dialog, via its Done control or an escape key.
// Skips with a warning when the dialog or label is absent.
func (c *Client) setPlaylist(page playwright.Page, name string) {
	err := func() error {
		if err := page.Locator("ytcp-video-metadata-playlists").Click(playwright.LocatorClickOptions{
			Timeout: playwright.Float(5000),
		}); err != nil {
			return fmt.Errorf("open playlist selector: %w", err)
		}
		page.WaitForTimeout(1000)

		label := page.Locator(fmt.Sprintf(`label:has-text(%q)`, name))
		count, err := label.Count()
		if err != nil {
			return fmt.Errorf("find playlist label: %w", err)
		}
		if count > 0 {
			if err := label.First().Click(); err != nil {
				return fmt.Errorf("check playlist: %w", err)
			}
			page.WaitForTimeout(500)
		} else {
			c.reporter.Warn("Playlist %q not found; skipping.", name)
		}

		if err := page.Locator("ytcp-playlist-dialog").GetByText("Done", playwright.LocatorGetByTextOptions{
			Exact: playwright.Bool(true),
		}).Click(playwright.LocatorClickOptions{Timeout: playwright.Float(3000)}); err != nil {
			c.dismissOverlays(page)
		}
		page.WaitForTimeout(500)
		return nil
	}()
	if err != nil {
		c.reporter.Warn("Could not set playlist; skipping.")
		c.logger.Debug("playlist selection failed", "playlist", name, "error", err)
		c.dismissOverlays(page)
	}
}

// setAudience sets the made-for-kids radio by value name, falling back to
// the visible label text. Skips with a warning when both fail.
func (c *Client) setAudience(page playwright.Page, madeForKids bool) {
	_, err := browser.First(
		browser.Strategy{
			Name: "radio value name",
			Try: func() error {
				return page.Locator(`[name="` + audienceRadioName(madeForKids) + `"]`).Click(playwright.LocatorClickOptions{
					Timeout: playwright.Float(5000),
				})
			},
		},
		browser.Strategy{
			Name: "visible label text",
			Try: func() error {
				return page.GetByText(audienceLabel(madeForKids)).First().Click(playwright.LocatorClickOptions{
					Timeout: playwright.Float(5000),
				})
			},
		},
	)
	if err != nil {
		audience := "not made for kids"
		if madeForKids {
			audience = "made for kids"
		}
		c.reporter.Warn("Could not mark the video as %s; skipping.", strings.TrimSpace(audience))
	}
}
