package browser

import (
	"log/slog"

	"github.com/playwright-community/playwright-go"
)

// Capture writes a diagnostic screenshot to the working directory under the
// given fixed name. Capture is best effort: failures are logged and never
// abort the calling flow.
func Capture(page playwright.Page, logger *slog.Logger, name string) {
	if page == nil {
		return
	}
	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String(name),
	}); err != nil {
		logger.Warn("diagnostic screenshot failed", "path", name, "error", err)
	} else {
		logger.Debug("diagnostic screenshot written", "path", name)
	}
}
