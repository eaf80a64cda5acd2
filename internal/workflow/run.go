// Package workflow sequences a publish run: locate a recording, download it,
// upload it through the studio wizard, and record the result in the ledger.
//
// The runner is the single boundary that decides user messaging and exit
// behavior; driver errors propagate here and nowhere else.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"recpub/internal/browser"
	"recpub/internal/config"
	"recpub/internal/console"
	"recpub/internal/credentials"
	"recpub/internal/dates"
	"recpub/internal/ledger"
	"recpub/internal/textutil"
	"recpub/internal/youtube"
	"recpub/internal/zoom"
)

// RecordingService is the locate-and-fetch capability the runner drives.
// *zoom.Client is the production implementation.
type RecordingService interface {
	EnsureLoggedIn(ctx context.Context) error
	ListRecordings(ctx context.Context, day time.Time) ([]zoom.Recording, error)
	Download(ctx context.Context, rec zoom.Recording, dest string) (string, error)
	ClosePage()
}

// UploadService is the publish capability the runner drives.
// *youtube.Client is the production implementation.
type UploadService interface {
	EnsureLoggedIn(ctx context.Context) error
	Upload(ctx context.Context, req youtube.UploadRequest) (youtube.UploadResult, error)
	ClosePage()
}

// Runner wires the drivers together for one sequential run. All browser
// operations block the calling flow; nothing here is concurrent.
type Runner struct {
	Config   *config.Config
	Reporter console.Reporter
	Logger   *slog.Logger
	Creds    credentials.Store

	// Services overrides browser-backed service construction. When nil the
	// runner launches the shared browser session and builds the real
	// drivers over it.
	Services func() (RecordingService, UploadService, func() error, error)
}

func (r *Runner) openServices() (RecordingService, UploadService, func() error, error) {
	if r.Services != nil {
		return r.Services()
	}
	session, err := browser.Launch(browser.Options{
		ProfileDir: r.Config.Browser.ProfileDir,
		Headless:   r.Config.Browser.Headless,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	recordingsSvc := zoom.NewClient(session, r.Creds, r.Reporter, r.Logger, r.Config.Timeouts)
	uploadSvc := youtube.NewClient(session, r.Reporter, r.Logger, r.Config.Timeouts)
	return recordingsSvc, uploadSvc, session.Close, nil
}

func (r *Runner) shutdown(closeSession func() error) {
	if closeSession == nil {
		return
	}
	if err := closeSession(); err != nil {
		r.Logger.Warn("session shutdown", "error", err)
	}
}

// Run executes the full locate, download, publish flow for the given date
// input, prompting for a date when the input is empty.
func (r *Runner) Run(ctx context.Context, dateInput string) error {
	day, err := r.resolveDate(dateInput)
	if err != nil {
		return err
	}
	r.Reporter.Info("Looking up recordings for: %s", day.Format("2006-01-02"))

	recordingsSvc, uploadSvc, closeSession, err := r.openServices()
	if err != nil {
		return err
	}
	defer r.shutdown(closeSession)

	r.Reporter.Info("Connecting to Zoom...")
	if err := recordingsSvc.EnsureLoggedIn(ctx); err != nil {
		return err
	}
	r.Reporter.Success("Zoom ready.")

	recordings, err := recordingsSvc.ListRecordings(ctx, day)
	if err != nil {
		return fmt.Errorf("fetch recordings: %w", err)
	}
	if len(recordings) == 0 {
		r.Reporter.Warn("No recordings found for this date.")
		return nil
	}

	selected, err := r.selectRecording(recordings)
	if err != nil {
		return err
	}

	title := ComputeTitle(r.Config.Publish.TitleFormat, day)

	store := ledger.NewStore(r.Config.LedgerPath)
	entries, err := store.Load()
	if err != nil {
		return err
	}
	if previous, ok := entries[title]; ok {
		r.Reporter.Warn("Already uploaded: %s", previous)
		again, err := r.Reporter.Confirm("Upload again?", false)
		if err != nil {
			return err
		}
		if !again {
			r.Reporter.Info("Aborted.")
			return nil
		}
	}

	dest := filepath.Join(r.Config.Browser.DownloadDir, textutil.DownloadFileName(title))
	if _, err := os.Stat(dest); err == nil {
		r.Reporter.Warn("File already exists: %s; skipping download.", dest)
	} else {
		r.Reporter.Info("Downloading recording (watch browser)...")
		if _, err := recordingsSvc.Download(ctx, selected, dest); err != nil {
			return fmt.Errorf("download failed: %w", err)
		}
		r.Reporter.Success("Downloaded: %s", dest)
	}
	recordingsSvc.ClosePage()

	r.Reporter.Info("Connecting to YouTube Studio...")
	if err := uploadSvc.EnsureLoggedIn(ctx); err != nil {
		return err
	}
	r.Reporter.Success("YouTube Studio ready.")

	visibility, err := youtube.ParseVisibility(r.Config.Publish.Visibility)
	if err != nil {
		return err
	}
	request := youtube.UploadRequest{
		FilePath:      dest,
		Title:         title,
		Description:   r.Config.Publish.Description,
		Visibility:    visibility,
		MadeForKids:   r.Config.Publish.MadeForKids,
		ThumbnailPath: r.Config.YouTube.ThumbnailFile,
		PlaylistName:  r.Config.YouTube.PlaylistName,
	}

	r.Reporter.Info("Uploading to YouTube (watch browser for progress)...")
	result, err := uploadSvc.Upload(ctx, request)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	entries[title] = result.URL()
	if err := store.Save(entries); err != nil {
		return err
	}

	if result.Confirmed() {
		r.Reporter.Success("Done! Video URL: %s", result.URL())
	} else {
		r.Reporter.Warn("Upload completed but the video URL could not be extracted. Check YouTube Studio.")
	}
	uploadSvc.ClosePage()

	// The downloaded file is only removed once the upload succeeded.
	if err := os.Remove(dest); err != nil {
		r.Reporter.Warn("Could not remove %s: %v", dest, err)
	} else {
		r.Reporter.Info("Cleaned up %s", dest)
	}
	return nil
}

// List locates recordings for the date input and renders them without
// downloading or uploading anything.
func (r *Runner) List(ctx context.Context, dateInput string) error {
	day, err := r.resolveDate(dateInput)
	if err != nil {
		return err
	}
	r.Reporter.Info("Looking up recordings for: %s", day.Format("2006-01-02"))

	recordingsSvc, _, closeSession, err := r.openServices()
	if err != nil {
		return err
	}
	defer r.shutdown(closeSession)

	if err := recordingsSvc.EnsureLoggedIn(ctx); err != nil {
		return err
	}

	recordings, err := recordingsSvc.ListRecordings(ctx, day)
	if err != nil {
		return fmt.Errorf("fetch recordings: %w", err)
	}
	if len(recordings) == 0 {
		r.Reporter.Warn("No recordings found for this date.")
		return nil
	}
	r.Reporter.Table(recordingHeaders(), recordingRows(recordings))
	return nil
}

func (r *Runner) resolveDate(dateInput string) (time.Time, error) {
	input := strings.TrimSpace(dateInput)
	if input == "" {
		answer, err := r.Reporter.Ask("Meeting date", "today")
		if err != nil {
			return time.Time{}, err
		}
		input = answer
	}
	return dates.ParseInput(input, time.Now())
}

// selectRecording auto-selects a single match and prompts otherwise.
func (r *Runner) selectRecording(recordings []zoom.Recording) (zoom.Recording, error) {
	if len(recordings) == 1 {
		r.Reporter.Info("Found: %s (%s)", recordings[0].Topic, recordings[0].Date)
		return recordings[0], nil
	}

	r.Reporter.Table(recordingHeaders(), recordingRows(recordings))
	answer, err := r.Reporter.Ask("Select recording number", "1")
	if err != nil {
		return zoom.Recording{}, err
	}
	index, err := parseSelection(answer, len(recordings))
	if err != nil {
		return zoom.Recording{}, err
	}
	return recordings[index], nil
}

// ComputeTitle renders the title template for a day, substituting the
// {date} placeholder with the YYYYMMDD stamp.
func ComputeTitle(format string, day time.Time) string {
	return strings.ReplaceAll(format, "{date}", dates.TitleStamp(day))
}

// parseSelection converts a 1-based selection answer into a slice index.
func parseSelection(answer string, count int) (int, error) {
	number, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("invalid selection %q", answer)
	}
	if number < 1 || number > count {
		return 0, fmt.Errorf("selection %d out of range 1..%d", number, count)
	}
	return number - 1, nil
}

func recordingHeaders() []string {
	return []string{"#", "Topic", "Date", "Duration"}
}

func recordingRows(recordings []zoom.Recording) [][]string {
	rows := make([][]string, 0, len(recordings))
	for i, rec := range recordings {
		rows = append(rows, []string{strconv.Itoa(i + 1), rec.Topic, rec.Date, rec.Duration})
	}
	return rows
}
