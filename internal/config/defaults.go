package config

import "time"

const (
	defaultLogLevel    = "info"
	defaultLedgerPath  = "~/.local/share/recpub/uploads.json"
	defaultProfileDir  = "~/.local/share/recpub/browser"
	defaultTitleFormat = "Meeting Recording {date}"
	defaultDescription = "Weekly meeting recording."
	defaultVisibility  = "public"

	defaultLoginWaitSeconds      = 300
	defaultFieldWaitSeconds      = 60
	defaultStepWaitSeconds       = 3
	defaultProcessingWaitSeconds = 600
	defaultDownloadWaitSeconds   = 600
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		LogLevel:   defaultLogLevel,
		LedgerPath: defaultLedgerPath,
		Publish: Publish{
			TitleFormat: defaultTitleFormat,
			Description: defaultDescription,
			Visibility:  defaultVisibility,
		},
		Browser: Browser{
			ProfileDir: defaultProfileDir,
		},
		Timeouts: Timeouts{
			LoginWait:      defaultLoginWaitSeconds,
			FieldWait:      defaultFieldWaitSeconds,
			StepWait:       defaultStepWaitSeconds,
			ProcessingWait: defaultProcessingWaitSeconds,
			DownloadWait:   defaultDownloadWaitSeconds,
		},
	}
}

// Login returns the bounded wait for interactive logins.
func (t Timeouts) Login() time.Duration { return time.Duration(t.LoginWait) * time.Second }

// Field returns the bounded wait for the upload details form to render.
func (t Timeouts) Field() time.Duration { return time.Duration(t.FieldWait) * time.Second }

// Step returns the short settle wait between wizard interactions.
func (t Timeouts) Step() time.Duration { return time.Duration(t.StepWait) * time.Second }

// Processing returns the overall wait for upload processing to complete.
func (t Timeouts) Processing() time.Duration {
	return time.Duration(t.ProcessingWait) * time.Second
}

// Download returns the overall wait for a file transfer to begin and finish.
func (t Timeouts) Download() time.Duration {
	return time.Duration(t.DownloadWait) * time.Second
}
