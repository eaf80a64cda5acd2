package config

import (
	"errors"
	"fmt"
	"strings"
)

var validVisibilities = map[string]bool{
	"public":   true,
	"unlisted": true,
	"private":  true,
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePublish(); err != nil {
		return err
	}
	if err := c.validateTimeouts(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePublish() error {
	if strings.TrimSpace(c.Publish.TitleFormat) == "" {
		return errors.New("publish.title_format must be set")
	}
	if !strings.Contains(c.Publish.TitleFormat, "{date}") {
		return fmt.Errorf("publish.title_format %q must contain the {date} placeholder", c.Publish.TitleFormat)
	}
	if !validVisibilities[c.Publish.Visibility] {
		return fmt.Errorf("publish.visibility %q must be one of public, unlisted, private", c.Publish.Visibility)
	}
	return nil
}

func (c *Config) validateTimeouts() error {
	checks := []struct {
		name  string
		value int
	}{
		{"timeouts.login_wait", c.Timeouts.LoginWait},
		{"timeouts.field_wait", c.Timeouts.FieldWait},
		{"timeouts.step_wait", c.Timeouts.StepWait},
		{"timeouts.processing_wait", c.Timeouts.ProcessingWait},
		{"timeouts.download_wait", c.Timeouts.DownloadWait},
	}
	for _, check := range checks {
		if check.value <= 0 {
			return fmt.Errorf("%s must be positive", check.name)
		}
	}
	return nil
}
