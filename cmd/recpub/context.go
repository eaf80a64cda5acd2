package main

import (
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"recpub/internal/config"
	"recpub/internal/console"
	"recpub/internal/credentials"
	"recpub/internal/logging"
	"recpub/internal/workflow"
)

type commandContext struct {
	configFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolvedPath, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolvedPath
		c.configExists = exists
	})
	return c.config, c.configErr
}

// newRunner assembles the workflow runner for one invocation. Each run gets
// its own correlation id on the logger so interleaved log lines from retried
// runs stay distinguishable.
func (c *commandContext) newRunner() (*workflow.Runner, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Writer: os.Stderr,
	}).With("run_id", uuid.NewString())

	return &workflow.Runner{
		Config:   cfg,
		Reporter: console.NewTerminal(os.Stdout, os.Stdin),
		Logger:   logger,
		Creds:    credentials.NewKeyring(),
	}, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
