package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"dngconv/internal/config"
	"dngconv/internal/logging"
	"dngconv/internal/services/dnglab"
	"dngconv/internal/workflow"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(c.flagPath())
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) flagPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

// logger builds the session logger. Console output goes to stderr so it never
// mixes with tables or JSON on stdout.
func (c *commandContext) logger(console bool) (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logging.NewSession(cfg.Paths.LogDir, cfg.Logging.Level, cfg.Logging.Format, console)
}

func (c *commandContext) locator() (*dnglab.Locator, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return dnglab.NewLocator(cfg.LocatorConfig()), nil
}

// manager wires the locator, runner, and run lock into a workflow manager.
func (c *commandContext) manager(logger *slog.Logger) (*workflow.Manager, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	locator := dnglab.NewLocator(cfg.LocatorConfig())
	runner := dnglab.NewRunner(locator, dnglab.WithLogger(logger))
	return workflow.NewManager(locator, runner, logger, workflow.WithLockPath(cfg.Paths.LockPath)), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
