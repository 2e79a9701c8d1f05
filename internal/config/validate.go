package config

import (
	"errors"
	"fmt"

	"dngconv/internal/services/dnglab"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDNGLab(); err != nil {
		return err
	}
	if err := c.validateDefaults(); err != nil {
		return err
	}
	if err := c.validatePicker(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateDNGLab() error {
	if c.DNGLab.VersionTimeout <= 0 {
		return errors.New("dnglab.version_timeout must be positive")
	}
	return nil
}

func (c *Config) validateDefaults() error {
	if _, err := dnglab.ParseCompression(c.Defaults.Compression); err != nil {
		return fmt.Errorf("defaults.compression: %w", err)
	}
	if _, err := dnglab.ParseCrop(c.Defaults.Crop); err != nil {
		return fmt.Errorf("defaults.crop: %w", err)
	}
	return nil
}

func (c *Config) validatePicker() error {
	if len(c.Picker.Extensions) == 0 {
		return errors.New("picker.extensions must list at least one extension")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
