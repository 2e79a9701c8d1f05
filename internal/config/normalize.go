package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvBinary overrides dnglab.binary when the config leaves it empty.
const EnvBinary = "DNGCONV_DNGLAB"

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeDNGLab(); err != nil {
		return err
	}
	c.normalizeDefaults()
	c.normalizePicker()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LockPath) == "" {
		c.Paths.LockPath = defaultLockPath
	}
	if c.Paths.LockPath, err = expandPath(strings.TrimSpace(c.Paths.LockPath)); err != nil {
		return fmt.Errorf("paths.lock_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeDNGLab() error {
	c.DNGLab.Binary = strings.TrimSpace(c.DNGLab.Binary)
	if c.DNGLab.Binary == "" {
		if value, ok := os.LookupEnv(EnvBinary); ok {
			c.DNGLab.Binary = strings.TrimSpace(value)
		}
	}
	if strings.HasPrefix(c.DNGLab.Binary, "~") {
		expanded, err := expandPath(c.DNGLab.Binary)
		if err != nil {
			return fmt.Errorf("dnglab.binary: %w", err)
		}
		c.DNGLab.Binary = expanded
	}
	c.DNGLab.DarwinPath = strings.TrimSpace(c.DNGLab.DarwinPath)
	if c.DNGLab.DarwinPath == "" {
		c.DNGLab.DarwinPath = defaultDarwinPath
	}
	c.DNGLab.LinuxCommand = strings.TrimSpace(c.DNGLab.LinuxCommand)
	if c.DNGLab.LinuxCommand == "" {
		c.DNGLab.LinuxCommand = defaultLinuxCommand
	}
	return nil
}

func (c *Config) normalizeDefaults() {
	c.Defaults.Compression = strings.ToLower(strings.TrimSpace(c.Defaults.Compression))
	if c.Defaults.Compression == "" {
		c.Defaults.Compression = defaultCompression
	}
	c.Defaults.Crop = strings.ToLower(strings.TrimSpace(c.Defaults.Crop))
	if c.Defaults.Crop == "" {
		c.Defaults.Crop = defaultCrop
	}
}

func (c *Config) normalizePicker() {
	if strings.TrimSpace(c.Picker.StartDir) == "" {
		c.Picker.StartDir = defaultStartDir
	}
	// A start dir that cannot be expanded falls back to home in PickerStartDir.
	if expanded, err := expandPath(strings.TrimSpace(c.Picker.StartDir)); err == nil {
		c.Picker.StartDir = expanded
	}

	seen := make(map[string]struct{}, len(c.Picker.Extensions))
	exts := make([]string, 0, len(c.Picker.Extensions))
	for _, ext := range c.Picker.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		exts = append(exts, ext)
	}
	c.Picker.Extensions = exts
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
