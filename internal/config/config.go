package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"dngconv/internal/services/dnglab"
)

//go:embed sample_config.toml
var sampleConfig string

// DNGLab locates the converter binary.
type DNGLab struct {
	// Binary overrides the platform default on every OS.
	Binary         string `toml:"binary"`
	DarwinPath     string `toml:"darwin_path"`
	LinuxCommand   string `toml:"linux_command"`
	VersionTimeout int    `toml:"version_timeout"`
}

// Defaults seeds the conversion options shown when a session starts.
type Defaults struct {
	Compression string `toml:"compression"`
	Crop        string `toml:"crop"`
	EmbedRaw    bool   `toml:"embed_raw"`
	Override    bool   `toml:"override"`
	Recursive   bool   `toml:"recursive"`
}

// Picker configures the interactive file pickers.
type Picker struct {
	StartDir   string   `toml:"start_dir"`
	Extensions []string `toml:"extensions"`
	ShowHidden bool     `toml:"show_hidden"`
}

// Paths contains state and log locations.
type Paths struct {
	LogDir   string `toml:"log_dir"`
	LockPath string `toml:"lock_path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for dngconv.
type Config struct {
	DNGLab   DNGLab   `toml:"dnglab"`
	Defaults Defaults `toml:"defaults"`
	Picker   Picker   `toml:"picker"`
	Paths    Paths    `toml:"paths"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/dngconv/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded. The second return value is the path
// that was consulted and the third reports whether it existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if strings.TrimSpace(path) != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("dngconv.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// LocatorConfig returns the converter lookup settings.
func (c *Config) LocatorConfig() dnglab.LocatorConfig {
	return dnglab.LocatorConfig{
		Binary:         c.DNGLab.Binary,
		DarwinPath:     c.DNGLab.DarwinPath,
		LinuxCommand:   c.DNGLab.LinuxCommand,
		VersionTimeout: time.Duration(c.DNGLab.VersionTimeout) * time.Second,
	}
}

// ConversionOptions returns the configured initial options. Values were
// checked by Validate, so parse errors cannot occur on a loaded config.
func (c *Config) ConversionOptions() dnglab.Options {
	opts := dnglab.DefaultOptions()
	if compression, err := dnglab.ParseCompression(c.Defaults.Compression); err == nil {
		opts.Compression = compression
	}
	if crop, err := dnglab.ParseCrop(c.Defaults.Crop); err == nil {
		opts.Crop = crop
	}
	opts.EmbedRaw = c.Defaults.EmbedRaw
	opts.Overwrite = c.Defaults.Override
	opts.Recursive = c.Defaults.Recursive
	return opts
}

// PickerStartDir returns the configured start directory when it exists, the
// home directory otherwise.
func (c *Config) PickerStartDir() string {
	if dir := strings.TrimSpace(c.Picker.StartDir); dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// SampleConfig returns the annotated sample configuration file.
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
