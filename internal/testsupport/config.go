package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"dngconv/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Picker.StartDir = filepath.Join(base, "card")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.LockPath = filepath.Join(base, "state", "convert.lock")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithDNGLabBinary points the config at an explicit converter binary.
func WithDNGLabBinary(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.DNGLab.Binary = path
	}
}

// WithStubDNGLab writes a stub converter into the config's temp tree and
// points dnglab.binary at it.
func WithStubDNGLab(stub Stub) ConfigOption {
	return func(b *configBuilder) {
		bin, _ := WriteStubDNGLab(b.t, filepath.Join(b.baseDir, "bin"), stub)
		b.cfg.DNGLab.Binary = bin
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LogDir)
}

// WriteConfig encodes cfg as TOML into the config's temp tree and returns
// the file path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "config.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
