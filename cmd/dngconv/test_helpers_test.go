package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dngconv/internal/config"
	"dngconv/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	callLog    string
	baseDir    string
	outputDir  string
}

func setupCLITestEnv(t *testing.T, stub testsupport.Stub) *cliTestEnv {
	t.Helper()

	t.Setenv(config.EnvBinary, "")
	cfg := testsupport.NewConfig(t)
	base := testsupport.BaseDir(cfg)
	t.Setenv("HOME", filepath.Join(base, "home"))

	bin, callLog := testsupport.WriteStubDNGLab(t, filepath.Join(base, "bin"), stub)
	cfg.DNGLab.Binary = bin

	outputDir := filepath.Join(base, "out")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		t.Fatalf("mkdir output: %v", err)
	}

	return &cliTestEnv{
		cfg:        cfg,
		configPath: testsupport.WriteConfig(t, cfg),
		callLog:    callLog,
		baseDir:    base,
		outputDir:  outputDir,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q to contain %q", haystack, needle)
	}
}
