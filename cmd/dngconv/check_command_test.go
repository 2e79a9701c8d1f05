package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"dngconv/internal/preflight"
	"dngconv/internal/testsupport"
)

func TestCheckReportsVersion(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.Stub{Version: "dnglab 0.6.3"})

	out, _, err := runCLI(t, []string{"check", "--output", env.outputDir}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "[OK] "+env.cfg.DNGLab.Binary+" (dnglab 0.6.3)")
	requireContains(t, out, "Output directory:")
	requireContains(t, out, "(read/write ok)")
}

func TestCheckFailsWhenMissing(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.Stub{})
	if err := os.Remove(env.cfg.DNGLab.Binary); err != nil {
		t.Fatalf("remove stub: %v", err)
	}

	out, _, err := runCLI(t, []string{"check"}, env.configPath)
	if !errors.Is(err, errCheckFailed) {
		t.Fatalf("expected errCheckFailed, got %v", err)
	}
	requireContains(t, out, "[ERROR]")
	requireContains(t, out, "not found")
}

func TestCheckJSON(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.Stub{})

	out, _, err := runCLI(t, []string{"check", "--json", "--output", filepath.Join(env.baseDir, "nope")}, env.configPath)
	if !errors.Is(err, errCheckFailed) {
		t.Fatalf("expected errCheckFailed for missing folder, got %v", err)
	}
	var results []preflight.Result
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(results) != 2 || !results[0].Passed || results[1].Passed {
		t.Fatalf("unexpected results %+v", results)
	}
}
