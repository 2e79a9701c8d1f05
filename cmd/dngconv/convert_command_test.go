package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dngconv/internal/services/dnglab"
	"dngconv/internal/testsupport"
	"dngconv/internal/workflow"
)

func TestConvertRunsEveryFileInOrder(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.Stub{})
	inputs := testsupport.WriteRawFiles(t, filepath.Join(env.baseDir, "card"), "x.nef")

	out, _, err := runCLI(t, []string{
		"convert", "-o", env.outputDir,
		"--compression", "lossless", "--crop", "auto",
		inputs[0],
	}, env.configPath)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, "Converted 1 file(s).")
	requireContains(t, out, "x.nef")

	calls := testsupport.ReadCalls(t, env.callLog)
	want := "convert --embed-raw true --compression lossless --crop auto " + inputs[0] + " " + env.outputDir
	if len(calls) != 1 || calls[0] != want {
		t.Fatalf("unexpected dnglab calls:\n got %q\nwant %q", calls, want)
	}
}

func TestConvertContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	inputs := testsupport.WriteRawFiles(t, dir, "A.nef", "B.cr2", "C.arw")
	env := setupCLITestEnv(t, testsupport.Stub{FailOn: []string{inputs[1]}})

	out, _, err := runCLI(t, append([]string{"convert", "-o", env.outputDir, "--override"}, inputs...), env.configPath)
	if !errors.Is(err, errRunIncomplete) {
		t.Fatalf("expected errRunIncomplete, got %v", err)
	}
	requireContains(t, out, "Converted 2 of 3 file(s); 1 failed.")
	requireContains(t, out, "Failed (1)")

	calls := testsupport.ReadCalls(t, env.callLog)
	if len(calls) != 3 {
		t.Fatalf("expected three launches, got %q", calls)
	}
	for i, call := range calls {
		if !strings.Contains(call, "--override "+inputs[i]+" ") {
			t.Fatalf("call %d out of order or missing --override: %q", i, call)
		}
	}
}

func TestConvertJSONReport(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.Stub{})
	inputs := testsupport.WriteRawFiles(t, t.TempDir(), "a.nef", "b.nef")

	out, _, err := runCLI(t, append([]string{"convert", "--json", "-o", env.outputDir, "--embed-raw=false"}, inputs...), env.configPath)
	if err != nil {
		t.Fatalf("convert --json: %v", err)
	}
	var report reportJSON
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}
	if report.ID == "" || report.Succeeded != 2 || len(report.Files) != 2 {
		t.Fatalf("unexpected report %+v", report)
	}
	if report.Options.EmbedRaw {
		t.Fatal("--embed-raw=false not applied")
	}
	if report.Files[0].Result != "succeeded" || report.Files[0].Args[2] != "false" {
		t.Fatalf("unexpected file entry %+v", report.Files[0])
	}
}

func TestConvertJSONReportsFailureClass(t *testing.T) {
	inputs := testsupport.WriteRawFiles(t, t.TempDir(), "a.nef", "b.nef")
	env := setupCLITestEnv(t, testsupport.Stub{FailOn: []string{inputs[0]}})

	out, _, err := runCLI(t, append([]string{"convert", "--json", "-o", env.outputDir}, inputs...), env.configPath)
	if !errors.Is(err, errRunIncomplete) {
		t.Fatalf("expected errRunIncomplete, got %v", err)
	}
	var report reportJSON
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v\n%s", err, out)
	}
	failed := report.Files[0]
	if failed.Result != "tool_error" || failed.ExitCode != 1 {
		t.Fatalf("unexpected failed entry %+v", failed)
	}
	requireContains(t, failed.Error, "external tool error")
	requireContains(t, failed.Error, inputs[0])
	if report.Files[1].Error != "" {
		t.Fatalf("converted file should carry no error: %+v", report.Files[1])
	}
}

func TestConvertSkipsWhenDNGLabMissing(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.Stub{})
	if err := os.Remove(env.cfg.DNGLab.Binary); err != nil {
		t.Fatalf("remove stub: %v", err)
	}
	inputs := testsupport.WriteRawFiles(t, t.TempDir(), "a.nef")

	out, stderr, err := runCLI(t, []string{"convert", "-o", env.outputDir, inputs[0]}, env.configPath)
	if !errors.Is(err, errRunIncomplete) {
		t.Fatalf("expected errRunIncomplete, got %v", err)
	}
	requireContains(t, out, "Conversion skipped")
	requireContains(t, stderr, "You must first install dnglab")
	if calls := testsupport.ReadCalls(t, env.callLog); len(calls) != 0 {
		t.Fatalf("expected zero launches, got %q", calls)
	}
}

func TestConvertRejectsBadFlags(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.Stub{})
	inputs := testsupport.WriteRawFiles(t, t.TempDir(), "a.nef")

	if _, _, err := runCLI(t, []string{"convert", "-o", env.outputDir, "--crop", "square", inputs[0]}, env.configPath); err == nil {
		t.Fatal("expected error for unknown crop mode")
	}
	if _, _, err := runCLI(t, []string{"convert", "-o", filepath.Join(env.baseDir, "missing"), inputs[0]}, env.configPath); err == nil {
		t.Fatal("expected error for missing output folder")
	}
	if _, _, err := runCLI(t, []string{"convert", inputs[0]}, env.configPath); err == nil {
		t.Fatal("expected error when --output is missing")
	}
	if calls := testsupport.ReadCalls(t, env.callLog); len(calls) != 0 {
		t.Fatalf("rejected invocations must not launch dnglab, got %q", calls)
	}
}

func TestConvertHelpListsModes(t *testing.T) {
	out, _, err := runCLI(t, []string{"convert", "--help"}, "")
	if err != nil {
		t.Fatalf("convert --help: %v", err)
	}
	requireContains(t, out, "Compression mode (lossless, uncompressed)")
	requireContains(t, out, "Crop mode (best, activearea, none, auto)")
}

func TestConvertUsesConfigDefaults(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.Stub{})
	env.cfg.Defaults.Compression = "uncompressed"
	env.cfg.Defaults.Crop = "none"
	env.cfg.Defaults.Recursive = true
	configPath := testsupport.WriteConfig(t, env.cfg)
	inputs := testsupport.WriteRawFiles(t, t.TempDir(), "a.nef")

	if _, _, err := runCLI(t, []string{"convert", "-o", env.outputDir, inputs[0]}, configPath); err != nil {
		t.Fatalf("convert: %v", err)
	}
	calls := testsupport.ReadCalls(t, env.callLog)
	if len(calls) != 1 || !strings.HasPrefix(calls[0], "convert --embed-raw true --compression uncompressed --crop none --recursive ") {
		t.Fatalf("config defaults not applied: %q", calls)
	}
}

func TestConvertWritesLogFile(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.Stub{})
	inputs := testsupport.WriteRawFiles(t, t.TempDir(), "a.nef")

	if _, _, err := runCLI(t, []string{"convert", "-o", env.outputDir, inputs[0]}, env.configPath); err != nil {
		t.Fatalf("convert: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(env.cfg.Paths.LogDir, "dngconv.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	requireContains(t, string(data), "Executing command")
	requireContains(t, string(data), "run_id=")
}

func TestOutcomeLabelNamesKillingSignal(t *testing.T) {
	killed := dnglab.Outcome{Input: "/in/a.nef", Kind: dnglab.OutcomeToolReportedError, ExitCode: -1, Signal: 9}
	if got := outcomeLabel(killed); got != "Killed (signal 9)" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := outcomeDetail(killed); got != "dnglab was killed by signal 9" {
		t.Fatalf("unexpected detail %q", got)
	}
	if got := newReportJSON(workflow.RunReport{Outcomes: []dnglab.Outcome{killed}}).Files[0].Signal; got != 9 {
		t.Fatalf("json report lost the signal: %d", got)
	}
}
