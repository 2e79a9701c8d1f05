package dnglab

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

type recordingProber struct {
	output   string
	err      error
	commands []string
}

func (p *recordingProber) Probe(ctx context.Context, command string, args []string) (string, error) {
	p.commands = append(p.commands, command+" "+strings.Join(args, " "))
	return p.output, p.err
}

func TestLocatorResolvesPerPlatform(t *testing.T) {
	cases := []struct {
		goos    string
		binary  string
		want    string
		wantErr bool
	}{
		{goos: "darwin", want: DefaultDarwinPath},
		{goos: "linux", want: DefaultLinuxCommand},
		{goos: "windows", wantErr: true},
		{goos: "freebsd", wantErr: true},
		{goos: "windows", binary: `C:\tools\dnglab.exe`, want: `C:\tools\dnglab.exe`},
		{goos: "darwin", binary: "/opt/homebrew/bin/dnglab", want: "/opt/homebrew/bin/dnglab"},
	}
	for _, tc := range cases {
		loc := NewLocator(LocatorConfig{GOOS: tc.goos, Binary: tc.binary})
		got, err := loc.Resolve()
		if tc.wantErr {
			if !errors.Is(err, ErrUnsupportedPlatform) {
				t.Fatalf("%s: expected ErrUnsupportedPlatform, got %q %v", tc.goos, got, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("%s/%q: got %q %v, want %q", tc.goos, tc.binary, got, err, tc.want)
		}
	}
}

func TestLocatorUnsupportedPlatformSkipsProbe(t *testing.T) {
	prober := &recordingProber{}
	loc := NewLocator(LocatorConfig{GOOS: "plan9"}, WithProber(prober))

	availability := loc.Check(context.Background())
	if availability.Available {
		t.Fatal("expected unavailable on unsupported platform")
	}
	if len(prober.commands) != 0 {
		t.Fatalf("expected no probe, got %v", prober.commands)
	}
	if !strings.Contains(availability.Notice(), "You must first install dnglab") {
		t.Fatalf("unexpected notice %q", availability.Notice())
	}
}

func TestLocatorProbesVersion(t *testing.T) {
	prober := &recordingProber{output: "dnglab 0.6.3\n"}
	loc := NewLocator(LocatorConfig{GOOS: "darwin"}, WithProber(prober))

	availability := loc.Check(context.Background())
	if !availability.Available || availability.Version != "dnglab 0.6.3" || availability.Command != DefaultDarwinPath {
		t.Fatalf("unexpected availability %+v", availability)
	}
	if len(prober.commands) != 1 || prober.commands[0] != DefaultDarwinPath+" --version" {
		t.Fatalf("unexpected probes %v", prober.commands)
	}
	if availability.Notice() != "" {
		t.Fatalf("available tool must not produce a notice, got %q", availability.Notice())
	}
}

func TestLocatorReportsMissingBinary(t *testing.T) {
	prober := &recordingProber{err: &exec.Error{Name: "dnglab", Err: exec.ErrNotFound}}
	loc := NewLocator(LocatorConfig{GOOS: "linux"}, WithProber(prober))

	availability := loc.Check(context.Background())
	if availability.Available {
		t.Fatal("expected unavailable")
	}
	if !strings.Contains(availability.Notice(), `Binary "dnglab" not found.`) {
		t.Fatalf("unexpected notice %q", availability.Notice())
	}
}

func TestLocatorWithRealBinary(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
	bin := filepath.Join(t.TempDir(), "dnglab")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\necho 'dnglab 0.7.0'\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	availability := NewLocator(LocatorConfig{Binary: bin}).Check(context.Background())
	if !availability.Available || availability.Version != "dnglab 0.7.0" {
		t.Fatalf("unexpected availability %+v", availability)
	}

	missing := NewLocator(LocatorConfig{Binary: filepath.Join(t.TempDir(), "absent")}).Check(context.Background())
	if missing.Available {
		t.Fatal("expected missing binary to be unavailable")
	}
}
