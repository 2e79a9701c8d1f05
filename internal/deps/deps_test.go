package deps

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func writeScript(t *testing.T, dir, name, body string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), mode); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
}

func TestCheckLookupOnly(t *testing.T) {
	skipOnWindows(t)
	present := writeScript(t, t.TempDir(), "present", "exit 0\n", 0o755)

	if status := Check(context.Background(), Requirement{Name: "Present", Command: present}); !status.Available || status.Detail != "" {
		t.Fatalf("expected present binary to be available, got %#v", status)
	}
	if status := Check(context.Background(), Requirement{Name: "Missing", Command: "clearly-not-present-binary"}); status.Available || status.Detail == "" {
		t.Fatalf("expected missing binary to be unavailable with detail, got %#v", status)
	}
	if status := Check(context.Background(), Requirement{Name: "Blank", Command: "  "}); status.Detail != "command not configured" {
		t.Fatalf("unexpected detail for blank command: %q", status.Detail)
	}
}

func TestCheckCapturesVersionLine(t *testing.T) {
	skipOnWindows(t)
	bin := writeScript(t, t.TempDir(), "dnglab", "echo\necho 'dnglab 0.6.3'\necho extra\n", 0o755)

	status := Check(context.Background(), Requirement{Name: "dnglab", Command: bin, VersionArgs: []string{"--version"}})
	if !status.Available {
		t.Fatalf("expected available, got detail %q", status.Detail)
	}
	if status.Version != "dnglab 0.6.3" {
		t.Fatalf("unexpected version %q", status.Version)
	}
}

func TestCheckTreatsNonZeroVersionExitAsInstalled(t *testing.T) {
	skipOnWindows(t)
	bin := writeScript(t, t.TempDir(), "dnglab", "echo broken >&2\nexit 2\n", 0o755)

	status := Check(context.Background(), Requirement{Name: "dnglab", Command: bin, VersionArgs: []string{"--version"}})
	if !status.Available {
		t.Fatalf("expected launched binary to count as available, got %#v", status)
	}
}

func TestCheckReportsPermissionDenied(t *testing.T) {
	skipOnWindows(t)
	if os.Geteuid() == 0 {
		t.Skip("root ignores execute permission bits")
	}
	bin := writeScript(t, t.TempDir(), "dnglab", "exit 0\n", 0o644)

	status := Check(context.Background(), Requirement{Name: "dnglab", Command: bin, VersionArgs: []string{"--version"}})
	if status.Available {
		t.Fatal("expected non-executable binary to be unavailable")
	}
	if !strings.Contains(status.Detail, "not executable") {
		t.Fatalf("unexpected detail %q", status.Detail)
	}
}

type stubProber struct {
	output string
	err    error
	calls  int
	args   []string
}

func (s *stubProber) Probe(ctx context.Context, command string, args []string) (string, error) {
	s.calls++
	s.args = append([]string{command}, args...)
	return s.output, s.err
}

func TestCheckUsesInjectedProber(t *testing.T) {
	prober := &stubProber{err: &exec.Error{Name: "dnglab", Err: exec.ErrNotFound}}
	status := Check(context.Background(), Requirement{Name: "dnglab", Command: "dnglab", VersionArgs: []string{"--version"}}, WithProber(prober))
	if status.Available {
		t.Fatal("expected unavailable")
	}
	if status.Detail != `binary "dnglab" not found` {
		t.Fatalf("unexpected detail %q", status.Detail)
	}
	if prober.calls != 1 || strings.Join(prober.args, " ") != "dnglab --version" {
		t.Fatalf("unexpected probe %v (calls=%d)", prober.args, prober.calls)
	}
}

type blockingProber struct{}

func (blockingProber) Probe(ctx context.Context, command string, args []string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestCheckTimesOut(t *testing.T) {
	status := Check(context.Background(), Requirement{Name: "dnglab", Command: "dnglab", VersionArgs: []string{"--version"}},
		WithProber(blockingProber{}), WithTimeout(20*time.Millisecond))
	if status.Available {
		t.Fatal("expected timeout to mark binary unavailable")
	}
	if !strings.Contains(status.Detail, "did not answer") {
		t.Fatalf("unexpected detail %q", status.Detail)
	}
}

func TestDescribeLaunchError(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{os.ErrNotExist, `binary "x" not found`},
		{os.ErrPermission, `binary "x" is not executable`},
		{errors.New("boom"), `launch "x": boom`},
	}
	for _, tc := range cases {
		if got := DescribeLaunchError("x", tc.err); got != tc.want {
			t.Fatalf("DescribeLaunchError(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
