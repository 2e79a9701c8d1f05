package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// Stub describes the behaviour of a fake dnglab script.
type Stub struct {
	// Version is printed for --version. Empty prints "dnglab 0.0.0-test".
	Version string
	// FailOn lists input paths the stub rejects with exit status 1.
	FailOn []string
	// ExitCode, when non-zero, is returned for every conversion.
	ExitCode int
}

// WriteStubDNGLab writes an executable shell script named dnglab into dir.
// Every conversion appends its arguments as one line to the returned call
// log. Tests using it are skipped on Windows.
func WriteStubDNGLab(t testing.TB, dir string, stub Stub) (string, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub converter requires a POSIX shell")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir stub dir: %v", err)
	}
	version := stub.Version
	if version == "" {
		version = "dnglab 0.0.0-test"
	}
	callLog := filepath.Join(dir, "dnglab-calls.log")

	var script strings.Builder
	script.WriteString("#!/bin/sh\n")
	fmt.Fprintf(&script, "if [ \"$1\" = \"--version\" ]; then echo %q; exit 0; fi\n", version)
	fmt.Fprintf(&script, "echo \"$@\" >> %q\n", callLog)
	script.WriteString("input=\"\"; last=\"\"\n")
	script.WriteString("for arg in \"$@\"; do input=$last; last=$arg; done\n")
	for _, path := range stub.FailOn {
		fmt.Fprintf(&script, "if [ \"$input\" = %q ]; then echo \"unsupported file: $input\" >&2; exit 1; fi\n", path)
	}
	if stub.ExitCode != 0 {
		fmt.Fprintf(&script, "echo \"stub failure\" >&2\nexit %d\n", stub.ExitCode)
	}
	script.WriteString("exit 0\n")

	bin := filepath.Join(dir, "dnglab")
	if err := os.WriteFile(bin, []byte(script.String()), 0o755); err != nil {
		t.Fatalf("write stub dnglab: %v", err)
	}
	return bin, callLog
}

// ReadCalls returns the argument lines recorded by a stub converter.
func ReadCalls(t testing.TB, callLog string) []string {
	t.Helper()

	data, err := os.ReadFile(callLog)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("read stub call log: %v", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
