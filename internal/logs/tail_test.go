package logs_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"

	"dngconv/internal/logs"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dngconv.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func appendLog(t *testing.T, path, content string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("append log: %v", err)
	}
}

func TestLastReturnsNewestLines(t *testing.T) {
	path := writeLog(t, "a\nb\nc\n")

	page, err := logs.Last(path, 2, logs.Filter{})
	if err != nil {
		t.Fatalf("last: %v", err)
	}
	if !slices.Equal(page.Lines, []string{"b", "c"}) {
		t.Fatalf("unexpected lines %#v", page.Lines)
	}
	if page.Offset != 6 {
		t.Fatalf("offset = %d, want 6", page.Offset)
	}
}

func TestLastFiltersByRunID(t *testing.T) {
	path := writeLog(t, "run_id=r1 start\nrun_id=r2 start\nrun_id=r1 done\nrun_id=r2 done\n")

	page, err := logs.Last(path, 10, logs.Filter{RunID: "r1"})
	if err != nil {
		t.Fatalf("last: %v", err)
	}
	want := []string{"run_id=r1 start", "run_id=r1 done"}
	if !slices.Equal(page.Lines, want) {
		t.Fatalf("unexpected lines %#v, want %#v", page.Lines, want)
	}
}

func TestLastMissingFileIsEmpty(t *testing.T) {
	page, err := logs.Last(filepath.Join(t.TempDir(), "absent.log"), 5, logs.Filter{})
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(page.Lines) != 0 || page.Offset != 0 {
		t.Fatalf("unexpected page %+v", page)
	}
}

func TestLastRejectsDirectory(t *testing.T) {
	if _, err := logs.Last(t.TempDir(), 5, logs.Filter{}); err == nil {
		t.Fatal("expected error for directory path")
	}
}

func TestSinceLeavesPartialLine(t *testing.T) {
	path := writeLog(t, "one\ntw")

	page, err := logs.Since(path, 0, logs.Filter{})
	if err != nil {
		t.Fatalf("since: %v", err)
	}
	if !slices.Equal(page.Lines, []string{"one"}) || page.Offset != 4 {
		t.Fatalf("unexpected page %+v", page)
	}

	appendLog(t, path, "o\n")
	page, err = logs.Since(path, page.Offset, logs.Filter{})
	if err != nil {
		t.Fatalf("since: %v", err)
	}
	if !slices.Equal(page.Lines, []string{"two"}) {
		t.Fatalf("unexpected lines %#v", page.Lines)
	}
}

func TestSinceRestartsAfterTruncation(t *testing.T) {
	path := writeLog(t, "x\n")

	page, err := logs.Since(path, 500, logs.Filter{})
	if err != nil {
		t.Fatalf("since: %v", err)
	}
	if !slices.Equal(page.Lines, []string{"x"}) {
		t.Fatalf("unexpected lines %#v", page.Lines)
	}
}

func TestFollowEmitsAppendedLines(t *testing.T) {
	path := writeLog(t, "start\n")
	start, err := logs.Last(path, 0, logs.Filter{})
	if err != nil {
		t.Fatalf("last: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var (
		mu  sync.Mutex
		got []string
	)
	done := make(chan error, 1)
	go func() {
		done <- logs.Follow(ctx, path, start.Offset, 10*time.Millisecond, logs.Filter{}, func(line string) {
			mu.Lock()
			got = append(got, line)
			n := len(got)
			mu.Unlock()
			if n == 1 {
				cancel()
			}
		})
	}()

	appendLog(t, path, "later\n")

	if err := <-done; err != nil {
		t.Fatalf("follow: %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if !slices.Equal(got, []string{"later"}) {
		t.Fatalf("unexpected lines %#v", got)
	}
}
