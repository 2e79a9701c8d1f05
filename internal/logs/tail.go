package logs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const maxLineBytes = 1024 * 1024

// Filter narrows which log lines are returned.
type Filter struct {
	// RunID keeps only lines written during that run.
	RunID string
}

func (f Filter) match(line string) bool {
	if f.RunID == "" {
		return true
	}
	return strings.Contains(line, f.RunID)
}

// Page is a batch of lines and the byte offset just past the last line read.
type Page struct {
	Lines  []string
	Offset int64
}

// Last returns up to limit of the newest matching lines. A missing file is an
// empty page, not an error. limit <= 0 returns no lines but still reports the
// end offset so callers can follow from there.
func Last(path string, limit int, filter Filter) (Page, error) {
	file, err := open(path)
	if err != nil || file == nil {
		return Page{}, err
	}
	defer file.Close()

	if limit <= 0 {
		end, err := file.Seek(0, io.SeekEnd)
		if err != nil {
			return Page{}, fmt.Errorf("seek log file: %w", err)
		}
		return Page{Offset: end}, nil
	}

	ring := make([]string, limit)
	count, next := 0, 0
	offset, err := scan(file, func(line string) {
		if !filter.match(line) {
			return
		}
		ring[next] = line
		next = (next + 1) % limit
		if count < limit {
			count++
		}
	})
	if err != nil {
		return Page{}, err
	}

	lines := make([]string, count)
	start := 0
	if count == limit {
		start = next
	}
	for i := range count {
		lines[i] = ring[(start+i)%limit]
	}
	return Page{Lines: lines, Offset: offset}, nil
}

// Since returns matching lines appended after offset. An offset past the end
// of the file (for example after truncation) restarts from the beginning.
func Since(path string, offset int64, filter Filter) (Page, error) {
	file, err := open(path)
	if err != nil || file == nil {
		return Page{}, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return Page{}, fmt.Errorf("stat log file: %w", err)
	}
	if offset < 0 || offset > info.Size() {
		offset = 0
	}
	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return Page{}, fmt.Errorf("seek log file: %w", err)
	}

	var lines []string
	read, err := scan(file, func(line string) {
		if filter.match(line) {
			lines = append(lines, line)
		}
	})
	if err != nil {
		return Page{}, err
	}
	return Page{Lines: lines, Offset: offset + read}, nil
}

// Follow polls path every interval and hands each new matching line to emit
// until ctx ends. It returns nil when ctx is cancelled.
func Follow(ctx context.Context, path string, offset int64, interval time.Duration, filter Filter, emit func(string)) error {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		page, err := Since(path, offset, filter)
		if err != nil {
			return err
		}
		for _, line := range page.Lines {
			emit(line)
		}
		offset = page.Offset

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func open(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat log file: %w", err)
	}
	if info.IsDir() {
		file.Close()
		return nil, fmt.Errorf("log path %q is a directory", path)
	}
	return file, nil
}

// scan feeds complete lines to fn and returns the number of bytes consumed.
// A trailing partial line is left for the next read.
func scan(r io.Reader, fn func(string)) (int64, error) {
	reader := bufio.NewReaderSize(r, 64*1024)
	var consumed int64
	for {
		line, err := reader.ReadString('\n')
		if err == nil {
			consumed += int64(len(line))
			if len(line) <= maxLineBytes {
				fn(strings.TrimRight(line, "\r\n"))
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return consumed, nil
		}
		return consumed, fmt.Errorf("read log file: %w", err)
	}
}
