package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"dngconv/internal/preflight"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"

	statusLabelWidth = 18
	statusIndent     = "  "
)

var statusKinds = map[statusKind]struct{ label, color string }{
	statusInfo:  {"INFO", ansiBlue},
	statusOK:    {"OK", ansiGreen},
	statusWarn:  {"WARN", ansiYellow},
	statusError: {"ERROR", ansiRed},
}

// statusWriter prints aligned "[KIND] message" lines, colored only when out
// is a terminal.
type statusWriter struct {
	out      io.Writer
	colorize bool
}

func newStatusWriter(out io.Writer) statusWriter {
	return statusWriter{out: out, colorize: shouldColorize(out)}
}

func (w statusWriter) header(title string) {
	title = fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(title))
	fmt.Fprintln(w.out, w.paint(ansiBlue, title))
	fmt.Fprintln(w.out, w.paint(ansiBlue, rule))
}

func (w statusWriter) line(label string, kind statusKind, message string) {
	fmt.Fprintln(w.out, formatStatusLine(label, kind, message, w.colorize))
}

func (w statusWriter) results(results []preflight.Result) {
	for _, r := range results {
		w.line(r.Name, resultKind(r), r.Detail)
	}
}

func (w statusWriter) paint(color, s string) string {
	if !w.colorize {
		return s
	}
	return color + s + ansiReset
}

func formatStatusLine(label string, kind statusKind, message string, colorize bool) string {
	meta, ok := statusKinds[kind]
	if !ok {
		meta = statusKinds[statusInfo]
	}
	text := "[" + meta.label + "]"
	if message != "" {
		text += " " + message
	}
	line := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", text)
	if colorize {
		return meta.color + line + ansiReset
	}
	return line
}

func resultKind(r preflight.Result) statusKind {
	if r.Passed {
		return statusOK
	}
	return statusError
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
