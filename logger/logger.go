package logger

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// LayersEnv names the environment variable a parent process sets to tell
// a child invocation how deeply it is nested.
const LayersEnv = "GREATHELM_EMBEDDED_LAYERS"

// Marker colors (ANSI 256-color palette).
const (
	bracketColor = termenv.ANSI256Color(240)
	childColor   = termenv.ANSI256Color(60)
	errorColor   = termenv.ANSI256Color(210)
)

// resetSeq ends the ERROR marker so the message is never colorized.
const resetSeq = termenv.CSI + termenv.BoldSeq + ";" + termenv.ResetSeq + "m"

var (
	childMarker = marker("CHILD", childColor)
	errorMarker = marker("ERROR", errorColor) + resetSeq
)

// Dependency injection point for testing output.
var outStdout io.Writer = os.Stdout

// Config defines options for New.
type Config struct {
	// Layers is the nesting depth; each layer adds one [CHILD] marker.
	// Values <= 0 add none.
	// Default: 0
	Layers int
	// Out receives formatted lines.
	// Default: nil (standard output)
	Out io.Writer
}

// Logger writes ERROR lines prefixed with one CHILD marker per layer.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	layers int
}

// New returns a Logger configured by config.
func New(config Config) *Logger {
	out := config.Out
	if out == nil {
		out = outStdout
	}
	return &Logger{out: out, layers: config.Layers}
}

// Error writes msg as a single ERROR line. Markers are streamed through a
// buffered writer, so memory stays bounded however deep the nesting is.
// Thread-safe for concurrent use.
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	w := bufio.NewWriter(l.out)
	// Write errors are dropped, as with log.Logger.
	_ = writeLine(w, l.layers, msg)
	_ = w.Flush()
}

// Errorf writes a message formatted with fmt.Sprintf as a single ERROR line.
// Thread-safe for concurrent use.
func (l *Logger) Errorf(format string, v ...any) {
	l.Error(fmt.Sprintf(format, v...))
}

// Format renders one newline-terminated line: layers CHILD markers, the
// ERROR marker, a style reset and msg verbatim. The whole line is held in
// memory; use a Logger to write deep nesting.
func Format(layers int, msg string) string {
	var b strings.Builder
	_ = writeLine(&b, layers, msg)
	return b.String()
}

func writeLine(w io.StringWriter, layers int, msg string) error {
	for i := 0; i < layers; i++ {
		if _, err := w.WriteString(childMarker); err != nil {
			return err
		}
	}
	if _, err := w.WriteString(errorMarker); err != nil {
		return err
	}
	if _, err := w.WriteString(msg); err != nil {
		return err
	}
	_, err := w.WriteString("\n")
	return err
}

// ParseLayers converts s the way C atoi does: leading whitespace is skipped,
// an optional sign is accepted and the longest run of decimal digits is
// used. Input without digits, or digits that overflow int, yields 0.
func ParseLayers(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// marker builds a self-contained "[label] " tag: bracket color, label color,
// label, bracket color again. No reset, so repeated markers chain.
func marker(label string, accent termenv.ANSI256Color) string {
	return foreground(bracketColor) + "[" +
		foreground(accent) + label +
		foreground(bracketColor) + "] "
}

func foreground(c termenv.ANSI256Color) string {
	return termenv.CSI + c.Sequence(false) + "m"
}
