package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

var (
	levelNames = map[Level]string{
		DEBUG: "DEBUG",
		INFO:  "INFO",
		WARN:  "WARN",
		ERROR: "ERROR",
		FATAL: "FATAL",
	}

	levelColors = map[Level]string{
		DEBUG: "\033[36m", // Cyan
		INFO:  "\033[32m", // Green
		WARN:  "\033[33m", // Yellow
		ERROR: "\033[31m", // Red
		FATAL: "\033[35m", // Magenta
	}

	reset = "\033[0m"

	// Shared so every component logger can be redirected at once, e.g. when
	// the TUI takes over the terminal.
	outMu     sync.Mutex
	sharedOut io.Writer = os.Stdout
)

type Logger struct {
	level     Level
	out       io.Writer
	component string
	useColors bool
	showTime  bool
}

// New returns a logger tagged with the given component name. Level and color
// output come from LOG_LEVEL and LOG_COLORS.
func New(component string) *Logger {
	return &Logger{
		level:     ParseLevel(os.Getenv("LOG_LEVEL")),
		component: component,
		useColors: os.Getenv("LOG_COLORS") != "false",
		showTime:  true,
	}
}

// ParseLevel maps a level name to a Level, defaulting to INFO.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG
	case "WARN":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return INFO
	}
}

// SetOutput redirects every logger that has no output of its own.
func SetOutput(w io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	sharedOut = w
}

// WithOutput returns a copy of the logger writing to w without colors.
func (l *Logger) WithOutput(w io.Writer) *Logger {
	cp := *l
	cp.out = w
	cp.useColors = false
	return &cp
}

// WithLevel returns a copy of the logger with a different minimum level.
func (l *Logger) WithLevel(level Level) *Logger {
	cp := *l
	cp.level = level
	return &cp
}

// Named returns a child logger whose component is "parent/name".
func (l *Logger) Named(name string) *Logger {
	cp := *l
	if cp.component == "" {
		cp.component = name
	} else {
		cp.component = cp.component + "/" + name
	}
	return &cp
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	var buf strings.Builder

	if l.showTime {
		buf.WriteString(time.Now().Format("15:04:05"))
		buf.WriteString(" ")
	}

	if l.useColors {
		buf.WriteString(levelColors[level])
	}
	buf.WriteString(fmt.Sprintf("%-5s", levelNames[level]))
	if l.useColors {
		buf.WriteString(reset)
	}
	buf.WriteString(" ")

	if l.component != "" {
		if l.useColors {
			buf.WriteString("\033[90m") // Gray
		}
		buf.WriteString("[")
		buf.WriteString(l.component)
		buf.WriteString("]")
		if l.useColors {
			buf.WriteString(reset)
		}
		buf.WriteString(" ")
	}

	buf.WriteString(fmt.Sprintf(format, args...))

	outMu.Lock()
	out := l.out
	if out == nil {
		out = sharedOut
	}
	fmt.Fprintln(out, buf.String())
	outMu.Unlock()

	if level == FATAL {
		os.Exit(1)
	}
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(DEBUG, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.log(INFO, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(WARN, format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.log(ERROR, format, args...)
}

func (l *Logger) Fatal(format string, args ...interface{}) {
	l.log(FATAL, format, args...)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{level: FATAL + 1, out: io.Discard}
}
