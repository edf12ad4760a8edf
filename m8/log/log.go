package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

type LogLevel int

const (
	LogLevel_None LogLevel = iota
	LogLevel_Warn
	LogLevel_Info
	LogLevel_Debug
)

func (l LogLevel) String() string {
	switch l {
	case LogLevel_None:
		return "none"
	case LogLevel_Warn:
		return "warn"
	case LogLevel_Info:
		return "info"
	case LogLevel_Debug:
		return "debug"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel は、設定値の文字列をログレベルに変換します。
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "silent":
		return LogLevel_None, nil
	case "warn", "warning", "quiet":
		return LogLevel_Warn, nil
	case "info", "":
		return LogLevel_Info, nil
	case "debug":
		return LogLevel_Debug, nil
	}
	return LogLevel_Info, errors.Errorf("unknown log level %q", s)
}

var Level = LogLevel_Info

var output io.Writer = os.Stderr

// SetOutput replaces the destination of all log messages and returns the previous one.
func SetOutput(w io.Writer) io.Writer {
	prev := output
	output = w
	return prev
}

var cyan = color.New(color.FgCyan)
var yellow = color.New(color.FgYellow)

func Warnf(f string, args ...interface{}) {
	if LogLevel_Warn <= Level {
		yellow.Fprintf(output, "[WARNING] "+f+"\n", args...)
	}
}

func Infof(f string, args ...interface{}) {
	if LogLevel_Info <= Level {
		fmt.Fprintf(output, f+"\n", args...)
	}
}

var indent int32

func Debugf(f string, args ...interface{}) {
	if LogLevel_Debug <= Level {
		n := int(atomic.LoadInt32(&indent))
		if n < 0 {
			n = 0
		}
		cyan.Fprintf(output, strings.Repeat("  ", n)+f+"\n", args...)
	}
}

func Enter() {
	atomic.AddInt32(&indent, 1)
}

func Leave() {
	atomic.AddInt32(&indent, -1)
}
