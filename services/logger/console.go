package logsvc

import (
	"fmt"
	"io"
	"io/ioutil"
	"sort"
	"strings"

	"github.com/labstack/gommon/log"

	"github.com/trezcool/courseadmin/core"
)

var levels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"error": log.ERROR,
	"off":   log.OFF,
}

// NewStdLogger returns a gommon logger writing to w at the named level (info if unknown).
func NewStdLogger(prefix string, w io.Writer, level string) *log.Logger {
	std := log.New(prefix)
	std.SetOutput(w)
	std.SetHeader("${time_rfc3339} ${level} ${prefix}")
	lvl, ok := levels[core.CleanString(level, true /* lower */)]
	if !ok {
		lvl = log.INFO
	}
	std.SetLevel(lvl)
	return std
}

type ConsoleLogger struct {
	std   *log.Logger
	debug bool
}

var _ core.Logger = (*ConsoleLogger)(nil)

func NewConsoleLogger(std *log.Logger, conf *core.Config) *ConsoleLogger {
	return &ConsoleLogger{std: std, debug: conf.Debug}
}

// NewConsoleLoggerMock discards everything.
func NewConsoleLoggerMock() *ConsoleLogger {
	return &ConsoleLogger{std: NewStdLogger("test", ioutil.Discard, "off")}
}

// format renders msg and its context on a single line.
// expected args: error, map[string]interface{} or anything printable.
func format(msg string, args []interface{}, verbose bool) string {
	var b strings.Builder
	b.WriteString(msg)
	for _, arg := range args {
		switch a := arg.(type) {
		case error:
			if verbose {
				fmt.Fprintf(&b, " error=%+v", a)
			} else {
				fmt.Fprintf(&b, " error=%q", a.Error())
			}
		case map[string]interface{}:
			keys := make([]string, 0, len(a))
			for k := range a {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(&b, " %s=%v", k, a[k])
			}
		default:
			fmt.Fprintf(&b, " %+v", a)
		}
	}
	return b.String()
}

func (l ConsoleLogger) Debug(msg string, args ...interface{}) {
	l.std.Debug(format(msg, args, l.debug))
}

func (l ConsoleLogger) Info(msg string, args ...interface{}) {
	l.std.Info(format(msg, args, l.debug))
}

func (l ConsoleLogger) Warn(msg string, args ...interface{}) {
	l.std.Warn(format(msg, args, l.debug))
}

func (l ConsoleLogger) Error(msg string, args ...interface{}) {
	l.std.Error(format(msg, args, l.debug))
}

func (l ConsoleLogger) Fatal(msg string, args ...interface{}) {
	l.std.Fatal(format(msg, args, l.debug))
}
