package logsvc

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/trezcool/gradebook/core"
)

const (
	levelDebug = iota
	levelInfo
	levelWarn
	levelError
	levelFatal
)

var levels = map[string]int{
	"debug":   levelDebug,
	"info":    levelInfo,
	"warn":    levelWarn,
	"warning": levelWarn,
	"error":   levelError,
	"fatal":   levelFatal,
}

func parseLevel(s string) int {
	if lvl, ok := levels[core.CleanString(s, true /* lower */)]; ok {
		return lvl
	}
	return levelInfo
}

// StdLogger writes leveled messages through a *log.Logger.
type StdLogger struct {
	std   *log.Logger
	level int
	exit  func(v ...interface{}) // log.Logger.Fatal; mockable
}

var _ core.Logger = (*StdLogger)(nil)

func NewStdLogger(std *log.Logger, level string) *StdLogger {
	return &StdLogger{std: std, level: parseLevel(level), exit: std.Fatal}
}

// format renders `args` after msg, extras maps are printed as sorted key=value pairs.
func format(lvl, msg string, args []interface{}) string {
	b := new(strings.Builder)
	b.WriteString(lvl)
	b.WriteString(" ")
	b.WriteString(msg)
	for _, arg := range args {
		switch a := arg.(type) {
		case map[string]interface{}:
			keys := make([]string, 0, len(a))
			for k := range a {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				b.WriteString(" ")
				b.WriteString(k)
				b.WriteString("=")
				b.WriteString(fmt.Sprint(a[k]))
			}
		default:
			b.WriteString(" | ")
			b.WriteString(fmt.Sprint(a))
		}
	}
	return b.String()
}

func (l *StdLogger) print(lvl int, name, msg string, args []interface{}) {
	if lvl < l.level {
		return
	}
	_ = l.std.Output(3, format(name, msg, args))
}

func (l *StdLogger) Debug(msg string, args ...interface{}) { l.print(levelDebug, "DEBUG", msg, args) }
func (l *StdLogger) Info(msg string, args ...interface{})  { l.print(levelInfo, "INFO", msg, args) }
func (l *StdLogger) Warn(msg string, args ...interface{})  { l.print(levelWarn, "WARN", msg, args) }
func (l *StdLogger) Error(msg string, args ...interface{}) { l.print(levelError, "ERROR", msg, args) }

func (l *StdLogger) Fatal(msg string, args ...interface{}) {
	l.exit(format("FATAL", msg, args))
}
