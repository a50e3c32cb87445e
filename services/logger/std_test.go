package logsvc

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/gradebook/core"
)

func newTestLogger(level string) (*StdLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewStdLogger(log.New(&buf, "", 0), level), &buf
}

func TestStdLogger_levels(t *testing.T) {
	tests := []struct {
		level string
		want  []string
	}{
		{level: "debug", want: []string{"DEBUG d", "INFO i", "WARN w", "ERROR e"}},
		{level: "info", want: []string{"INFO i", "WARN w", "ERROR e"}},
		{level: "WARNING", want: []string{"WARN w", "ERROR e"}},
		{level: "error", want: []string{"ERROR e"}},
		{level: "lol", want: []string{"INFO i", "WARN w", "ERROR e"}},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, buf := newTestLogger(tt.level)
			l.Debug("d")
			l.Info("i")
			l.Warn("w")
			l.Error("e")
			got := strings.Split(strings.TrimSpace(buf.String()), "\n")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStdLogger_args(t *testing.T) {
	l, buf := newTestLogger("info")
	l.Warn("command failed",
		errors.New("boom"),
		map[string]interface{}{"course": "math", "command": "add jane"},
	)
	assert.Equal(t, "WARN command failed | boom command=add jane course=math\n", buf.String())
}

func TestStdLogger_Fatal(t *testing.T) {
	l, buf := newTestLogger("error")
	var exited []interface{}
	l.exit = func(v ...interface{}) {
		exited = v
		_ = l.std.Output(2, fmt.Sprint(v...))
	}

	l.Fatal("opening course", core.ErrDuplicate)
	assert.Equal(t, []interface{}{"FATAL opening course | already exists"}, exited)
	assert.Equal(t, "FATAL opening course | already exists\n", buf.String())
}

func TestRollbarLogger_mirrorsStd(t *testing.T) {
	std, buf := newTestLogger("debug")
	l := NewRollbarLogger(std, &core.Config{Env: "TEST", TestMode: true})

	l.Info("course opened", map[string]interface{}{"course": "math"})
	l.Error("reading commands", errors.New("EOF"))
	assert.Equal(t, "INFO course opened course=math\nERROR reading commands | EOF\n", buf.String())

	got := l.prepare("msg", []interface{}{errors.New("x"), 42, map[string]interface{}{"k": "v"}, "str"})
	assert.Len(t, got, 3)
	assert.Equal(t, "msg", got[0])
}
