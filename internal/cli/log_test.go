package cli

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{"status at info", log.InfoLevel, func(l *log.Logger) { l.Info("Rendered svg") }, true},
		{"hook event at info", log.InfoLevel, func(l *log.Logger) { l.Debug("cache hit") }, false},
		{"hook event at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("cache hit") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("logged = %v, want %v (%q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("Serving")
	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).Match(buf.Bytes()) {
		t.Errorf("line %q does not start with a HH:MM:SS.cc timestamp", buf.String())
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.InfoLevel))
	p.done("Rendered svg")

	if !regexp.MustCompile(`Rendered svg \(\d+(\.\d+)?m?s\)`).Match(buf.Bytes()) {
		t.Errorf("progress line %q lacks the elapsed time", buf.String())
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("a bare context should yield log.Default()")
	}

	l := newLogger(&bytes.Buffer{}, log.DebugLevel)
	if got := loggerFromContext(withLogger(context.Background(), l)); got != l {
		t.Error("loggerFromContext did not return the attached logger")
	}
}

func TestLogHooksSearchFailure(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{logger: newLogger(&buf, log.DebugLevel)}
	h.OnSearchComplete("astar", 3, time.Millisecond, errors.New("no path from 0 to 8"))

	for _, want := range []string{"search failed", "no path from 0 to 8"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("log output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{logger: newLogger(&buf, log.DebugLevel)}

	h.OnSearchStart("dijkstra", 0, 8, 9)
	h.OnSearchComplete("dijkstra", 9, time.Millisecond, nil)
	h.OnRender("frames", 6, time.Millisecond, nil)
	h.OnCacheHit(context.Background(), "frames")
	h.OnCacheMiss(context.Background(), "frames")
	h.OnCacheSet(context.Background(), "frames", 42)

	for _, want := range []string{"search", "search done", "render", "cache hit", "cache miss", "cache set"} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Errorf("log output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{logger: newLogger(&buf, log.InfoLevel)}
	h.OnSearchStart("astar", 0, 1, 2)
	h.OnCacheMiss(context.Background(), "frames")
	if buf.Len() != 0 {
		t.Errorf("debug events logged at info level:\n%s", buf.String())
	}
}
