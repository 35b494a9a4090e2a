package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a leveled logger stamping each line "15:04:05.00".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long an operation took, e.g. "Rendered svg (1.234s)".
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext falls back to log.Default when ctx carries no logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks turns observability events into debug log lines.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnSearchStart(algorithm string, source, target, nodes int) {
	h.logger.Debug("search", "algo", algorithm, "from", source, "to", target, "nodes", nodes)
}

func (h logHooks) OnSearchComplete(algorithm string, expanded int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("search failed", "algo", algorithm, "expanded", expanded, "elapsed", d, "err", err)
		return
	}
	h.logger.Debug("search done", "algo", algorithm, "expanded", expanded, "elapsed", d)
}

func (h logHooks) OnRender(kind string, units int, d time.Duration, err error) {
	h.logger.Debug("render", "kind", kind, "units", units, "elapsed", d, "err", err)
}

func (h logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
