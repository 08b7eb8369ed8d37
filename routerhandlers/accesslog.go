package routerhandlers

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vitalvas/waypoint/router"
)

// AccessLogConfig configures the AccessLog node.
type AccessLogConfig struct {
	// Logger receives one entry per dispatch. Required; a nil logger
	// discards entries.
	Logger *zap.Logger

	// Level is the level of successful dispatches. Failed dispatches are
	// always logged at error level. Defaults to info.
	Level zapcore.Level

	// Now overrides the clock, for tests.
	Now func() time.Time
}

type accessLog struct {
	router.Link
	logger *zap.Logger
	level  zapcore.Level
	now    func() time.Time
}

// AccessLog returns a node that logs every dispatch passing through it with
// the method, path, response status, request ID and duration. The entry is
// written after the rest of the pipeline has returned.
func AccessLog(cfg AccessLogConfig) router.Middleware {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &accessLog{logger: logger, level: cfg.Level, now: now}
}

func (m *accessLog) Call(c *router.Context) error {
	start := m.now()

	err := m.CallNext(c)

	fields := []zap.Field{
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", router.ResponseStatus(c)),
		zap.Duration("duration", m.now().Sub(start)),
	}
	if id := RequestIDOf(c); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if c.Request != nil {
		fields = append(fields, zap.String("remote_addr", c.Request.RemoteAddr))
	}

	if err != nil {
		m.logger.Error("request failed", append(fields, zap.Error(err))...)
		return err
	}

	m.logger.Log(m.level, "request", fields...)

	return nil
}
