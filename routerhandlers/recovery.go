package routerhandlers

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/vitalvas/waypoint/router"
)

// ErrPanicRecovered wraps the value of a panic recovered by the Recovery
// node.
var ErrPanicRecovered = errors.New("routerhandlers: panic recovered")

// RecoveryConfig configures the Recovery node.
type RecoveryConfig struct {
	// Logger receives one error entry, with stack trace, per recovered
	// panic. When nil, nothing is logged.
	Logger *zap.Logger
}

type recovery struct {
	router.Link
	logger *zap.Logger
}

// Recovery returns a node that recovers from panics raised further down the
// pipeline and turns them into an error wrapping ErrPanicRecovered. Over
// HTTP the router answers that error with 500 Internal Server Error.
//
// Add it last so it becomes the head of the chain and covers every other
// node.
func Recovery(cfg RecoveryConfig) router.Middleware {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &recovery{logger: logger}
}

func (m *recovery) Call(c *router.Context) (err error) {
	defer func() {
		if v := recover(); v != nil {
			m.logger.Error("panic recovered",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Any("panic", v),
				zap.Stack("stack"))

			err = fmt.Errorf("%w: %v", ErrPanicRecovered, v)
		}
	}()

	return m.CallNext(c)
}
