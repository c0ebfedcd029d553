package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/go-leo/patterns/middleware"
	"go.uber.org/zap"
)

// Middleware wraps the run of a single demo.
type Middleware = middleware.Middleware[Demo, struct{}]

type invoker = middleware.Invoker[Demo, struct{}]

// Logging logs the start and the end of every demo run. A nil logger logs
// nothing.
func Logging(logger *zap.Logger) Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, demo Demo, invoke invoker) (struct{}, error) {
		logger.Debug("demo started", zap.String("demo", demo.Name()))
		start := time.Now()
		resp, err := invoke(ctx, demo)
		fields := []zap.Field{zap.String("demo", demo.Name()), zap.Duration("duration", time.Since(start))}
		if err != nil {
			logger.Error("demo failed", append(fields, zap.Error(err))...)
			return resp, err
		}
		logger.Info("demo finished", fields...)
		return resp, nil
	}
}

// Recover turns a panic inside a demo into an ErrDemoPanic error.
func Recover() Middleware {
	return func(ctx context.Context, demo Demo, invoke invoker) (resp struct{}, err error) {
		defer func() {
			if p := recover(); p != nil {
				err = fmt.Errorf("%w: %v", ErrDemoPanic, p)
			}
		}()
		return invoke(ctx, demo)
	}
}
