// Package logging builds the zap logger used by the patterns command.
package logging

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var (
	// ErrInvalidLevel level is not a zap level name
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrInvalidFormat format is neither console nor json
	ErrInvalidFormat = errors.New("invalid log format")
)

// Config configures the logger.
type Config struct {
	// Level is one of debug, info, warn, error.
	Level string `koanf:"level"`
	// Format is console or json.
	Format string `koanf:"format"`
}

// NewDefaultConfig returns info level console logging.
func NewDefaultConfig() Config {
	return Config{Level: "info", Format: FormatConsole}
}

func (c Config) Validate() error {
	var errs []error
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLevel, c.Level))
	}
	if c.Format != FormatConsole && c.Format != FormatJSON {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format))
	}
	return errors.Join(errs...)
}

// New returns a logger writing to out.
func New(cfg Config, out io.Writer) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	level, _ := zapcore.ParseLevel(cfg.Level)
	core := zapcore.NewCore(newEncoder(cfg.Format), zapcore.AddSync(out), level)
	return zap.New(core), nil
}

func newEncoder(format string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == FormatConsole {
		return zapcore.NewConsoleEncoder(encoderCfg)
	}
	return zapcore.NewJSONEncoder(encoderCfg)
}
