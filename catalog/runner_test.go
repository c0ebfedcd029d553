package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func printer(text string) RunFunc {
	return func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintln(w, text)
		return err
	}
}

func newTestRegistry() *Registry {
	registry := NewRegistry()
	registry.MustRegister(
		New("one", printer("1")),
		New("two", printer("2")),
	)
	return registry
}

func TestRunner_Run(t *testing.T) {
	runner := &Runner{Registry: newTestRegistry()}

	var buf bytes.Buffer
	require.NoError(t, runner.Run(context.Background(), &buf))
	assert.Equal(t, "== one ==\n1\n\n== two ==\n2\n", buf.String())

	buf.Reset()
	require.NoError(t, runner.Run(context.Background(), &buf, "two", "one"))
	assert.Equal(t, "== two ==\n2\n\n== one ==\n1\n", buf.String())
}

func TestRunner_UnknownDemoRunsNothing(t *testing.T) {
	runner := &Runner{Registry: newTestRegistry()}
	var buf bytes.Buffer
	err := runner.Run(context.Background(), &buf, "one", "three")
	assert.ErrorIs(t, err, ErrDemoNotFound)
	assert.Empty(t, buf.String())
}

func TestRunner_StopsAtFirstError(t *testing.T) {
	errBroken := errors.New("broken")
	registry := newTestRegistry()
	registry.MustRegister(New("broken", func(context.Context, io.Writer) error { return errBroken }))
	runner := &Runner{Registry: registry}

	var buf bytes.Buffer
	err := runner.Run(context.Background(), &buf, "broken", "one")
	assert.ErrorIs(t, err, errBroken)
	assert.ErrorContains(t, err, "run broken")
	assert.NotContains(t, buf.String(), "== one ==")
}

func TestRunner_Canceled(t *testing.T) {
	runner := &Runner{Registry: newTestRegistry()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	assert.ErrorIs(t, runner.Run(ctx, &buf), context.Canceled)
	assert.Empty(t, buf.String())
}

func TestRunner_Recover(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(New("panics", func(context.Context, io.Writer) error { panic("boom") }))
	runner := &Runner{Registry: registry, Middlewares: []Middleware{Recover()}}

	err := runner.Run(context.Background(), io.Discard)
	assert.ErrorIs(t, err, ErrDemoPanic)
	assert.ErrorContains(t, err, "boom")
}

func TestRunner_Logging(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	registry := newTestRegistry()
	registry.MustRegister(New("fails", func(context.Context, io.Writer) error { return errors.New("nope") }))
	runner := &Runner{Registry: registry, Middlewares: []Middleware{Logging(zap.New(core)), Recover()}}

	require.NoError(t, runner.Run(context.Background(), io.Discard, "one"))
	assert.Equal(t, 1, observed.FilterMessage("demo started").Len())
	finished := observed.FilterMessage("demo finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, "one", finished[0].ContextMap()["demo"])

	assert.Error(t, runner.Run(context.Background(), io.Discard, "fails"))
	failed := observed.FilterMessage("demo failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
}

func TestDefault_RunAll(t *testing.T) {
	runner := &Runner{Registry: Default()}
	var buf bytes.Buffer
	require.NoError(t, runner.Run(context.Background(), &buf))
	out := buf.String()
	for _, name := range Default().Names() {
		assert.Contains(t, out, "== "+name+" ==")
	}
	assert.True(t, strings.Index(out, "== bridge ==") < strings.Index(out, "== visitor =="))
	assert.Contains(t, out, "A + ConcreteVisitor1\n")
}

func TestRunner_LoggingNilLogger(t *testing.T) {
	runner := &Runner{Registry: newTestRegistry(), Middlewares: []Middleware{Logging(nil)}}
	assert.NotPanics(t, func() {
		assert.NoError(t, runner.Run(context.Background(), io.Discard, "one"))
	})
}
