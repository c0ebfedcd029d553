package catalog

import (
	"context"
	"io"
)

// Demo is a runnable pattern demonstration.
type Demo interface {
	// Name returns the registry key of the demo.
	Name() string

	// Run writes the demonstration output to w.
	Run(ctx context.Context, w io.Writer) error
}

// RunFunc is the signature of the Demo functions every pattern package exports.
type RunFunc func(ctx context.Context, w io.Writer) error

// New returns a Demo named name that calls run.
func New(name string, run RunFunc) Demo {
	return &demo{name: name, run: run}
}

type demo struct {
	name string
	run  RunFunc
}

func (d *demo) Name() string {
	return d.name
}

func (d *demo) Run(ctx context.Context, w io.Writer) error {
	return d.run(ctx, w)
}
