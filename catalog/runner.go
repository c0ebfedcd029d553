package catalog

import (
	"context"
	"fmt"
	"io"

	"github.com/go-leo/patterns/middleware"
)

// Runner runs demos from a Registry.
type Runner struct {
	Registry    *Registry
	Middlewares []Middleware
}

// Run runs the named demos in the given order, or every registered demo in name
// order when names is empty. Each demo's output is preceded by a "== name =="
// header. All names are resolved before anything runs; Run stops at the first
// failing demo.
func (r *Runner) Run(ctx context.Context, w io.Writer, names ...string) error {
	if len(names) == 0 {
		names = r.Registry.Names()
	}
	demos := make([]Demo, 0, len(names))
	for _, name := range names {
		demo, err := r.Registry.Lookup(name)
		if err != nil {
			return err
		}
		demos = append(demos, demo)
	}

	mdw := middleware.Chain(r.Middlewares...)
	run := func(ctx context.Context, demo Demo) (struct{}, error) {
		return struct{}{}, demo.Run(ctx, w)
	}
	for i, demo := range demos {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "== %s ==\n", demo.Name()); err != nil {
			return err
		}
		if _, err := mdw(ctx, demo, run); err != nil {
			return fmt.Errorf("run %s: %w", demo.Name(), err)
		}
	}
	return nil
}
