package visitor

import (
	"context"
	"fmt"
	"io"
)

// Demo walks ConcreteComponentA and ConcreteComponentB with both concrete
// visitors, writing the results to w.
func Demo(_ context.Context, w io.Writer) error {
	components := []Component{
		&ConcreteComponentA{},
		&ConcreteComponentB{},
	}
	sink := &WriterSink{Writer: w}

	if _, err := fmt.Fprintln(w, "The client code works with all visitors via the base Visitor interface:"); err != nil {
		return err
	}
	Walk(components, ConcreteVisitor1{Sink: sink})
	if err := sink.Err(); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "It allows the same client code to work with different types of visitors:"); err != nil {
		return err
	}
	Walk(components, ConcreteVisitor2{Sink: sink})
	return sink.Err()
}
