package bridge

import (
	"context"
	"io"
)

// Demo pairs the base abstraction with implementation A and the extended one
// with implementation B.
func Demo(_ context.Context, w io.Writer) error {
	operators := []Operator{
		Abstraction{Implementation: ConcreteImplementationA{}},
		ExtendedAbstraction{Abstraction: Abstraction{Implementation: ConcreteImplementationB{}}},
	}
	for i, operator := range operators {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, operator.Operation()); err != nil {
			return err
		}
	}
	return nil
}
