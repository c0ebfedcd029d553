package decorator

import (
	"context"
	"fmt"
	"io"
)

// Demo prints a simple component and the same component decorated by A then B.
func Demo(_ context.Context, w io.Writer) error {
	simple := ConcreteComponent{}
	if _, err := fmt.Fprintf(w, "Client: I've got a simple component:\nRESULT: %s\n\n", simple.Operation()); err != nil {
		return err
	}
	decorated := Chain[Component](simple, DecorateB(), DecorateA())
	_, err := fmt.Fprintf(w, "Client: Now I've got a decorated component:\nRESULT: %s\n", decorated.Operation())
	return err
}
