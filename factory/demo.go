package factory

import (
	"context"
	"fmt"
	"io"
)

// Demo launches the client code with both concrete creators.
func Demo(_ context.Context, w io.Writer) error {
	launches := []struct {
		name    string
		creator Creator
	}{
		{name: "ConcreteCreator1", creator: ConcreteCreator1{}},
		{name: "ConcreteCreator2", creator: ConcreteCreator2{}},
	}
	for i, launch := range launches {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "App: Launched with the %s.\nClient: I'm not aware of the creator's class, but it still works.\n%s\n",
			launch.name, SomeOperation(launch.creator))
		if err != nil {
			return err
		}
	}
	return nil
}
