package visitor

import (
	"fmt"
	"strings"
)

// Walk calls Accept on every component in order. The same components can be
// walked again with any other Visitor. Nil components are skipped.
func Walk(components []Component, visitor Visitor) {
	for _, component := range components {
		if component == nil {
			continue
		}
		component.Accept(visitor)
	}
}

// Parse builds components from names. "a", "A" and "ConcreteComponentA" all name
// ConcreteComponentA; the order of names is kept.
func Parse(names ...string) ([]Component, error) {
	components := make([]Component, 0, len(names))
	for _, name := range names {
		component, err := ParseComponent(name)
		if err != nil {
			return nil, err
		}
		components = append(components, component)
	}
	return components, nil
}

// ParseComponent returns a new component for name.
func ParseComponent(name string) (Component, error) {
	name = strings.TrimSpace(name)
	switch {
	case strings.EqualFold(name, "a"), strings.EqualFold(name, NameConcreteComponentA):
		return &ConcreteComponentA{}, nil
	case strings.EqualFold(name, "b"), strings.EqualFold(name, NameConcreteComponentB):
		return &ConcreteComponentB{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
}

// NewVisitor returns the concrete visitor for name. "1" and "ConcreteVisitor1"
// name ConcreteVisitor1.
func NewVisitor(name string, sink Sink) (Visitor, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "1", strings.EqualFold(name, NameConcreteVisitor1):
		return ConcreteVisitor1{Sink: sink}, nil
	case name == "2", strings.EqualFold(name, NameConcreteVisitor2):
		return ConcreteVisitor2{Sink: sink}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVisitor, name)
	}
}
