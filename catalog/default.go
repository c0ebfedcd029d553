package catalog

import (
	"github.com/go-leo/patterns/bridge"
	"github.com/go-leo/patterns/decorator"
	"github.com/go-leo/patterns/factory"
	"github.com/go-leo/patterns/visitor"
)

const (
	DemoVisitor       = "visitor"
	DemoFactoryMethod = "factory-method"
	DemoBridge        = "bridge"
	DemoDecorator     = "decorator"
)

// Default returns a registry holding every demo of this module.
func Default() *Registry {
	registry := NewRegistry()
	registry.MustRegister(
		New(DemoVisitor, visitor.Demo),
		New(DemoFactoryMethod, factory.Demo),
		New(DemoBridge, bridge.Demo),
		New(DemoDecorator, decorator.Demo),
	)
	return registry
}
