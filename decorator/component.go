package decorator

// Component defines the behaviour decorators change.
type Component interface {
	Operation() string
}

// ConcreteComponent provides the default behaviour.
type ConcreteComponent struct{}

func (ConcreteComponent) Operation() string {
	return "ConcreteComponent"
}

// ConcreteDecoratorA wraps the result of the decorated component.
type ConcreteDecoratorA struct {
	Component Component
}

func (d ConcreteDecoratorA) Operation() string {
	return "ConcreteDecoratorA(" + d.Component.Operation() + ")"
}

// ConcreteDecoratorB wraps the result of the decorated component.
type ConcreteDecoratorB struct {
	Component Component
}

func (d ConcreteDecoratorB) Operation() string {
	return "ConcreteDecoratorB(" + d.Component.Operation() + ")"
}

// DecorateA returns a Decorator that wraps components in ConcreteDecoratorA.
func DecorateA() Decorator[Component] {
	return DecoratorFunc[Component](func(c Component) Component {
		return ConcreteDecoratorA{Component: c}
	})
}

// DecorateB returns a Decorator that wraps components in ConcreteDecoratorB.
func DecorateB() Decorator[Component] {
	return DecoratorFunc[Component](func(c Component) Component {
		return ConcreteDecoratorB{Component: c}
	})
}
