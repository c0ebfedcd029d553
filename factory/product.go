package factory

// Product declares the operation every concrete product performs.
type Product interface {
	Operation() string
}

type ConcreteProduct1 struct{}

func (ConcreteProduct1) Operation() string {
	return "{Result of the ConcreteProduct1}"
}

type ConcreteProduct2 struct{}

func (ConcreteProduct2) Operation() string {
	return "{Result of the ConcreteProduct2}"
}
