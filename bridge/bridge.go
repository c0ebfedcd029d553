package bridge

// Implementation is the interface of the implementation hierarchy. It only
// offers primitive operations; the abstraction builds on top of them.
type Implementation interface {
	OperationImplementation() string
}

// Operator is satisfied by every abstraction.
type Operator interface {
	Operation() string
}

// Abstraction delegates the real work to Implementation.
type Abstraction struct {
	Implementation Implementation
}

func (a Abstraction) Operation() string {
	return "Abstraction: Base operation with:\n" + a.Implementation.OperationImplementation()
}

// ExtendedAbstraction extends the abstraction without changing implementations.
type ExtendedAbstraction struct {
	Abstraction
}

func (a ExtendedAbstraction) Operation() string {
	return "ExtendedAbstraction: Extended operation with:\n" + a.Implementation.OperationImplementation()
}

// ConcreteImplementationA is the implementation for platform A.
type ConcreteImplementationA struct{}

func (ConcreteImplementationA) OperationImplementation() string {
	return "ConcreteImplementationA: Here's the result on the platform A.\n"
}

// ConcreteImplementationB is the implementation for platform B.
type ConcreteImplementationB struct{}

func (ConcreteImplementationB) OperationImplementation() string {
	return "ConcreteImplementationB: Here's the result on the platform B.\n"
}
