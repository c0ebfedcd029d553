package visitor

// Component is implemented by every element that can present itself to a Visitor.
// The set of components is closed: the unexported method keeps other packages
// from adding variants the Visitor interface does not know about.
type Component interface {
	// Accept calls the one method of visitor that matches the component's own type.
	Accept(visitor Visitor)

	component()
}

const (
	NameConcreteComponentA = "ConcreteComponentA"
	NameConcreteComponentB = "ConcreteComponentB"
)
