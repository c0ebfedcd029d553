package visitor

// ComponentAVisitor visits ConcreteComponentA.
type ComponentAVisitor interface {
	VisitConcreteComponentA(element *ConcreteComponentA)
}

// ComponentBVisitor visits ConcreteComponentB.
type ComponentBVisitor interface {
	VisitConcreteComponentB(element *ConcreteComponentB)
}

// Visitor interface extends all component visitor interfaces. A type missing the
// visit method of any component does not implement Visitor, so it cannot be
// passed to Accept or Walk.
//
// Adding a component means adding its visitor interface here and a method to
// every concrete visitor.
type Visitor interface {
	ComponentAVisitor
	ComponentBVisitor
}
