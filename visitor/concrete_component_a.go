package visitor

// ConcreteComponentA implements its accept method.
type ConcreteComponentA struct{}

// Accept calls VisitConcreteComponentA, so the visitor knows it works with a ConcreteComponentA.
func (receiver *ConcreteComponentA) Accept(visitor Visitor) {
	visitor.VisitConcreteComponentA(receiver)
}

// ExclusiveMethodOfConcreteComponentA is not part of Component. Visitors can still
// use it because VisitConcreteComponentA receives the concrete type.
func (*ConcreteComponentA) ExclusiveMethodOfConcreteComponentA() string {
	return "A"
}

func (*ConcreteComponentA) component() {}
