package visitor

// ConcreteComponentB implements its accept method.
type ConcreteComponentB struct{}

// Accept visitor.
func (receiver *ConcreteComponentB) Accept(visitor Visitor) {
	visitor.VisitConcreteComponentB(receiver)
}

func (*ConcreteComponentB) SpecialMethodOfConcreteComponentB() string {
	return "B"
}

func (*ConcreteComponentB) component() {}
