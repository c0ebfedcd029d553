package visitor

const NameConcreteVisitor1 = "ConcreteVisitor1"

var _ Visitor = ConcreteVisitor1{}

// ConcreteVisitor1 implements the visit method of every component.
// Results go to Sink, or to standard output when Sink is nil.
type ConcreteVisitor1 struct {
	Sink Sink
}

func (receiver ConcreteVisitor1) VisitConcreteComponentA(element *ConcreteComponentA) {
	emit(receiver.Sink, Result{
		Element: NameConcreteComponentA,
		Visitor: NameConcreteVisitor1,
		Value:   element.ExclusiveMethodOfConcreteComponentA(),
	})
}

func (receiver ConcreteVisitor1) VisitConcreteComponentB(element *ConcreteComponentB) {
	emit(receiver.Sink, Result{
		Element: NameConcreteComponentB,
		Visitor: NameConcreteVisitor1,
		Value:   element.SpecialMethodOfConcreteComponentB(),
	})
}
