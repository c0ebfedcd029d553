package visitor

const NameConcreteVisitor2 = "ConcreteVisitor2"

var _ Visitor = ConcreteVisitor2{}

type ConcreteVisitor2 struct {
	Sink Sink
}

func (receiver ConcreteVisitor2) VisitConcreteComponentA(element *ConcreteComponentA) {
	emit(receiver.Sink, Result{
		Element: NameConcreteComponentA,
		Visitor: NameConcreteVisitor2,
		Value:   element.ExclusiveMethodOfConcreteComponentA(),
	})
}

func (receiver ConcreteVisitor2) VisitConcreteComponentB(element *ConcreteComponentB) {
	emit(receiver.Sink, Result{
		Element: NameConcreteComponentB,
		Visitor: NameConcreteVisitor2,
		Value:   element.SpecialMethodOfConcreteComponentB(),
	})
}
