package visitor

import (
	"bytes"
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestWalk(t *testing.T) {
	Convey("Given the components A and B", t, func() {
		components := []Component{&ConcreteComponentA{}, &ConcreteComponentB{}}

		Convey("When they are walked with ConcreteVisitor1", func() {
			var c Collector
			Walk(components, ConcreteVisitor1{Sink: &c})

			Convey("Then every component is combined with the ConcreteVisitor1 label, in order", func() {
				So(c.Lines(), ShouldResemble, []string{"A + ConcreteVisitor1", "B + ConcreteVisitor1"})
			})
		})

		Convey("When the same components are walked with ConcreteVisitor2", func() {
			var c Collector
			Walk(components, ConcreteVisitor2{Sink: &c})

			Convey("Then every component is combined with the ConcreteVisitor2 label", func() {
				So(c.Lines(), ShouldResemble, []string{"A + ConcreteVisitor2", "B + ConcreteVisitor2"})
			})
		})

		Convey("When both visitors share one walk order", func() {
			var c1, c2 Collector
			Walk(components, ConcreteVisitor1{Sink: &c1})
			Walk(components, ConcreteVisitor2{Sink: &c2})

			Convey("Then neither visitor affects the other", func() {
				So(c1.Lines(), ShouldHaveLength, 2)
				So(c2.Lines(), ShouldHaveLength, 2)
				So(c1.Lines()[0], ShouldEndWith, NameConcreteVisitor1)
				So(c2.Lines()[0], ShouldEndWith, NameConcreteVisitor2)
			})
		})

		Convey("When the order is reversed", func() {
			var c Collector
			Walk([]Component{components[1], components[0]}, ConcreteVisitor1{Sink: &c})

			Convey("Then the results are reversed as well", func() {
				So(c.Lines(), ShouldResemble, []string{"B + ConcreteVisitor1", "A + ConcreteVisitor1"})
			})
		})
	})
}

func TestDemo(t *testing.T) {
	Convey("The demo prints both walks", t, func() {
		var buf bytes.Buffer
		So(Demo(context.Background(), &buf), ShouldBeNil)
		So(buf.String(), ShouldEqual, "The client code works with all visitors via the base Visitor interface:\n"+
			"A + ConcreteVisitor1\n"+
			"B + ConcreteVisitor1\n"+
			"\n"+
			"It allows the same client code to work with different types of visitors:\n"+
			"A + ConcreteVisitor2\n"+
			"B + ConcreteVisitor2\n")
	})
}
