package visitor

import (
	"fmt"

	"github.com/go-leo/patterns/decorator"
	"go.uber.org/zap"
)

// Logging returns a decorator that logs every visit at debug level before
// handing the component to the decorated visitor. A nil logger logs nothing.
func Logging(logger *zap.Logger) decorator.Decorator[Visitor] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return decorator.DecoratorFunc[Visitor](func(next Visitor) Visitor {
		return &loggingVisitor{
			next:   next,
			logger: logger.With(zap.String("visitor", fmt.Sprintf("%T", next))),
		}
	})
}

type loggingVisitor struct {
	next   Visitor
	logger *zap.Logger
}

func (receiver *loggingVisitor) VisitConcreteComponentA(element *ConcreteComponentA) {
	receiver.logger.Debug("visit", zap.String("element", NameConcreteComponentA))
	receiver.next.VisitConcreteComponentA(element)
}

func (receiver *loggingVisitor) VisitConcreteComponentB(element *ConcreteComponentB) {
	receiver.logger.Debug("visit", zap.String("element", NameConcreteComponentB))
	receiver.next.VisitConcreteComponentB(element)
}
