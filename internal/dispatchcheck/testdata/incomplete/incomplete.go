package incomplete

type Visitor interface {
	VisitLeft(*Left)
	VisitRight(*Right)
}

type Left struct{}

func (l *Left) Accept(v Visitor) { v.VisitLeft(l) }

type Right struct{}

func (r *Right) Accept(v Visitor) { v.VisitRight(r) }

type leftOnly struct{}

func (leftOnly) VisitLeft(*Left) {}

var _ Visitor = leftOnly{}
