package broken

type Visitor interface {
	VisitLeft(*Left)
	VisitRight(*Right)
	VisitOrphan(*Orphan)
	VisitStranger(*Stranger)
	VisitGhost(*Ghost)
}

type Left struct{}

func (l *Left) Accept(v Visitor) { v.VisitLeft(l) }

type Right struct{}

func (r *Right) Accept(v Visitor) { v.VisitLeft(&Left{}) }

type Twice struct{}

func (t *Twice) Accept(v Visitor) {
	v.VisitLeft(&Left{})
	v.VisitRight(&Right{})
}

type Orphan struct{}

type Stranger struct{ n int }

func (s *Stranger) Accept(v Visitor) { v.VisitStranger(&Stranger{n: 9}) }

type Ghost struct{}

func (g *Ghost) Accept(v Visitor) { v.VisitGhost(nil) }
