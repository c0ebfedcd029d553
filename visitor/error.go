package visitor

import "errors"

var (
	// ErrUnknownComponent name does not match any component
	ErrUnknownComponent = errors.New("unknown component")

	// ErrUnknownVisitor name does not match any concrete visitor
	ErrUnknownVisitor = errors.New("unknown visitor")
)
