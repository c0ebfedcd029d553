package catalog

import "errors"

var (
	// ErrDemoNil Demo arg is nil
	ErrDemoNil = errors.New("demo is nil")

	// ErrDemoRegistered a Demo with the same name is registered
	ErrDemoRegistered = errors.New("demo registered")

	// ErrDemoNotFound no Demo is registered under the name
	ErrDemoNotFound = errors.New("demo not found")

	// ErrDemoPanic Demo panicked while running
	ErrDemoPanic = errors.New("demo panicked")
)
