// Command patterns runs the design pattern demos and the visitor walk.
package main

import (
	"os"

	"github.com/go-leo/patterns/catalog"
)

// version is set at build time.
var version = "dev"

func main() {
	if err := newRootCmd(catalog.Default()).Execute(); err != nil {
		os.Exit(1)
	}
}
