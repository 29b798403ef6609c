// linkgraph: build a node-link graph with the mouse, in the terminal.
//
// Run: go run ./cmd/linkgraph/
package main

import (
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
