// Command gradus is the CLI collaborator described by the core's external
// interface (§6): two positional arguments, a table kind ("ll" or "slr")
// and a difficulty level, rendering the generated grammar and its tables
// to standard output.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
