// Package main provides the CLI entrypoint for map2d-testgen.
//
// map2d-testgen emits the source of a test harness for the Map2D
// lookup/interpolation tables:
//   - Declares program memory breakpoint arrays for every storage type
//   - Instantiates one table per (X type, Y type, size)
//   - Sweeps every table over a signed index range and prints the samples
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
