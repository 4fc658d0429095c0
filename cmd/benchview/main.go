// main is the entry point for the benchview CLI.
package main

import (
	"github.com/benchview/benchview/cmd"
	"github.com/benchview/benchview/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run benchview", err)
	}
}
