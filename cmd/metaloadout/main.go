// Package main provides the entry point for the metaloadout CLI tool.
package main

import (
	"os"

	"github.com/gh6st66/metaloadout.gg/cmd/metaloadout/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
