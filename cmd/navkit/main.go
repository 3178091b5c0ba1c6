package main

import (
	"fmt"
	"os"

	"github.com/bnema/navkit/internal/cli"
)

// Build-time variables (set via ldflags).
var version = "dev"

func main() {
	cli.Version = version

	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
