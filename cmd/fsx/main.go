package main

import (
	"fmt"
	"os"

	"fsx/internal/cli"
)

// version can be overridden via -ldflags "-X main.version=1.0.0".
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
