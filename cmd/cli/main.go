// Package main is the entry point for the cloudspend CLI.
package main

import (
	"os"

	"cloudspend/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
