// Package main is the arcana command.
package main

import (
	"os"

	"github.com/leapstack-labs/arcana/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
