// Package main is the entry point for the orderpulse server.
package main

import (
	"os"

	"github.com/orderpulse/orderpulse/cmd/orderpulse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
