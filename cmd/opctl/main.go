// Package main is the entry point for the opctl CLI client.
package main

import (
	"github.com/orderpulse/orderpulse/cmd/opctl/cmd"
)

func main() {
	cmd.Execute()
}
