// Package main is the entry point for the tripctl CLI.
package main

import (
	"os"

	"github.com/mmynk/tripmate/cmd/tripctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
