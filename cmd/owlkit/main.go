package main

import (
	"os"

	"github.com/mendelkb/owlkit/cmd/owlkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
