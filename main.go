package main

import (
	"os"

	"github.com/wordling/wordling/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
