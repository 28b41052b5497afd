package main

import (
	"os"

	"github.com/libmatcha/matcha/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
