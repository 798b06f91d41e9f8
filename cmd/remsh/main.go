package main

import (
	"os"

	"github.com/hostlab/remsh/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
