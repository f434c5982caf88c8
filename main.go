package main

import (
	"os"

	"github.com/afuentes/quizcoach/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
