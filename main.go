package main

import (
	"os"

	"github.com/abhisek/quizview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
