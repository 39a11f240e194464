package main

import (
	"os"

	"github.com/wordletrack/wordletrack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
