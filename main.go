package main

import (
	"os"

	"github.com/ritwika/khel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
