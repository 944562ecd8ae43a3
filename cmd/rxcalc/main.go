package main

import (
	"os"

	"github.com/rxcalc/pharmacy-calculator/cmd/rxcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
