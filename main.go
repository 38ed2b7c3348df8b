package main

import (
	"os"

	"github.com/chemiz/chemiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
