package main

import (
	"os"

	"github.com/hrvstr/drp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
