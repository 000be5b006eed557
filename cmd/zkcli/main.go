package main

import (
	"os"

	"github.com/mikekulinski/zkcli/cmd/zkcli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
