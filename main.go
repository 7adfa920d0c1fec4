package main

import (
	"os"

	"github.com/haxx0rman/qBank/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
