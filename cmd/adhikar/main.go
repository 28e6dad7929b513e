package main

import (
	"os"

	"github.com/nileshvk/adhikar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
