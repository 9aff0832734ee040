package main

import (
	"os"

	"github.com/hajira/edumood/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
