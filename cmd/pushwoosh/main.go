package main

import (
	"os"

	"github.com/i9si-sistemas/pushwoosh/cmd/pushwoosh/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
