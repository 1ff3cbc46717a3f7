package main

import (
	"os"

	"github.com/simonhull/firebird-suite/plume/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()
	rootCmd.AddCommand(commands.AskCmd())
	rootCmd.AddCommand(commands.FormCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
