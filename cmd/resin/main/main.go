package main

import (
	"fmt"
	"os"

	"github.com/resin-fmt/resin/cmd/resin"
	"github.com/resin-fmt/resin/pkg/style"
)

func main() {
	rootCmd := resin.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red, then the help for the failed command
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		fmt.Fprintln(os.Stderr)
		_ = rootCmd.Help()

		os.Exit(1)
	}
}
