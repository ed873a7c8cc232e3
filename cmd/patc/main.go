package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/patmatch/cmd/patc/commands"
	"github.com/katalvlaran/patmatch/internal/logging"
	"github.com/katalvlaran/patmatch/internal/style"
)

func main() {
	rootCmd := commands.NewRootCmd()
	err := rootCmd.Execute()
	_ = logging.Close()
	if err != nil {
		p := style.NewPrinter(style.ColorEnabled("auto", os.Stderr))
		fmt.Fprintln(os.Stderr, p.Error(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
