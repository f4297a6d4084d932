package main

import (
	"fmt"
	"os"

	"github.com/misldy/testcase-converter/internal/cli"
	"github.com/misldy/testcase-converter/internal/cli/commands"
	"github.com/misldy/testcase-converter/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:     "tcconvert",
		Short:   "Bidirectional test-case converter",
		Long:    `A bidirectional converter for test-case suites. Turn flat CSV case tables into XMind mind maps for review and planning, and mind-mapped suites back into tables for execution tracking.`,
		Version: version,
	}

	// Load config from defaults, config file and environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
