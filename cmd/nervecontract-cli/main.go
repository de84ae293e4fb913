// Package main is the entry point for the nervecontract-cli application.
// It initializes the root command and registers sub-commands for projects,
// contract notices and generated reports, then executes the command-line
// interface.
package main

import (
	"fmt"
	"log"

	commands "github.com/wesrioswart/nervecontract/cmd/nervecontract-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "nervecontract-cli",
		Short: "NEC4 contract management CLI tool",
		Long: `nervecontract-cli is a command-line tool for managing NEC4 construction
contracts. It registers projects, raises early warnings and compensation
events with project-sequential references, and renders project summary
reports through a headless browser.

The database and browser are configured through the YAML file referenced by
the CONFIG_PATH environment variable (defaults to ../../configs/rest-app.yaml).`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitProjectCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize project commands: %w", err)
	}

	if err := commands.InitNoticeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize notice commands: %w", err)
	}

	if err := commands.InitReportCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize report commands: %w", err)
	}

	return nil
}
