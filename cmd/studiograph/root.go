package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/studiograph/internal/adapters/studio"
	"github.com/aretw0/studiograph/internal/logging"
	"github.com/aretw0/studiograph/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studiograph",
	Short: "studiograph derives state listings and Mermaid graphs from Studio flows",
	Long: `studiograph fetches a Studio flow definition and derives two artifacts from it:
a JSON listing of every state reachable from a trigger, and a Mermaid
flowchart spliced into a managed section of a markdown document.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("api-base", studio.DefaultBaseURL, "Base URL of the Studio API")
}

// loggerFromFlags builds the command logger from the persistent --log-level flag.
func loggerFromFlags(cmd *cobra.Command) *slog.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	return logging.New(logging.ParseLevel(level))
}

// clientFromFlags builds the Studio client from flags and environment.
func clientFromFlags(cmd *cobra.Command, logger *slog.Logger) *studio.Client {
	base, _ := cmd.Flags().GetString("api-base")
	return studio.NewFromEnv(base, logger)
}

// fail reports a command error on stderr and exits.
func fail(err error) {
	fmt.Fprintln(os.Stderr, tui.Fail(fmt.Sprintf("Error: %v", err)))
	os.Exit(1)
}
