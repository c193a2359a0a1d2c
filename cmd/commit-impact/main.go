package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"commit-impact/internal/cli"
	"commit-impact/internal/cli/commands"
	"commit-impact/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "commit-impact",
		Short:         "Report which tests a commit affects",
		Long:          `Analyze a single git commit and report which end-to-end tests it added, removed or modified, including tests whose imported helpers changed.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	// Execute root command
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "commit-impact: %v\n", err)
		os.Exit(1)
	}
}
