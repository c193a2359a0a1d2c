package commands

import (
	"os"

	"commit-impact/internal/cli"
	"commit-impact/internal/config"
	"commit-impact/internal/discovery"
	"commit-impact/internal/storage"
	"commit-impact/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Impact *ImpactCommand
	List   *ListCommand
	View   *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	filter := discovery.NewFilter()
	testCaseParser := discovery.NewParser()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(os.Stdout)
	reportViewer := ui.NewReportViewer(jsonStorage)

	return &Commands{
		Impact: NewImpactCommand(cfg, filter, jsonStorage, formatter),
		List:   NewListCommand(cfg, filter, testCaseParser, formatter),
		View:   NewViewCommand(cfg, jsonStorage, reportViewer),
	}
}

// loadConfig refreshes cfg in place from .env, the environment and parsed flags,
// so dependencies built in NewCommands see the final values.
func loadConfig(cfg *config.Config, flags *cli.Flags) error {
	loaded, err := config.Load(flags.ToConfigFlags())
	if err != nil {
		return err
	}
	*cfg = *loaded
	return nil
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	preRun := func(cmd *cobra.Command, args []string) error {
		return loadConfig(cfg, flags)
	}

	// Root command resolves the impact of a commit
	rootCmd.RunE = c.Impact.Execute
	rootCmd.PreRunE = preRun
	rootCmd.Flags().StringVarP(&flags.Commit, "commit", "c", "", "Commit to analyze (full id, unique abbreviation or any revision)")
	rootCmd.Flags().StringVarP(&flags.Repo, "repo", "r", "", "Path to the git repository (default: current directory)")
	rootCmd.Flags().BoolVar(&flags.Machine, "machine", false, "Print tab-separated records (same as --format machine)")
	rootCmd.Flags().StringVar(&flags.Format, "format", "", "Output format: human, machine or json")
	rootCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter records by test file name pattern (supports wildcards, e.g., '*login.spec.ts' or '*checkout*')")
	rootCmd.Flags().BoolVar(&flags.Save, "save", false, "Save the report for the view command")
	rootCmd.Flags().IntVarP(&flags.Workers, "workers", "w", 0, "Number of concurrent content readers")
	rootCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log analysis steps to stderr")
	_ = rootCmd.MarkFlagRequired("commit")

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List test files at a commit",
		Long:    "List the test-definition files present at a commit, optionally with their test names",
		RunE:    c.List.Execute,
		PreRunE: preRun,
	}
	listCmd.Flags().StringVarP(&flags.Commit, "commit", "c", "HEAD", "Commit whose tree is listed")
	listCmd.Flags().StringVarP(&flags.Repo, "repo", "r", "", "Path to the git repository (default: current directory)")
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter test files by name pattern (supports wildcards)")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "t", false, "Show the test names of each file")
	listCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log analysis steps to stderr")
	rootCmd.AddCommand(listCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:     "view",
		Short:   "Browse the saved report interactively",
		Long:    "Open the report saved with --save in an interactive viewer",
		RunE:    c.View.Execute,
		PreRunE: preRun,
	}
	rootCmd.AddCommand(viewCmd)
}
