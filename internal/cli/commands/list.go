package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"commit-impact/internal/config"
	"commit-impact/internal/discovery"
	"commit-impact/internal/domain"
	"commit-impact/internal/execution"
	"commit-impact/internal/impact"
	"commit-impact/internal/logging"
	"commit-impact/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	filter    *discovery.Filter
	parser    *discovery.Parser
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	parser *discovery.Parser,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		filter:    filter,
		parser:    parser,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := logging.New(lc.config.Flags.Verbose, os.Stderr)

	repo, err := impact.OpenRepository(lc.config.GetRepoPath())
	if err != nil {
		return err
	}
	defer repo.Close()

	commit, ok, err := repo.ResolveCommit(ctx, lc.config.Flags.Commit)
	if err != nil {
		return fmt.Errorf("resolve commit %s: %w", lc.config.Flags.Commit, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", impact.ErrCommitNotFound, lc.config.Flags.Commit)
	}

	paths, err := discovery.NewScanner(repo).Scan(ctx, commit)
	if err != nil {
		return err
	}
	paths = lc.filter.FilterByName(paths, lc.config.Flags.Filter)
	log.WithField("commit", commit).WithField("files", len(paths)).Debug("Scanned test files")

	if len(paths) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	files := make([]domain.TestFile, len(paths))
	for i, p := range paths {
		files[i] = domain.TestFile{Path: p}
	}

	if lc.config.Flags.TestCases {
		pool := execution.NewWorkerPool(lc.config.Workers, execution.NewRoundRobinScheduler())
		results, err := pool.Fetch(ctx, paths, func(ctx context.Context, path string) (string, bool, error) {
			return repo.ContentAt(ctx, commit, path)
		})
		if err != nil {
			return fmt.Errorf("read test files at %s: %w", commit, err)
		}
		for i, r := range results {
			if r.Found {
				files[i].Tests = lc.parser.ParseSource(r.Content)
			}
		}
	}

	lc.formatter.PrintTestList(files, lc.config.Flags.TestCases)
	return nil
}
