package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"commit-impact/internal/config"
	"commit-impact/internal/discovery"
	"commit-impact/internal/domain"
	"commit-impact/internal/impact"
	"commit-impact/internal/logging"
	"commit-impact/internal/storage"
	"commit-impact/internal/ui"
)

// ImpactCommand handles the root command
type ImpactCommand struct {
	config    *config.Config
	filter    *discovery.Filter
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewImpactCommand creates a new ImpactCommand
func NewImpactCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	st storage.Storage,
	formatter *ui.Formatter,
) *ImpactCommand {
	return &ImpactCommand{
		config:    cfg,
		filter:    filter,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (ic *ImpactCommand) Execute(cmd *cobra.Command, args []string) error {
	log := logging.New(ic.config.Flags.Verbose, os.Stderr)

	opts := impact.Options{
		Workers: ic.config.Workers,
		Log:     log,
	}
	// The bar would interleave with verbose logs and pollute piped output.
	if ic.config.Format == config.FormatHuman && !ic.config.Flags.Verbose && ui.ProgressEnabled() {
		opts.Progress = ui.NewProgressBar("Scanning tests...")
	}

	result, err := impact.ResolveImpact(cmd.Context(), ic.config.GetRepoPath(), ic.config.Flags.Commit, opts)
	if err != nil {
		return err
	}

	report := buildReport(ic.config.GetRepoPath(), result)
	if ic.config.Flags.Save {
		if err := ic.storage.Save(report); err != nil {
			return fmt.Errorf("failed to save impact report: %w", err)
		}
		log.WithField("path", ic.config.GetOutputPath()).Debug("Saved report")
	}

	if ic.config.Flags.Filter != "" {
		filtered := *report
		filtered.Records = ic.filter.FilterRecords(report.Records, ic.config.Flags.Filter)
		report = &filtered
	}

	return ic.formatter.PrintReport(report, ic.config.Format)
}

func buildReport(repo string, result *impact.Result) *domain.ImpactReport {
	added, removed, modified := domain.CountByKind(result.Records)
	return &domain.ImpactReport{
		Meta: domain.ImpactReportMeta{
			Repo:      repo,
			Commit:    result.Commit,
			Parent:    result.Parent,
			Added:     added,
			Removed:   removed,
			Modified:  modified,
			Total:     len(result.Records),
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Records: result.Records,
	}
}
