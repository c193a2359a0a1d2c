package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commit-impact/internal/cli"
	"commit-impact/internal/config"
	"commit-impact/internal/domain"
	"commit-impact/internal/impact"
)

func TestBuildReport(t *testing.T) {
	result := &impact.Result{
		Commit: "0123456789abcdef0123456789abcdef01234567",
		Parent: "fedcba9876543210fedcba9876543210fedcba98",
		Records: []domain.ImpactRecord{
			{Kind: domain.ImpactAdded, FilePath: "a.spec.ts", TestName: "one"},
			{Kind: domain.ImpactModified, FilePath: "b.spec.ts", TestName: "two"},
			{Kind: domain.ImpactModified, FilePath: "b.spec.ts", TestName: "three"},
		},
	}

	report := buildReport("/work/app", result)
	assert.Equal(t, "/work/app", report.Meta.Repo)
	assert.Equal(t, result.Commit, report.Meta.Commit)
	assert.Equal(t, result.Parent, report.Meta.Parent)
	assert.Equal(t, 1, report.Meta.Added)
	assert.Equal(t, 0, report.Meta.Removed)
	assert.Equal(t, 2, report.Meta.Modified)
	assert.Equal(t, 3, report.Meta.Total)
	assert.NotEmpty(t, report.Meta.Timestamp)
	assert.Equal(t, result.Records, report.Records)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(config.EnvRepo, "")
	t.Setenv(config.EnvFormat, "")
	t.Setenv(config.EnvWorkers, "")

	cfg := config.New()
	shared := cfg

	flags := &cli.Flags{Commit: "HEAD", Repo: "/work/app", Machine: true, Workers: 2}
	require.NoError(t, loadConfig(cfg, flags))

	// dependencies holding the same pointer see the loaded values
	assert.Equal(t, "/work/app", shared.RepoPath)
	assert.Equal(t, config.FormatMachine, shared.Format)
	assert.Equal(t, 2, shared.Workers)
	assert.Equal(t, "HEAD", shared.Flags.Commit)

	err := loadConfig(cfg, &cli.Flags{Format: "xml"})
	require.Error(t, err)
}
