package impact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"commit-impact/internal/execution"
	"commit-impact/internal/vcs"
)

// Options tune a ResolveImpact call
type Options struct {
	Workers  int
	Log      *logrus.Entry
	Progress execution.Progress
}

// ResolveImpact opens the git repository at repoPath and returns the impact
// of commitRef on its tests.
func ResolveImpact(ctx context.Context, repoPath, commitRef string, opts Options) (*Result, error) {
	repo, err := OpenRepository(repoPath)
	if err != nil {
		return nil, err
	}
	defer repo.Close()

	pool := execution.NewWorkerPool(opts.Workers, execution.NewRoundRobinScheduler())
	if opts.Progress != nil {
		pool.SetProgress(opts.Progress)
	}

	return NewAggregator(repo, NewFinder(pool, opts.Log), opts.Log).Resolve(ctx, commitRef)
}

// OpenRepository checks that repoPath is a directory and opens the git
// repository in it.
func OpenRepository(repoPath string) (*vcs.Repository, error) {
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRepoNotDirectory, repoPath)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRepoNotDirectory, repoPath)
	}
	return vcs.Open(abs)
}
