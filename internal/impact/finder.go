package impact

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"commit-impact/internal/execution"
	"commit-impact/internal/imports"
	"commit-impact/internal/logging"
)

// ContentLookup returns the content of path at revision; false means absent
type ContentLookup func(ctx context.Context, revision, path string) (string, bool, error)

// Finder finds test files that import changed support files
type Finder struct {
	fetcher execution.Fetcher
	log     *logrus.Entry
}

// NewFinder creates a new Finder. A nil fetcher fetches sequentially.
func NewFinder(fetcher execution.Fetcher, log *logrus.Entry) *Finder {
	if fetcher == nil {
		fetcher = execution.NewWorkerPool(1, nil)
	}
	return &Finder{
		fetcher: fetcher,
		log:     logging.OrDiscard(log),
	}
}

// FindImpacted returns the test files, in testFiles order, with at least one
// relative import resolving to one of changedSupport. Test files without
// content at revision are skipped.
func (f *Finder) FindImpacted(ctx context.Context, revision string, changedSupport, testFiles []string, lookup ContentLookup) ([]string, error) {
	if len(changedSupport) == 0 || len(testFiles) == 0 {
		return nil, nil
	}

	changed := make(map[string]struct{}, len(changedSupport))
	for _, p := range changedSupport {
		changed[imports.ModuleKey(p)] = struct{}{}
	}

	results, err := f.fetcher.Fetch(ctx, testFiles, func(ctx context.Context, path string) (string, bool, error) {
		content, ok, err := lookup(ctx, revision, path)
		if err != nil {
			if ctx.Err() != nil {
				return "", false, err
			}
			f.log.WithError(err).WithField("file", path).Warn("Could not read test file, skipping")
			return "", false, nil
		}
		return content, ok, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan test files at %s: %w", revision, err)
	}

	var impacted []string
	for _, r := range results {
		if !r.Found {
			continue
		}
		for _, ref := range imports.ExtractRelativeReferences(r.Content) {
			if _, ok := changed[imports.Resolve(r.Path, ref)]; ok {
				f.log.WithFields(logrus.Fields{"file": r.Path, "import": ref}).Debug("Test file imports a changed file")
				impacted = append(impacted, r.Path)
				break
			}
		}
	}

	return impacted, nil
}
