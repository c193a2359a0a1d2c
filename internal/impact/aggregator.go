// Package impact works out which tests a commit affects.
package impact

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"commit-impact/internal/discovery"
	"commit-impact/internal/domain"
	"commit-impact/internal/logging"
)

// Repository is the version-control access the aggregator needs
type Repository interface {
	ResolveCommit(ctx context.Context, ref string) (string, bool, error)
	ChangedFiles(ctx context.Context, commit string) (domain.CommitDiff, error)
	ContentAt(ctx context.Context, revision, path string) (string, bool, error)
	ListFiles(ctx context.Context, revision string) ([]string, error)
}

// Result is the impact of one commit
type Result struct {
	Commit  string
	Parent  string
	Records []domain.ImpactRecord
}

// Aggregator combines direct test-file changes and transitive impact
type Aggregator struct {
	repo    Repository
	parser  *discovery.Parser
	scanner *discovery.Scanner
	finder  *Finder
	log     *logrus.Entry
}

// NewAggregator creates a new Aggregator
func NewAggregator(repo Repository, finder *Finder, log *logrus.Entry) *Aggregator {
	log = logging.OrDiscard(log)
	if finder == nil {
		finder = NewFinder(nil, log)
	}
	return &Aggregator{
		repo:    repo,
		parser:  discovery.NewParser(),
		scanner: discovery.NewScanner(repo),
		finder:  finder,
		log:     log,
	}
}

// Resolve returns the deduplicated impact records of commitRef
func (a *Aggregator) Resolve(ctx context.Context, commitRef string) (*Result, error) {
	commit, ok, err := a.repo.ResolveCommit(ctx, commitRef)
	if err != nil {
		return nil, fmt.Errorf("resolve commit %s: %w", commitRef, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCommitNotFound, commitRef)
	}

	diff, err := a.repo.ChangedFiles(ctx, commit)
	if err != nil {
		return nil, fmt.Errorf("read changes of %s: %w", commit, err)
	}

	testChanges, supportChanges := discovery.Partition(diff.Files)
	a.log.WithFields(logrus.Fields{
		"commit":        commit,
		"parent":        diff.Parent,
		"test_files":    len(testChanges),
		"support_files": len(supportChanges),
	}).Debug("Resolved commit")

	set := newRecordSet()

	for _, f := range testChanges {
		if err := a.diffTestFile(ctx, commit, diff, f, set); err != nil {
			return nil, err
		}
	}

	if len(supportChanges) > 0 && diff.HasParent() {
		if err := a.addTransitive(ctx, commit, supportChanges, set); err != nil {
			return nil, err
		}
	}

	return &Result{
		Commit:  commit,
		Parent:  diff.Parent,
		Records: set.list(),
	}, nil
}

func (a *Aggregator) diffTestFile(ctx context.Context, commit string, diff domain.CommitDiff, f domain.ChangedFile, set *recordSet) error {
	log := a.log.WithFields(logrus.Fields{"file": f.Path, "status": f.Status})

	switch f.Status {
	case domain.StatusAdded:
		tests, err := a.testsAt(ctx, commit, f.Path)
		if err != nil {
			return err
		}
		for _, t := range tests {
			set.add(domain.ImpactAdded, f.Path, t.Name)
		}

	case domain.StatusDeleted:
		if !diff.HasParent() {
			log.Debug("No parent to read deleted file from")
			return nil
		}
		tests, err := a.testsAt(ctx, diff.Parent, f.Path)
		if err != nil {
			return err
		}
		for _, t := range tests {
			set.add(domain.ImpactRemoved, f.Path, t.Name)
		}

	case domain.StatusModified:
		if !diff.HasParent() {
			log.Debug("No parent to diff against")
			return nil
		}
		before, err := a.testsAt(ctx, diff.Parent, f.Path)
		if err != nil {
			return err
		}
		after, err := a.testsAt(ctx, commit, f.Path)
		if err != nil {
			return err
		}

		beforeNames := nameSet(before)
		afterNames := nameSet(after)

		for _, t := range before {
			if _, ok := afterNames[t.Name]; !ok {
				set.add(domain.ImpactRemoved, f.Path, t.Name)
			}
		}
		for _, t := range after {
			if _, ok := beforeNames[t.Name]; ok {
				set.add(domain.ImpactModified, f.Path, t.Name)
			} else {
				set.add(domain.ImpactAdded, f.Path, t.Name)
			}
		}
		log.WithFields(logrus.Fields{"before": len(before), "after": len(after)}).Debug("Diffed test file")
	}
	return nil
}

func (a *Aggregator) addTransitive(ctx context.Context, commit string, supportChanges []domain.ChangedFile, set *recordSet) error {
	testFiles, err := a.scanner.Scan(ctx, commit)
	if err != nil {
		return err
	}

	changed := make([]string, 0, len(supportChanges))
	for _, f := range supportChanges {
		changed = append(changed, f.Path)
	}

	impacted, err := a.finder.FindImpacted(ctx, commit, changed, testFiles, a.repo.ContentAt)
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{"candidates": len(testFiles), "impacted": len(impacted)}).Debug("Scanned for transitive impact")

	for _, path := range impacted {
		tests, err := a.testsAt(ctx, commit, path)
		if err != nil {
			return err
		}
		for _, t := range tests {
			set.add(domain.ImpactModified, path, t.Name)
		}
	}
	return nil
}

// testsAt parses path at revision; missing or unreadable files have no tests.
// Only a canceled context is returned as an error.
func (a *Aggregator) testsAt(ctx context.Context, revision, path string) ([]domain.ParsedTest, error) {
	content, ok, err := a.repo.ContentAt(ctx, revision, path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("read %s at %s: %w", path, revision, ctxErr)
		}
		a.log.WithError(err).WithField("file", path).Warn("Could not read file, treating as empty")
		return nil, nil
	}
	if !ok {
		return nil, nil
	}
	return a.parser.ParseSource(content), nil
}

func nameSet(tests []domain.ParsedTest) map[string]struct{} {
	names := make(map[string]struct{}, len(tests))
	for _, t := range tests {
		names[t.Name] = struct{}{}
	}
	return names
}
