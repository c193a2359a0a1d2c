package discovery

import (
	"context"
	"fmt"
)

// FileLister lists all tracked paths at a revision
type FileLister interface {
	ListFiles(ctx context.Context, revision string) ([]string, error)
}

// Scanner finds test-definition files in a repository snapshot
type Scanner struct {
	lister FileLister
}

// NewScanner creates a new Scanner over the given lister
func NewScanner(lister FileLister) *Scanner {
	return &Scanner{lister: lister}
}

// Scan returns all test-definition files tracked at revision, in listing order
func (s *Scanner) Scan(ctx context.Context, revision string) ([]string, error) {
	files, err := s.lister.ListFiles(ctx, revision)
	if err != nil {
		return nil, fmt.Errorf("list files at %s: %w", revision, err)
	}
	return FilterTestFiles(files), nil
}
