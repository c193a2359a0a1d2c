package discovery

import (
	"path"
	"strings"

	"github.com/gobwas/glob"

	"commit-impact/internal/domain"
)

// Filter filters test files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters test file paths by name pattern using wildcard matching.
// Supports patterns like "*checkout.spec.ts", "*login*" or "{cart,checkout}*".
func (f *Filter) FilterByName(files []string, pattern string) []string {
	if pattern == "" {
		return files
	}

	var filtered []string
	for _, file := range files {
		if matchName(path.Base(file), pattern) {
			filtered = append(filtered, file)
		}
	}
	return filtered
}

// FilterRecords keeps the records whose file base name matches pattern
func (f *Filter) FilterRecords(records []domain.ImpactRecord, pattern string) []domain.ImpactRecord {
	if pattern == "" {
		return records
	}

	filtered := make([]domain.ImpactRecord, 0, len(records))
	for _, r := range records {
		if matchName(path.Base(r.FilePath), pattern) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if g, err := glob.Compile(pattern); err == nil && g.Match(name) {
		return true
	}

	if strings.Contains(pattern, "*") {
		// "*login*" style: every non-empty part must appear in the name
		hasPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasPart
	}

	if !strings.ContainsAny(pattern, "?[{") {
		return strings.Contains(name, pattern)
	}
	return false
}
