package discovery

import (
	"strings"

	"commit-impact/internal/domain"
)

// TestFileSuffixes mark a path as a test-definition file
var TestFileSuffixes = []string{".spec.ts", ".spec.tsx"}

// IsTestFile reports whether path is a test-definition file
func IsTestFile(path string) bool {
	for _, suffix := range TestFileSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// Partition splits changed files into test-definition files and support files.
// Input order is kept within each group.
func Partition(files []domain.ChangedFile) (tests, support []domain.ChangedFile) {
	for _, f := range files {
		if IsTestFile(f.Path) {
			tests = append(tests, f)
		} else {
			support = append(support, f)
		}
	}
	return tests, support
}

// FilterTestFiles keeps only the test-definition files of paths
func FilterTestFiles(paths []string) []string {
	var out []string
	for _, p := range paths {
		if IsTestFile(p) {
			out = append(out, p)
		}
	}
	return out
}
