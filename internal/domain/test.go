package domain

// ParsedTest is a test case found in a test file's source
type ParsedTest struct {
	Name      string // Full display name ("group > title" or just "title")
	GroupName string // Enclosing test.describe title, empty at top level
}

// TestFile is a test-definition file and the tests it declares at one revision
type TestFile struct {
	Path  string
	Tests []ParsedTest
}
