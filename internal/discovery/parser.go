package discovery

import (
	"regexp"
	"strings"

	"commit-impact/internal/domain"
)

var (
	// test.describe('title', ...) with ', " or ` quoting
	describePattern = regexp.MustCompile("test\\s*\\.\\s*describe\\s*\\(\\s*['\"`]([^'\"`]+)['\"`]")
	// test('title', ...) with ', " or ` quoting
	testPattern = regexp.MustCompile("test\\s*\\(\\s*['\"`]([^'\"`]+)['\"`]")
)

// GroupSeparator joins a describe title and a test title into a display name
const GroupSeparator = " > "

// Parser extracts Playwright-style test declarations from test file source
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// scanState is the accumulator carried across lines of one file
type scanState struct {
	depth      int
	group      string
	inGroup    bool
	groupDepth int
}

// ParseSource returns every test declared in source, in source order.
//
// Block scope is approximated per line: a line containing "{" opens one level
// and a line containing "}" closes one. Only one test.describe group is tracked
// at a time; a nested describe replaces the enclosing one.
func (p *Parser) ParseSource(source string) []domain.ParsedTest {
	var tests []domain.ParsedTest
	var st scanState

	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.Contains(trimmed, "{") {
			st.depth++
		}
		if strings.Contains(trimmed, "}") {
			st.depth--
		}

		if m := describePattern.FindStringSubmatch(trimmed); m != nil {
			st.group = m[1]
			st.inGroup = true
			st.groupDepth = st.depth
		}

		if m := testPattern.FindStringSubmatch(trimmed); m != nil {
			test := domain.ParsedTest{Name: m[1]}
			if st.inGroup {
				test.Name = st.group + GroupSeparator + m[1]
				test.GroupName = st.group
			}
			tests = append(tests, test)
		}

		// A group opened at depth 0 is never closed by depth tracking.
		if st.groupDepth > 0 && st.depth < st.groupDepth {
			st.group = ""
			st.inGroup = false
			st.groupDepth = 0
		}
	}

	return tests
}

// FindTestCases returns the display names of all tests declared in source
func (p *Parser) FindTestCases(source string) []string {
	tests := p.ParseSource(source)
	names := make([]string, 0, len(tests))
	for _, t := range tests {
		names = append(names, t.Name)
	}
	return names
}
