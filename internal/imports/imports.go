// Package imports finds relative import references in JS/TS source and
// resolves them to repository-relative module keys.
package imports

import (
	"path"
	"regexp"
	"strings"
)

// SourceSuffixes are stripped when turning a path into a module key
var SourceSuffixes = []string{".ts", ".tsx", ".js", ".jsx"}

var referencePatterns = []*regexp.Regexp{
	// import { x } from '../helpers/auth'
	regexp.MustCompile("from\\s+['\"`]([^'\"`]+)['\"`]"),
	// import './setup'
	regexp.MustCompile("import\\s+['\"`]([^'\"`]+)['\"`]"),
	// require('./fixtures')
	regexp.MustCompile("require\\s*\\(\\s*['\"`]([^'\"`]+)['\"`]\\s*\\)"),
}

// ExtractRelativeReferences returns every relative import reference in source.
// Duplicates are kept; package-root references are dropped.
func ExtractRelativeReferences(source string) []string {
	var refs []string
	for _, re := range referencePatterns {
		for _, m := range re.FindAllStringSubmatch(source, -1) {
			if strings.HasPrefix(m[1], ".") {
				refs = append(refs, m[1])
			}
		}
	}
	return refs
}

// Resolve joins ref against the directory of fromFile and returns its module key
func Resolve(fromFile, ref string) string {
	return ModuleKey(path.Join(path.Dir(fromFile), ref))
}

// ModuleKey normalises a repository path and strips a known source suffix
func ModuleKey(p string) string {
	p = path.Clean(p)
	for _, suffix := range SourceSuffixes {
		if strings.HasSuffix(p, suffix) {
			return strings.TrimSuffix(p, suffix)
		}
	}
	return p
}
