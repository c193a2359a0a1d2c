package execution

import "context"

// FetchFunc loads the content of one path. The boolean is false when the
// path has no content (for example it does not exist at the revision).
type FetchFunc func(ctx context.Context, path string) (string, bool, error)

// FetchResult is the outcome of fetching a single path
type FetchResult struct {
	Path    string
	Content string
	Found   bool
}

// Fetcher fetches content for many paths. Results are in input order.
type Fetcher interface {
	Fetch(ctx context.Context, paths []string, fetch FetchFunc) ([]FetchResult, error)
}

// Progress is told the total up front and receives one tick per completed fetch
type Progress interface {
	Start(total int)
	Add(n int)
	Finish()
}
