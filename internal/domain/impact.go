package domain

// ImpactKind classifies how a commit affected a single test case
type ImpactKind string

const (
	ImpactAdded    ImpactKind = "added"
	ImpactRemoved  ImpactKind = "removed"
	ImpactModified ImpactKind = "modified"
)

// ImpactRecord is one observable effect of a commit on one test case
type ImpactRecord struct {
	Kind     ImpactKind `json:"kind"`
	FilePath string     `json:"file"`
	TestName string     `json:"test_name"`
}

// Key returns the identity used for deduplication: (kind, file, test name)
func (r ImpactRecord) Key() string {
	return string(r.Kind) + "\t" + r.FilePath + "\t" + r.TestName
}
