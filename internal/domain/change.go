package domain

// ChangeStatus is the add/modify/delete status of a path in a commit
type ChangeStatus string

const (
	StatusAdded    ChangeStatus = "A"
	StatusModified ChangeStatus = "M"
	StatusDeleted  ChangeStatus = "D"
)

// ChangedFile is one path touched by a commit
type ChangedFile struct {
	Path   string
	Status ChangeStatus
}

// CommitDiff holds the changed files of a commit and its first parent.
// Parent is empty for a root commit.
type CommitDiff struct {
	Files  []ChangedFile
	Parent string
}

// HasParent reports whether the commit has a parent to diff against
func (d CommitDiff) HasParent() bool {
	return d.Parent != ""
}
