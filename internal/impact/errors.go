package impact

import "errors"

var (
	// ErrCommitNotFound is returned when a commit reference matches no commit
	ErrCommitNotFound = errors.New("commit not found")
	// ErrRepoNotDirectory is returned when the repository path is not a directory
	ErrRepoNotDirectory = errors.New("repo path is not a directory")
)
