package vcs

import (
	"errors"
	"fmt"
)

// WrappedError provides additional context for git errors
type WrappedError struct {
	Op      string // Operation that failed
	Path    string // File path if applicable
	Err     error  // Original error
	Context string // Additional context
}

func (e *WrappedError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
	}
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Context, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *WrappedError) Unwrap() error {
	return e.Err
}

// Git operation errors
var (
	ErrOpenRepository = errors.New("failed to open repository")
	ErrReadCommit     = errors.New("failed to read commit")
	ErrReadTree       = errors.New("failed to read tree")
	ErrReadBlob       = errors.New("failed to read file content")
)

func wrapError(op, context string, err error) error {
	return &WrappedError{
		Op:      op,
		Context: context,
		Err:     err,
	}
}
