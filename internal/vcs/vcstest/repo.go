// Package vcstest builds throwaway git repositories for tests.
package vcstest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/stretchr/testify/require"
)

// Repo is an on-disk git repository with a worktree
type Repo struct {
	t  *testing.T
	wt *git.Worktree

	Dir string
}

// New initialises an empty repository in a temporary directory
func New(t *testing.T) *Repo {
	t.Helper()

	dir := t.TempDir()
	dir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	return &Repo{t: t, wt: wt, Dir: dir}
}

// Write creates or overwrites a file and stages it
func (r *Repo) Write(path, content string) {
	r.t.Helper()

	full := filepath.Join(r.Dir, filepath.FromSlash(path))
	require.NoError(r.t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(r.t, os.WriteFile(full, []byte(content), 0644))

	_, err := r.wt.Add(path)
	require.NoError(r.t, err)
}

// Remove deletes a file from the worktree and the index
func (r *Repo) Remove(path string) {
	r.t.Helper()

	_, err := r.wt.Remove(path)
	require.NoError(r.t, err)
}

// Commit records the staged changes and returns the new commit id
func (r *Repo) Commit(message string) string {
	r.t.Helper()

	h, err := r.wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(r.t, err)

	return h.String()
}
