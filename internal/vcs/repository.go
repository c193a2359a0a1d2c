// Package vcs reads commits, trees and file contents from a local git
// repository using go-git.
package vcs

import (
	"context"
	"errors"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/go-git/go-billy/v6/osfs"
	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/cache"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/plumbing/storer"
	"github.com/go-git/go-git/v6/storage/filesystem"
	"github.com/go-git/go-git/v6/utils/merkletrie"

	"commit-impact/internal/domain"
)

// maxCommitScan bounds the commit walk used for abbreviated id lookups
const maxCommitScan = 10000

// fullIDLength is the length of a hex SHA-1 commit id
const fullIDLength = 40

var hexIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{6,40}$`)

// Repository is a read-only view of a git repository on disk.
// go-git object storage is not safe for concurrent use, so reads are serialised.
type Repository struct {
	mu      sync.Mutex
	repo    *git.Repository
	storage *filesystem.Storage

	WorkDir string
}

// Open opens the git repository containing workDir. workDir may be a
// subdirectory of the worktree, a linked worktree or a submodule checkout.
func Open(workDir string) (*Repository, error) {
	worktree := osfs.New(workDir)

	// A plain checkout root opens straight from its .git directory.
	if fi, err := worktree.Stat(git.GitDirName); err == nil && fi.IsDir() {
		dotGit, err := worktree.Chroot(git.GitDirName)
		if err != nil {
			return nil, wrapError("open", workDir, ErrOpenRepository)
		}

		s := filesystem.NewStorageWithOptions(dotGit, cache.NewObjectLRUDefault(), filesystem.Options{KeepDescriptors: true})
		repo, err := git.Open(s, worktree)
		if err != nil {
			_ = s.Close()
			return nil, &WrappedError{Op: "open", Path: workDir, Err: errors.Join(ErrOpenRepository, err)}
		}
		return &Repository{repo: repo, storage: s, WorkDir: workDir}, nil
	}

	// Otherwise let go-git walk up to the enclosing .git and follow gitdir files.
	repo, err := git.PlainOpenWithOptions(workDir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return nil, &WrappedError{Op: "open", Path: workDir, Err: errors.Join(ErrOpenRepository, err)}
	}

	s, _ := repo.Storer.(*filesystem.Storage)
	return &Repository{repo: repo, storage: s, WorkDir: workDir}, nil
}

// Close releases file descriptors held by the object storage
func (r *Repository) Close() error {
	if r.storage == nil {
		return nil
	}
	return r.storage.Close()
}

// ResolveCommit resolves ref to a full commit id.
//
// An abbreviated hex id is first looked up in the reachable history: a unique
// prefix match wins, and an ambiguous prefix is never handed to go-git, which
// would silently pick one of the candidates. Anything else git can resolve
// (full id, branch, tag, HEAD~1) is tried next, then a suffix match over the
// history; several suffix matches return the first one found. The boolean is
// false when nothing matches.
func (r *Repository) ResolveCommit(ctx context.Context, ref string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	isHex := hexIDPattern.MatchString(ref)

	var ids []string
	ambiguous := false
	if isHex && len(ref) < fullIDLength {
		var err error
		if ids, err = r.commitIDs(ctx); err != nil {
			return "", false, err
		}
		var id string
		id, ambiguous = matchPrefix(ids, ref)
		if id != "" {
			return id, true, nil
		}
	}

	if !ambiguous {
		if h, err := r.repo.ResolveRevision(plumbing.Revision(ref)); err == nil {
			if c, err := r.repo.CommitObject(*h); err == nil {
				return c.Hash.String(), true, nil
			}
		}
	}

	if !isHex {
		return "", false, nil
	}

	if ids == nil {
		var err error
		if ids, err = r.commitIDs(ctx); err != nil {
			return "", false, err
		}
	}

	if id := matchSuffix(ids, ref); id != "" {
		return id, true, nil
	}
	return "", false, nil
}

// matchPrefix returns the only id starting with ref. ambiguous is true when
// more than one id does.
func matchPrefix(ids []string, ref string) (id string, ambiguous bool) {
	ref = strings.ToLower(ref)
	for _, candidate := range ids {
		if !strings.HasPrefix(candidate, ref) {
			continue
		}
		if id != "" {
			return "", true
		}
		id = candidate
	}
	return id, false
}

// matchSuffix returns the first id ending with ref
func matchSuffix(ids []string, ref string) string {
	ref = strings.ToLower(ref)
	for _, id := range ids {
		if strings.HasSuffix(id, ref) {
			return id
		}
	}
	return ""
}

// commitIDs walks history reachable from every reference, newest first
func (r *Repository) commitIDs(ctx context.Context) ([]string, error) {
	iter, err := r.repo.Log(&git.LogOptions{All: true})
	if err != nil {
		return nil, wrapError("log", err.Error(), ErrReadCommit)
	}
	defer iter.Close()

	seen := make(map[string]struct{})
	var ids []string

	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		id := c.Hash.String()
		if _, ok := seen[id]; ok {
			return nil
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
		if len(ids) >= maxCommitScan {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// ChangedFiles lists the paths added, modified or deleted by commit relative
// to its first parent. A root commit is compared with the empty tree.
func (r *Repository) ChangedFiles(ctx context.Context, commit string) (domain.CommitDiff, error) {
	if err := ctx.Err(); err != nil {
		return domain.CommitDiff{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.commitAt(commit)
	if err != nil {
		return domain.CommitDiff{}, &WrappedError{Op: "changed_files", Context: commit, Err: errors.Join(ErrReadCommit, err)}
	}

	tree, err := c.Tree()
	if err != nil {
		return domain.CommitDiff{}, &WrappedError{Op: "changed_files", Context: commit, Err: errors.Join(ErrReadTree, err)}
	}

	var diff domain.CommitDiff
	var parentTree *object.Tree

	if c.NumParents() > 0 {
		parent, err := c.Parent(0)
		if err != nil {
			return domain.CommitDiff{}, &WrappedError{Op: "changed_files", Context: commit, Err: errors.Join(ErrReadCommit, err)}
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return domain.CommitDiff{}, &WrappedError{Op: "changed_files", Context: parent.Hash.String(), Err: errors.Join(ErrReadTree, err)}
		}
		diff.Parent = parent.Hash.String()
	}

	changes, err := object.DiffTreeWithOptions(ctx, parentTree, tree, nil)
	if err != nil {
		return domain.CommitDiff{}, &WrappedError{Op: "changed_files", Context: commit, Err: errors.Join(ErrReadTree, err)}
	}

	for _, ch := range changes {
		action, err := ch.Action()
		if err != nil {
			return domain.CommitDiff{}, &WrappedError{Op: "changed_files", Context: commit, Err: errors.Join(ErrReadTree, err)}
		}

		switch action {
		case merkletrie.Insert:
			diff.Files = append(diff.Files, domain.ChangedFile{Path: ch.To.Name, Status: domain.StatusAdded})
		case merkletrie.Delete:
			diff.Files = append(diff.Files, domain.ChangedFile{Path: ch.From.Name, Status: domain.StatusDeleted})
		case merkletrie.Modify:
			diff.Files = append(diff.Files, domain.ChangedFile{Path: ch.To.Name, Status: domain.StatusModified})
		}
	}

	slices.SortStableFunc(diff.Files, func(a, b domain.ChangedFile) int {
		return strings.Compare(a.Path, b.Path)
	})

	return diff, nil
}

// ContentAt returns the content of path at revision. The boolean is false
// when the revision or the file does not exist.
func (r *Repository) ContentAt(ctx context.Context, revision, path string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tree, ok := r.treeAt(revision)
	if !ok {
		return "", false, nil
	}

	f, err := tree.File(path)
	if errors.Is(err, object.ErrFileNotFound) || errors.Is(err, object.ErrDirectoryNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &WrappedError{Op: "content_at", Path: revision + ":" + path, Err: errors.Join(ErrReadBlob, err)}
	}

	content, err := f.Contents()
	if err != nil {
		return "", false, &WrappedError{Op: "content_at", Path: revision + ":" + path, Err: errors.Join(ErrReadBlob, err)}
	}

	return content, true, nil
}

// ListFiles returns every tracked file path at revision
func (r *Repository) ListFiles(ctx context.Context, revision string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tree, ok := r.treeAt(revision)
	if !ok {
		return nil, wrapError("list_files", revision, ErrReadTree)
	}

	var files []string
	err := tree.Files().ForEach(func(f *object.File) error {
		files = append(files, f.Name)
		return nil
	})
	if err != nil {
		return nil, &WrappedError{Op: "list_files", Context: revision, Err: errors.Join(ErrReadTree, err)}
	}

	return files, nil
}

func (r *Repository) commitAt(revision string) (*object.Commit, error) {
	h, err := r.repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return nil, err
	}
	return r.repo.CommitObject(*h)
}

func (r *Repository) treeAt(revision string) (*object.Tree, bool) {
	c, err := r.commitAt(revision)
	if err != nil {
		return nil, false
	}
	tree, err := c.Tree()
	if err != nil {
		return nil, false
	}
	return tree, true
}
