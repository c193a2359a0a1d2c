package impact

import (
	"context"
	"errors"
	"sort"

	"commit-impact/internal/domain"
)

var errUnreadable = errors.New("unreadable object")

type fakeCommit struct {
	parent  string
	files   map[string]string
	changes []domain.ChangedFile
}

// fakeRepo is an in-memory Repository keyed by commit id
type fakeRepo struct {
	commits    map[string]fakeCommit
	aliases    map[string]string
	unreadable map[string]bool
	onRead     func() // called before every ContentAt
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		commits:    make(map[string]fakeCommit),
		aliases:    make(map[string]string),
		unreadable: make(map[string]bool),
	}
}

func (r *fakeRepo) commit(id, parent string, files map[string]string, changes ...domain.ChangedFile) {
	r.commits[id] = fakeCommit{parent: parent, files: files, changes: changes}
}

func (r *fakeRepo) ResolveCommit(_ context.Context, ref string) (string, bool, error) {
	if _, ok := r.commits[ref]; ok {
		return ref, true, nil
	}
	id, ok := r.aliases[ref]
	return id, ok, nil
}

func (r *fakeRepo) ChangedFiles(_ context.Context, commit string) (domain.CommitDiff, error) {
	c := r.commits[commit]
	return domain.CommitDiff{Files: c.changes, Parent: c.parent}, nil
}

func (r *fakeRepo) ContentAt(ctx context.Context, revision, path string) (string, bool, error) {
	if r.onRead != nil {
		r.onRead()
	}
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if r.unreadable[revision+":"+path] {
		return "", false, errUnreadable
	}
	c, ok := r.commits[revision]
	if !ok {
		return "", false, nil
	}
	content, ok := c.files[path]
	return content, ok, nil
}

func (r *fakeRepo) ListFiles(_ context.Context, revision string) ([]string, error) {
	var files []string
	for p := range r.commits[revision].files {
		files = append(files, p)
	}
	sort.Strings(files)
	return files, nil
}

func added(path string) domain.ChangedFile {
	return domain.ChangedFile{Path: path, Status: domain.StatusAdded}
}

func modified(path string) domain.ChangedFile {
	return domain.ChangedFile{Path: path, Status: domain.StatusModified}
}

func deleted(path string) domain.ChangedFile {
	return domain.ChangedFile{Path: path, Status: domain.StatusDeleted}
}

func record(kind domain.ImpactKind, file, test string) domain.ImpactRecord {
	return domain.ImpactRecord{Kind: kind, FilePath: file, TestName: test}
}
