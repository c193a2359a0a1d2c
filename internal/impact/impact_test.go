package impact_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commit-impact/internal/domain"
	"commit-impact/internal/impact"
	"commit-impact/internal/vcs/vcstest"
)

func TestResolveImpact(t *testing.T) {
	r := vcstest.New(t)
	r.Write("helpers/auth.ts", "export async function login(page) {}\n")
	r.Write("specs/login.spec.ts", `import { test } from '@playwright/test';
import { login } from "../helpers/auth";

test.describe('auth', () => {
  test('logs in', async (ctx) => {
    await login(ctx.page);
  });
  test('logs out', async (ctx) => {
    await login(ctx.page);
  });
});
`)
	r.Write("specs/legacy.spec.ts", "test('old flow', async () => {});\n")
	r.Commit("Initial commit")

	r.Write("helpers/auth.ts", "export async function login(page, user) {}\n")
	r.Write("specs/checkout.spec.ts", "test('pays with card', async () => {});\ntest('pays with wallet', async () => {});\n")
	r.Remove("specs/legacy.spec.ts")
	head := r.Commit("Checkout specs")

	result, err := impact.ResolveImpact(context.Background(), r.Dir, head[:7], impact.Options{Workers: 2})
	require.NoError(t, err)

	assert.Equal(t, head, result.Commit)
	assert.NotEmpty(t, result.Parent)
	assert.Equal(t, []domain.ImpactRecord{
		{Kind: domain.ImpactAdded, FilePath: "specs/checkout.spec.ts", TestName: "pays with card"},
		{Kind: domain.ImpactAdded, FilePath: "specs/checkout.spec.ts", TestName: "pays with wallet"},
		{Kind: domain.ImpactRemoved, FilePath: "specs/legacy.spec.ts", TestName: "old flow"},
		{Kind: domain.ImpactModified, FilePath: "specs/login.spec.ts", TestName: "auth > logs in"},
		{Kind: domain.ImpactModified, FilePath: "specs/login.spec.ts", TestName: "auth > logs out"},
	}, result.Records)

	t.Run("repo path inside the worktree", func(t *testing.T) {
		nested, err := impact.ResolveImpact(context.Background(), filepath.Join(r.Dir, "specs"), head, impact.Options{})
		require.NoError(t, err)
		assert.Equal(t, result.Records, nested.Records)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := impact.ResolveImpact(ctx, r.Dir, head, impact.Options{})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("unknown commit", func(t *testing.T) {
		_, err := impact.ResolveImpact(context.Background(), r.Dir, "ffffff0", impact.Options{})
		require.ErrorIs(t, err, impact.ErrCommitNotFound)
	})
}

func TestResolveImpact_InvalidRepoPath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := impact.ResolveImpact(context.Background(), file, "HEAD", impact.Options{})
	require.ErrorIs(t, err, impact.ErrRepoNotDirectory)

	_, err = impact.ResolveImpact(context.Background(), filepath.Join(t.TempDir(), "missing"), "HEAD", impact.Options{})
	require.ErrorIs(t, err, impact.ErrRepoNotDirectory)
}
