package impact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commit-impact/internal/execution"
)

func TestFinder_FindImpacted(t *testing.T) {
	repo := newFakeRepo()
	repo.commit("c1", "c0", map[string]string{
		"helpers/auth.ts":          "export const login = () => {};\n",
		"specs/a.spec.ts":          "import { login } from '../helpers/auth';\n",
		"specs/b.spec.ts":          "import '@playwright/test';\nimport { x } from './local';\n",
		"specs/c.spec.ts":          "const auth = require(\"../helpers/auth.js\");\nimport { y } from '../helpers/auth';\n",
		"specs/nested/d.spec.tsx":  "import { login } from '../../helpers/auth.ts';\n",
		"specs/nested/e.spec.tsx":  "import { login } from '../helpers/auth';\n",
		"specs/pages/page.spec.ts": "import { data } from '../../data/users.json';\n",
	})

	candidates := []string{
		"specs/nested/d.spec.tsx",
		"specs/c.spec.ts",
		"specs/missing.spec.ts",
		"specs/b.spec.ts",
		"specs/a.spec.ts",
		"specs/nested/e.spec.tsx",
		"specs/pages/page.spec.ts",
	}

	for _, workers := range []int{1, 3} {
		finder := NewFinder(execution.NewWorkerPool(workers, nil), nil)
		impacted, err := finder.FindImpacted(context.Background(), "c1", []string{"helpers/auth.ts", "data/users.json"}, candidates, repo.ContentAt)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"specs/nested/d.spec.tsx",
			"specs/c.spec.ts",
			"specs/a.spec.ts",
			"specs/pages/page.spec.ts",
		}, impacted)
	}
}

func TestFinder_NothingToDo(t *testing.T) {
	finder := NewFinder(nil, nil)

	impacted, err := finder.FindImpacted(context.Background(), "c1", nil, []string{"a.spec.ts"}, nil)
	require.NoError(t, err)
	assert.Empty(t, impacted)

	impacted, err = finder.FindImpacted(context.Background(), "c1", []string{"helpers/auth.ts"}, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, impacted)
}

func TestFinder_UnreadableFileIsSkipped(t *testing.T) {
	repo := newFakeRepo()
	repo.commit("c1", "c0", map[string]string{
		"a.spec.ts": "import { x } from './util';\n",
		"b.spec.ts": "import { x } from './util';\n",
	})
	repo.unreadable["c1:a.spec.ts"] = true

	impacted, err := NewFinder(nil, nil).FindImpacted(context.Background(), "c1", []string{"util.ts"}, []string{"a.spec.ts", "b.spec.ts"}, repo.ContentAt)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.spec.ts"}, impacted)
}
