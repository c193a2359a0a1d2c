package ui

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commit-impact/internal/config"
	"commit-impact/internal/domain"
)

func init() {
	color.NoColor = true
}

var sampleRecords = []domain.ImpactRecord{
	{Kind: domain.ImpactModified, FilePath: "specs/login.spec.ts", TestName: "auth > logs in"},
	{Kind: domain.ImpactAdded, FilePath: "specs/checkout.spec.ts", TestName: "pays with card"},
	{Kind: domain.ImpactRemoved, FilePath: "specs/legacy.spec.ts", TestName: "old flow"},
	{Kind: domain.ImpactAdded, FilePath: "specs/checkout.spec.ts", TestName: "pays with wallet"},
}

func TestFormatMachine(t *testing.T) {
	assert.Equal(t,
		"modified\tspecs/login.spec.ts\tauth > logs in\n"+
			"added\tspecs/checkout.spec.ts\tpays with card\n"+
			"removed\tspecs/legacy.spec.ts\told flow\n"+
			"added\tspecs/checkout.spec.ts\tpays with wallet",
		FormatMachine(sampleRecords))

	assert.Empty(t, FormatMachine(nil))
}

func TestFormatHuman(t *testing.T) {
	t.Run("groups by kind in fixed order", func(t *testing.T) {
		assert.Equal(t, `2 test(s) added:
  - "pays with card" in specs/checkout.spec.ts
  - "pays with wallet" in specs/checkout.spec.ts
1 test(s) removed:
  - "old flow" in specs/legacy.spec.ts
1 test(s) modified:
  - "auth > logs in" in specs/login.spec.ts`, FormatHuman(sampleRecords))
	})

	t.Run("skips empty sections", func(t *testing.T) {
		out := FormatHuman(sampleRecords[:1])
		assert.Equal(t, "1 test(s) modified:\n  - \"auth > logs in\" in specs/login.spec.ts", out)
	})

	t.Run("no records", func(t *testing.T) {
		assert.Equal(t, "No impacted tests.", FormatHuman(nil))
		assert.Equal(t, "No impacted tests.", FormatHuman([]domain.ImpactRecord{}))
	})
}

func TestFormatter_PrintReport(t *testing.T) {
	report := &domain.ImpactReport{
		Meta:    domain.ImpactReportMeta{Commit: "abc1234", Added: 2, Removed: 1, Modified: 1, Total: 4},
		Records: sampleRecords,
	}

	t.Run("machine", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(&buf).PrintReport(report, config.FormatMachine))
		assert.Equal(t, FormatMachine(sampleRecords)+"\n", buf.String())
	})

	t.Run("human", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(&buf).PrintReport(report, config.FormatHuman))
		assert.Equal(t, FormatHuman(sampleRecords)+"\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(&buf).PrintReport(report, config.FormatJSON))

		var decoded domain.ImpactReport
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "abc1234", decoded.Meta.Commit)
		assert.Equal(t, sampleRecords, decoded.Records)
		assert.Contains(t, buf.String(), `"kind": "added"`)
	})
}

func TestFormatter_PrintTestList(t *testing.T) {
	files := []domain.TestFile{
		{Path: "specs/a.spec.ts", Tests: []domain.ParsedTest{{Name: "g > one", GroupName: "g"}, {Name: "two"}}},
		{Path: "specs/b.spec.ts"},
	}

	t.Run("files only", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintTestList(files, false)
		assert.Equal(t, "Found 2 test file(s):\n\n├── specs/a.spec.ts\n└── specs/b.spec.ts\n", buf.String())
	})

	t.Run("with test cases", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintTestList(files, true)
		assert.Equal(t, "Found 2 test file(s):\n\n"+
			"├── specs/a.spec.ts\n"+
			"│   ├── g > one\n"+
			"│   └── two\n"+
			"└── specs/b.spec.ts\n"+
			"    └── (no test cases found)\n", buf.String())
	})
}
