package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uthuyomi/ai-workbench/domain"
)

func TestRenderDiff_WritesEverySection(t *testing.T) {
	diff := &domain.Diff{
		ProjectID: "proj-1",
		Files: []domain.DiffFile{
			{Path: "main.go", Before: "package main", After: "package main // updated"},
			{Path: "notes.md", Before: "old notes", After: "new notes"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderDiff(&buf, diff, "dracula"))

	output := buf.String()
	assert.Contains(t, output, "main.go")
	assert.Contains(t, output, "notes.md")
	assert.Contains(t, output, "BEFORE")
	assert.Contains(t, output, "AFTER")
	assert.Contains(t, output, "updated")
}

func TestRenderMarkdown_PreservesDiffLinesInCodeBlocks(t *testing.T) {
	content := "```go\n+added line\n-removed line\n```"

	var buf bytes.Buffer
	require.NoError(t, RenderMarkdown(&buf, content, "go", "dracula"))

	output := buf.String()
	assert.Contains(t, output, "+added line")
	assert.Contains(t, output, "-removed line")
}

func TestLanguageFromExtension(t *testing.T) {
	assert.Equal(t, "go", languageFromExtension("cmd/main.go"))
	assert.Equal(t, "python", languageFromExtension("app.py"))
	assert.Equal(t, "markdown", languageFromExtension("LICENSE"))
}
