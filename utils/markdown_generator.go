package utils

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/uthuyomi/ai-workbench/constants/lipgloss"
	"github.com/uthuyomi/ai-workbench/domain"
)

// RenderMarkdown writes content with syntax highlighting. Inside fenced
// code blocks, added and removed lines get plain green and red instead
// of the highlighter so diff hunks stay readable.
func RenderMarkdown(w io.Writer, content string, language string, theme string) error {
	isCodeBlock := false

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "```") {
			isCodeBlock = !isCodeBlock
		}

		if strings.HasPrefix(line, "+") && isCodeBlock {
			fmt.Fprint(w, "\x1b[92m"+line+"\x1b[0m\n")
		} else if strings.HasPrefix(line, "-") && isCodeBlock {
			fmt.Fprint(w, "\x1b[91m"+line+"\x1b[0m\n")
		} else {
			if err := quick.Highlight(w, line+"\n", language, "terminal256", theme); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderDiff writes a diff proposal file by file: header, current
// content, then the proposed replacement, both highlighted by the
// file's language.
func RenderDiff(w io.Writer, diff *domain.Diff, theme string) error {
	for _, file := range diff.Files {
		fmt.Fprintln(w, lipgloss.Blue.Render(fmt.Sprintf("--- %s ---", file.Path)))

		language := languageFromExtension(file.Path)

		fmt.Fprintln(w, lipgloss.Gray.Render("<<< BEFORE >>>"))
		if err := quick.Highlight(w, file.Before+"\n", language, "terminal256", theme); err != nil {
			return err
		}

		fmt.Fprintln(w, lipgloss.Gray.Render("<<< AFTER >>>"))
		if err := quick.Highlight(w, file.After+"\n", language, "terminal256", theme); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

// languageFromExtension maps a file extension to a chroma lexer name.
// Unknown extensions fall back to plain markdown rendering.
func languageFromExtension(filePath string) string {
	switch path.Ext(filePath) {
	case ".go":
		return "go"
	case ".py":
		return "python"
	case ".js", ".jsx":
		return "javascript"
	case ".ts", ".tsx":
		return "typescript"
	case ".java":
		return "java"
	case ".cs":
		return "csharp"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".md":
		return "markdown"
	default:
		return "markdown"
	}
}
