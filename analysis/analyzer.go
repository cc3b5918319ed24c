// Package analysis is the enrichment stage that fills the structural
// fields the scanner leaves empty: language, imports and exports per
// file, plus dependency edges between indexed files. Extraction runs
// tree-sitter queries per language; files in languages without a grammar
// only get a language tag.
package analysis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"go.uber.org/zap"

	"github.com/uthuyomi/ai-workbench/analysis/contracts"
	"github.com/uthuyomi/ai-workbench/domain"
	"github.com/uthuyomi/ai-workbench/embed_data"
)

// CodeAnalyzer extracts structural symbols from workspace files.
type CodeAnalyzer struct {
	logger *zap.Logger
}

// NewCodeAnalyzer initializes an analyzer.
func NewCodeAnalyzer(logger *zap.Logger) contracts.ICodeAnalyzer {
	return &CodeAnalyzer{logger: logger}
}

// Enrich reads each indexed file and returns a new index whose entries
// carry language, imports, exports and resolved dependency paths. Files
// that cannot be read keep their original entry; read failures are
// absorbed the same way the scanner absorbs them.
func (a *CodeAnalyzer) Enrich(index *domain.WorkspaceIndex, rootPath string) (*domain.WorkspaceIndex, error) {
	info, err := os.Stat(rootPath)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("analysis root is not a directory: %s", rootPath)
	}

	enriched := make([]domain.WorkspaceFile, 0, len(index.Files))

	for _, wf := range index.Files {
		language := LanguageForPath(wf.Path)

		entry := wf
		entry.Language = language

		source, err := os.ReadFile(filepath.Join(rootPath, filepath.FromSlash(wf.Path)))
		if err != nil {
			a.logger.Info("analysis skipped unreadable file", zap.String("path", wf.Path), zap.Error(err))
			enriched = append(enriched, entry)
			continue
		}

		imports, exports := a.extractSymbols(language, source)
		entry.Imports = imports
		entry.Exports = exports
		enriched = append(enriched, entry)
	}

	resolveDependencies(enriched)

	result := domain.NewWorkspaceIndex(index.ProjectID, enriched)

	a.logger.Info("analysis completed",
		zap.String("project_id", index.ProjectID),
		zap.Int("files", len(result.Files)),
	)

	return result, nil
}

// extractSymbols runs the language's embedded query set over the parsed
// source. Unsupported languages yield no symbols.
func (a *CodeAnalyzer) extractSymbols(language string, source []byte) (imports []string, exports []string) {
	var lang *sitter.Language
	var queryData []byte

	switch language {
	case "go":
		lang = golang.GetLanguage()
		queryData = embed_data.GoQuery
	case "python":
		lang = python.GetLanguage()
		queryData = embed_data.PythonQuery
	case "javascript":
		lang = javascript.GetLanguage()
		queryData = embed_data.JavascriptQuery
	case "typescript":
		lang = typescript.GetLanguage()
		queryData = embed_data.TypescriptQuery
	case "java":
		lang = java.GetLanguage()
		queryData = embed_data.JavaQuery
	case "csharp":
		lang = csharp.GetLanguage()
		queryData = embed_data.CSharpQuery
	default:
		return nil, nil
	}

	queries := make(map[string]string)
	if err := json.Unmarshal(queryData, &queries); err != nil {
		a.logger.Warn("malformed query set", zap.String("language", language), zap.Error(err))
		return nil, nil
	}

	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	tree := parser.Parse(nil, source)

	for tag, queryStr := range queries {
		query, err := sitter.NewQuery([]byte(queryStr), lang)
		if err != nil {
			a.logger.Warn("failed to compile query",
				zap.String("language", language),
				zap.String("tag", tag),
				zap.Error(err),
			)
			continue
		}

		cursor := sitter.NewQueryCursor()
		cursor.Exec(query, tree.RootNode())

		for {
			match, ok := cursor.NextMatch()
			if !ok {
				break
			}
			for _, cap := range match.Captures {
				element := strings.Trim(cap.Node.Content(source), "\"'`")
				if element == "" {
					continue
				}
				switch tag {
				case "import":
					imports = append(imports, element)
				case "export":
					exports = append(exports, element)
				}
			}
		}
	}

	return imports, exports
}

// resolveDependencies links each file's imports to other indexed files.
// Matching is suffix-based on the extension-free path, which covers
// relative imports and module-style paths without reimplementing any
// language's resolver.
func resolveDependencies(files []domain.WorkspaceFile) {
	byStem := make(map[string][]int, len(files))
	for i, f := range files {
		stem := strings.TrimSuffix(f.Path, filepath.Ext(f.Path))
		byStem[stem] = append(byStem[stem], i)
	}

	for i := range files {
		for _, imp := range files[i].Imports {
			cleaned := strings.TrimPrefix(strings.TrimPrefix(imp, "./"), "/")
			cleaned = strings.ReplaceAll(cleaned, ".", "/")
			for stem, indices := range byStem {
				if stem == cleaned || strings.HasSuffix(stem, "/"+cleaned) {
					for _, j := range indices {
						if j != i {
							files[i].Dependencies = append(files[i].Dependencies, files[j].Path)
						}
					}
				}
			}
		}
	}
}

// LanguageForPath maps a file path to a stable language tag. Unknown
// extensions return an empty tag rather than a guess.
func LanguageForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".go":
		return "go"
	case ".py":
		return "python"
	case ".js", ".jsx", ".mjs":
		return "javascript"
	case ".ts", ".tsx":
		return "typescript"
	case ".java":
		return "java"
	case ".cs":
		return "csharp"
	case ".rs":
		return "rust"
	case ".md":
		return "markdown"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".html":
		return "html"
	case ".css":
		return "css"
	case ".sh":
		return "bash"
	default:
		return ""
	}
}
