package expression

import (
	"strings"

	"github.com/uthuyomi/ai-workbench/expression/contracts"
)

// NitoriExpression frames text in a light conversational tone. It adds
// a short lead-in and a soft closing, nothing else: the wrapped text is
// carried verbatim between them.
type NitoriExpression struct{}

func NewNitoriExpression() contracts.IExpression {
	return &NitoriExpression{}
}

func (e *NitoriExpression) ID() string {
	return "nitori"
}

func (e *NitoriExpression) DisplayName() string {
	return "河城にとり"
}

func (e *NitoriExpression) Format(text string, _ map[string]string) string {
	if text == "" {
		return text
	}

	const prefix = "ちょっと見てみたけど、"
	const suffix = "…って感じかな。"

	var formatted string
	// Multi-line text reads better with the lead-in on its own line.
	if strings.Contains(text, "\n") {
		formatted = prefix + "\n" + text
	} else {
		formatted = prefix + text
	}

	if !hasClosingPunctuation(formatted) {
		formatted += suffix
	}
	return formatted
}

func hasClosingPunctuation(text string) bool {
	for _, ending := range []string{"。", "！", "?", "？"} {
		if strings.HasSuffix(text, ending) {
			return true
		}
	}
	return false
}
