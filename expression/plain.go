package expression

import "github.com/uthuyomi/ai-workbench/expression/contracts"

// PlainExpression passes text through untouched.
type PlainExpression struct{}

func NewPlainExpression() contracts.IExpression {
	return &PlainExpression{}
}

func (e *PlainExpression) ID() string {
	return "plain"
}

func (e *PlainExpression) DisplayName() string {
	return "Plain"
}

func (e *PlainExpression) Format(text string, _ map[string]string) string {
	return text
}
