package expression

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(NewPlainExpression()))

	expr, err := registry.Get("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", expr.ID())
	assert.True(t, registry.IsRegistered("plain"))
}

func TestRegistry_DuplicateRegistrationFails(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(NewPlainExpression()))

	err := registry.Register(NewPlainExpression())
	assert.ErrorContains(t, err, "already registered")
}

func TestRegistry_UnknownLookupFails(t *testing.T) {
	registry := NewRegistry()

	expr, err := registry.Get("ghost")
	assert.Nil(t, expr)
	assert.ErrorContains(t, err, "not found")
}

func TestNewDefaultRegistry(t *testing.T) {
	registry := NewDefaultRegistry()

	assert.Equal(t, []string{"nitori", "plain"}, registry.IDs())
}

func TestPlainExpression_Identity(t *testing.T) {
	expr := NewPlainExpression()

	assert.Equal(t, "unchanged text", expr.Format("unchanged text", nil))
	assert.Equal(t, "", expr.Format("", nil))
}

func TestNitoriExpression_FramesText(t *testing.T) {
	expr := NewNitoriExpression()

	formatted := expr.Format("the index has 3 files", nil)

	// The original text is carried verbatim between the framing.
	assert.Contains(t, formatted, "the index has 3 files")
	assert.True(t, strings.HasPrefix(formatted, "ちょっと見てみたけど、"))
	assert.True(t, strings.HasSuffix(formatted, "…って感じかな。"))
}

func TestNitoriExpression_MultilineLeadInOnOwnLine(t *testing.T) {
	expr := NewNitoriExpression()

	formatted := expr.Format("line one\nline two", nil)
	assert.True(t, strings.HasPrefix(formatted, "ちょっと見てみたけど、\nline one"))
}

func TestNitoriExpression_KeepsExistingClosing(t *testing.T) {
	expr := NewNitoriExpression()

	formatted := expr.Format("もう終わった。", nil)
	assert.False(t, strings.HasSuffix(formatted, "…って感じかな。"))
	assert.True(t, strings.HasSuffix(formatted, "。"))
}

func TestNitoriExpression_EmptyPassthrough(t *testing.T) {
	expr := NewNitoriExpression()

	assert.Equal(t, "", expr.Format("", nil))
}
