package expression

import (
	"fmt"
	"sort"

	"github.com/uthuyomi/ai-workbench/expression/contracts"
)

// Registry is a lookup table from expression id to implementation. It
// holds no default and makes no choices; selecting a character is the
// caller's concern.
type Registry struct {
	expressions map[string]contracts.IExpression
}

func NewRegistry() *Registry {
	return &Registry{expressions: make(map[string]contracts.IExpression)}
}

// NewDefaultRegistry returns a registry with the built-in characters
// registered.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	// Built-in ids are distinct, so registration cannot fail.
	_ = registry.Register(NewPlainExpression())
	_ = registry.Register(NewNitoriExpression())
	return registry
}

// Register adds an expression under its own id. Registering the same id
// twice is an error.
func (r *Registry) Register(expr contracts.IExpression) error {
	id := expr.ID()
	if _, exists := r.expressions[id]; exists {
		return fmt.Errorf("expression already registered: %s", id)
	}
	r.expressions[id] = expr
	return nil
}

// Get returns the expression registered under id, or an error if none is.
func (r *Registry) Get(id string) (contracts.IExpression, error) {
	expr, ok := r.expressions[id]
	if !ok {
		return nil, fmt.Errorf("expression not found: %s", id)
	}
	return expr, nil
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.expressions))
	for id := range r.expressions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsRegistered reports whether an expression exists under id.
func (r *Registry) IsRegistered(id string) bool {
	_, ok := r.expressions[id]
	return ok
}
