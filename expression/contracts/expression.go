package contracts

// IExpression restyles outgoing text in a character's voice. It only
// sees the text it is given: implementations must not change meaning,
// reorder content, or consult any pipeline state.
type IExpression interface {
	ID() string
	DisplayName() string
	Format(text string, context map[string]string) string
}
