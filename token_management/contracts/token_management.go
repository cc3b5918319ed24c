package contracts

// ITokenManagement accumulates token usage reported by the chat
// providers over a session and prices it against the embedded model
// table.
type ITokenManagement interface {
	UsedTokens(inputToken int, outputToken int)
	CalculateCost(modelName string, inputToken int, outputToken int) float64
	DisplayTokens(chatModel string)
	GetCurrentTokenUsage() (total int, input int, output int)
	ClearToken()
}
