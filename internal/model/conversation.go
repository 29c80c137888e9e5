package model

// Role identifies the author of a conversation turn.
type Role string

const (
	// RoleUser marks a turn written by the user.
	RoleUser Role = "user"
	// RoleAssistant marks a turn written by the assistant.
	RoleAssistant Role = "assistant"
)

// ExecutedAction records a mutation the assistant performed on a prior turn.
// The resolver reads these to resolve references like "delete it".
type ExecutedAction struct {
	Action string
	Entity string
	ID     string
}

// Turn is a single entry in the conversation history.
type Turn struct {
	Role            Role
	Content         string
	ExecutedActions []ExecutedAction
}

// LastExecutedID walks history newest-first and returns the id of the most
// recently executed action, or empty if none was recorded.
func LastExecutedID(history []Turn) string {
	for i := len(history) - 1; i >= 0; i-- {
		actions := history[i].ExecutedActions
		for j := len(actions) - 1; j >= 0; j-- {
			if actions[j].ID != "" {
				return actions[j].ID
			}
		}
	}
	return ""
}
