package types

// DraftConversationID is the reserved identifier for the unsaved draft
// conversation. It never appears in the persisted conversation list.
const DraftConversationID = "current"

// Role identifies the author of a chat message.
type Role string

// Message roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Conversation is a summary entry in the conversation list.
type Conversation struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Message is a single entry in a conversation log. Once appended the entry is
// immutable; logs are append-only.
type Message struct {
	Role           Role   `json:"role"`
	Content        string `json:"content"`
	ThoughtProcess string `json:"thoughtProcess,omitempty"` // assistant messages only
}
