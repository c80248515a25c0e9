package chat

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat bubble. Timestamp is unique within a conversation and
// identifies the assistant placeholder that fragments are folded into.
type Message struct {
	Role      Role   `json:"role"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
	Streaming bool   `json:"streaming,omitempty"`
}

type State struct {
	Messages []Message `json:"messages"`
	Typing   bool      `json:"typing"`
}

type SendRequest struct {
	Message string `json:"message"`
	// Context overrides the label derived from the current lesson selection.
	Context string `json:"context,omitempty"`
}
