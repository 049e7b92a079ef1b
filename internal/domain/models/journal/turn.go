package journal

// Roles for conversation turns. These are the only roles that cross the
// wire; the system instruction is attached relay-side and never appears
// in a client transcript.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single unit in a conversation transcript, owned by the
// conversation client for the lifetime of a session and never persisted.
// DisplayTimestamp and IsError are presentation-only and are stripped
// before a transcript is sent to the relay.
type Turn struct {
	Role             string `json:"role"`
	Content          string `json:"content"`
	DisplayTimestamp string `json:"displayTimestamp,omitempty"`
	IsError          bool   `json:"isError,omitempty"`
}

// Message is the wire form of a turn: role and content only.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Usage carries the provider-reported token accounting for one reply.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Reply is a successful relay response as seen by a conversation client.
type Reply struct {
	Message string
	Usage   Usage
}
