package copilot

// Role is the author of a chat message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one turn of a conversation, sent to the bridge in order
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// StatusResponse describes the running bridge
type StatusResponse struct {
	Status         string `json:"status"`
	Port           int    `json:"port"`
	DefaultModel   string `json:"defaultModel"`
	RequestsServed int64  `json:"requestsServed"`
	Version        string `json:"version"`
}

// ModelInfo is a model the bridge can route chat requests to
type ModelInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Vendor         string `json:"vendor"`
	Family         string `json:"family"`
	Version        string `json:"version"`
	MaxInputTokens int    `json:"maxInputTokens"`
}

// ChatResponse is the structured reply of a non-streamed chat
type ChatResponse struct {
	ID      int64  `json:"id"`
	Model   string `json:"model"`
	Content string `json:"content"`
}

type modelsResponse struct {
	Models []ModelInfo `json:"models"`
}

// chatRequest is the JSON body of POST /chat and POST /chat/stream
type chatRequest struct {
	Messages     []ChatMessage `json:"messages"`
	Model        string        `json:"model,omitempty"`
	Vendor       string        `json:"vendor,omitempty"`
	SystemPrompt string        `json:"systemPrompt,omitempty"`
}

// streamEvent is the payload of a single "data: " line
type streamEvent struct {
	Content *string `json:"content,omitempty"`
	Done    bool    `json:"done,omitempty"`
	Error   *string `json:"error,omitempty"`
}
