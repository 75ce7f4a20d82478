package copilot

import "time"

var (
	BridgeHosts = []string{"127.0.0.1", "localhost"}
	BridgePorts = []int{3741}
)

const (
	CopilotGoVersion   = "0.3.0"
	DefaultBaseURL     = "http://127.0.0.1:3741"
	DefaultGRPCAddress = "127.0.0.1:3742"
	StatusTimeout      = 30 * time.Second  // status and model listing
	ChatTimeout        = 300 * time.Second // chat, chat_full and streaming
	StatusEndpoint     = "/status"
	ModelsEndpoint     = "/models"
	ChatEndpoint       = "/chat"
	ChatStreamEndpoint = "/chat/stream"
	RequestIDHeader    = "X-Request-Id"
	RequestIDMetadata  = "x-request-id" // gRPC metadata keys are lower case
	ParsePreviewLimit  = 500
	sseReadChunkSize   = 1024
)
