package copilot

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

var mockModels = []ModelInfo{
	{
		ID:             "copilot-gpt-4o",
		Name:           "GPT-4o",
		Vendor:         "copilot",
		Family:         "gpt-4o",
		Version:        "gpt-4o-2024-11-20",
		MaxInputTokens: 63836,
	},
	{
		ID:             "copilot-claude-3.5-sonnet",
		Name:           "Claude 3.5 Sonnet",
		Vendor:         "copilot",
		Family:         "claude-3.5-sonnet",
		Version:        "claude-3.5-sonnet",
		MaxInputTokens: 81638,
	},
}

const mockDefaultModel = "gpt-4o"

// MockRequest is a request recorded by the mock bridge
type MockRequest struct {
	Method  string
	Path    string
	Header  http.Header
	Payload *chatRequest
}

// Model returns the model field the client sent, empty when omitted
func (r MockRequest) Model() string {
	if r.Payload == nil {
		return ""
	}
	return r.Payload.Model
}

// MockBridge is an in-process HTTP bridge for tests. It serves /status,
// /models, /chat and /chat/stream the way the VS Code extension does and
// records every request.
type MockBridge struct {
	*httptest.Server

	mu          sync.Mutex
	logger      Logger
	models      []ModelInfo
	apiKey      string
	reply       func(messages []ChatMessage) string
	streamBody  string
	streamChunk int
	failures    map[string]int
	requests    []MockRequest
	served      int64
	nextID      int64
}

// NewMockBridgeService starts a mock HTTP bridge that is shut down when the test ends
func NewMockBridgeService(t *testing.T, logger Logger) *MockBridge {
	t.Helper()

	if logger == nil {
		logger = NewLogger(LogLevelError)
	}

	m := &MockBridge{
		logger:      logger,
		models:      append([]ModelInfo(nil), mockModels...),
		reply:       defaultMockReply,
		streamBody:  SSEEvent(map[string]string{"content": "He"}) + SSEEvent(map[string]string{"content": "llo"}) + SSEEvent(map[string]bool{"done": true}),
		streamChunk: 7,
		failures:    map[string]int{},
	}
	m.Server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.Server.Close)
	return m
}

// SSEEvent renders v as one "data: <json>" event terminated by a blank line
func SSEEvent(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("mock bridge: cannot encode event: %v", err))
	}
	return "data: " + string(data) + "\n\n"
}

// SetModels replaces the model list served by GET /models
func (m *MockBridge) SetModels(models []ModelInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.models = models
}

// RequireAPIKey makes every endpoint answer 401 unless the bearer token matches
func (m *MockBridge) RequireAPIKey(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apiKey = key
}

// SetReply changes how POST /chat builds the assistant reply
func (m *MockBridge) SetReply(reply func(messages []ChatMessage) string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reply = reply
}

// SetStreamBody sets the raw event-stream body of POST /chat/stream. The body
// is written in pieces of chunkSize bytes, flushing after each one.
func (m *MockBridge) SetStreamBody(body string, chunkSize int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.streamBody = body
	if chunkSize > 0 {
		m.streamChunk = chunkSize
	}
}

// FailPath makes path answer with the given HTTP status and a JSON error body
func (m *MockBridge) FailPath(path string, statusCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[path] = statusCode
}

// Requests returns a copy of the requests received so far
func (m *MockBridge) Requests() []MockRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockRequest(nil), m.requests...)
}

// LastRequest returns the most recent request, or false when none was made
func (m *MockBridge) LastRequest() (MockRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return MockRequest{}, false
	}
	return m.requests[len(m.requests)-1], true
}

func (m *MockBridge) handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	rec := MockRequest{Method: r.Method, Path: r.URL.Path, Header: r.Header.Clone()}
	if r.Method == http.MethodPost && (r.URL.Path == ChatEndpoint || r.URL.Path == ChatStreamEndpoint) {
		var payload chatRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			m.record(rec)
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON body"})
			return
		}
		rec.Payload = &payload
	}
	m.record(rec)

	m.logger.Debug("Mock bridge: %s %s", r.Method, r.URL.Path)

	m.mu.Lock()
	apiKey := m.apiKey
	failure := m.failures[r.URL.Path]
	m.mu.Unlock()

	if apiKey != "" && r.Header.Get("Authorization") != "Bearer "+apiKey {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}
	if failure != 0 {
		writeJSON(w, failure, map[string]string{"error": http.StatusText(failure)})
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == StatusEndpoint:
		m.handleStatus(w)
	case r.Method == http.MethodGet && r.URL.Path == ModelsEndpoint:
		m.mu.Lock()
		models := m.models
		m.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"models": models})
	case r.Method == http.MethodPost && r.URL.Path == ChatEndpoint:
		m.handleChat(w, rec.Payload)
	case r.Method == http.MethodPost && r.URL.Path == ChatStreamEndpoint:
		m.handleChatStream(w, rec.Payload)
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
	}
}

func (m *MockBridge) record(rec MockRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, rec)
	m.served++
}

func (m *MockBridge) handleStatus(w http.ResponseWriter) {
	m.mu.Lock()
	served := m.served
	m.mu.Unlock()

	port := 0
	if addr, ok := m.Listener.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}
	writeJSON(w, http.StatusOK, StatusResponse{
		Status:         "running",
		Port:           port,
		DefaultModel:   mockDefaultModel,
		RequestsServed: served,
		Version:        CopilotGoVersion,
	})
}

func (m *MockBridge) handleChat(w http.ResponseWriter, payload *chatRequest) {
	if len(payload.Messages) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "messages array is required"})
		return
	}

	m.mu.Lock()
	m.nextID++
	id := m.nextID
	reply := m.reply
	m.mu.Unlock()

	model := payload.Model
	if model == "" {
		model = mockDefaultModel
	}
	writeJSON(w, http.StatusOK, ChatResponse{ID: id, Model: model, Content: reply(payload.Messages)})
}

func (m *MockBridge) handleChatStream(w http.ResponseWriter, payload *chatRequest) {
	if len(payload.Messages) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "messages array is required"})
		return
	}

	m.mu.Lock()
	body := m.streamBody
	chunkSize := m.streamChunk
	m.mu.Unlock()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	for len(body) > 0 {
		n := min(chunkSize, len(body))
		if _, err := w.Write([]byte(body[:n])); err != nil {
			m.logger.Debug("Mock bridge: stream client went away: %v", err)
			return
		}
		body = body[n:]
		if flusher != nil {
			flusher.Flush()
		}
		time.Sleep(time.Millisecond)
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// defaultMockReply echoes the last message, answering JSON requests with a
// fenced JSON object the way chat models tend to
func defaultMockReply(messages []ChatMessage) string {
	last := messages[len(messages)-1].Content
	if strings.Contains(strings.ToLower(last), "json") {
		return "Here you go:\n```json\n{\"name\": \"test\", \"language\": \"python\"}\n```"
	}
	return "Echo: " + last
}
