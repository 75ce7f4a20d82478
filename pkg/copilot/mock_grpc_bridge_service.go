package copilot

import (
	"context"
	"net"
	"sync"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/inansen/copilot-bridge-client/pkg/copilot/bridgepb"
)

const bufconnSize = 1 << 20

// MockGRPCBridge serves CopilotBridgeService over an in-memory listener
type MockGRPCBridge struct {
	bridgepb.UnimplementedCopilotBridgeServiceServer

	mu         sync.Mutex
	logger     Logger
	listener   *bufconn.Listener
	server     *grpc.Server
	models     []ModelInfo
	reply      func(messages []ChatMessage) string
	chunks     []*bridgepb.ChatChunk
	failures   map[string]codes.Code
	requests   []*bridgepb.ChatRequest
	requestIDs []string
	served     int64
	nextID     int64
}

// NewMockGRPCBridgeService starts a mock gRPC bridge that is stopped when the test ends
func NewMockGRPCBridgeService(t *testing.T, logger Logger) *MockGRPCBridge {
	t.Helper()

	if logger == nil {
		logger = NewLogger(LogLevelError)
	}

	m := &MockGRPCBridge{
		logger:   logger,
		listener: bufconn.Listen(bufconnSize),
		server:   grpc.NewServer(),
		models:   append([]ModelInfo(nil), mockModels...),
		reply:    defaultMockReply,
		chunks:   []*bridgepb.ChatChunk{{Content: "He"}, {Content: "llo"}, {Done: true}},
		failures: map[string]codes.Code{},
	}
	bridgepb.RegisterCopilotBridgeServiceServer(m.server, m)

	go func() {
		if err := m.server.Serve(m.listener); err != nil {
			logger.Debug("Mock gRPC bridge stopped: %v", err)
		}
	}()
	t.Cleanup(m.server.Stop)
	return m
}

// MockGRPCAddress is the target to dial together with MockGRPCBridge.ClientOption
const MockGRPCAddress = "passthrough:///bufnet"

// ClientOption routes a GRPCClient's connections to the in-memory listener
func (m *MockGRPCBridge) ClientOption() ClientOption {
	dialer := func(ctx context.Context, _ string) (net.Conn, error) {
		return m.listener.DialContext(ctx)
	}
	return WithDialOptions(grpc.WithContextDialer(dialer))
}

// NewClient returns a GRPCClient dialing the in-memory listener
func (m *MockGRPCBridge) NewClient(t *testing.T, opts ...ClientOption) *GRPCClient {
	t.Helper()

	client, err := NewGRPCClient(MockGRPCAddress, m.logger, append(opts, m.ClientOption())...)
	if err != nil {
		t.Fatalf("Failed to create gRPC client: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

// SetModels replaces the list returned by ListModels
func (m *MockGRPCBridge) SetModels(models []ModelInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.models = models
}

// SetReply changes how Chat builds the assistant reply
func (m *MockGRPCBridge) SetReply(reply func(messages []ChatMessage) string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reply = reply
}

// SetChunks replaces the chunks sent by ChatStream
func (m *MockGRPCBridge) SetChunks(chunks ...*bridgepb.ChatChunk) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chunks = chunks
}

// FailMethod makes the named method ("GetStatus", "Chat", ...) fail with code
func (m *MockGRPCBridge) FailMethod(method string, code codes.Code) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures[method] = code
}

// Requests returns the chat requests received so far
func (m *MockGRPCBridge) Requests() []*bridgepb.ChatRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*bridgepb.ChatRequest(nil), m.requests...)
}

// RequestIDs returns the x-request-id values seen on every call
func (m *MockGRPCBridge) RequestIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.requestIDs...)
}

func (m *MockGRPCBridge) begin(ctx context.Context, method string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.served++
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		m.requestIDs = append(m.requestIDs, md.Get(RequestIDMetadata)...)
	}
	m.logger.Debug("Mock gRPC bridge: %s", method)

	if code, ok := m.failures[method]; ok {
		return status.Errorf(code, "mock failure in %s", method)
	}
	return nil
}

func (m *MockGRPCBridge) GetStatus(ctx context.Context, _ *bridgepb.StatusRequest) (*bridgepb.StatusResponse, error) {
	if err := m.begin(ctx, "GetStatus"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return &bridgepb.StatusResponse{
		Status:         "running",
		Port:           3742,
		DefaultModel:   mockDefaultModel,
		RequestsServed: m.served,
		Version:        CopilotGoVersion,
	}, nil
}

func (m *MockGRPCBridge) ListModels(ctx context.Context, _ *bridgepb.ListModelsRequest) (*bridgepb.ListModelsResponse, error) {
	if err := m.begin(ctx, "ListModels"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	resp := &bridgepb.ListModelsResponse{}
	for _, model := range m.models {
		resp.Models = append(resp.Models, &bridgepb.ModelInfo{
			Id:             model.ID,
			Name:           model.Name,
			Vendor:         model.Vendor,
			Family:         model.Family,
			Version:        model.Version,
			MaxInputTokens: int32(model.MaxInputTokens),
		})
	}
	return resp, nil
}

func (m *MockGRPCBridge) Chat(ctx context.Context, req *bridgepb.ChatRequest) (*bridgepb.ChatResponse, error) {
	if err := m.begin(ctx, "Chat"); err != nil {
		return nil, err
	}
	if len(req.GetMessages()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "messages array is required")
	}

	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.nextID++
	id := m.nextID
	reply := m.reply
	m.mu.Unlock()

	model := req.GetModel()
	if model == "" {
		model = mockDefaultModel
	}
	return &bridgepb.ChatResponse{Id: id, Model: model, Content: reply(fromPBMessages(req.GetMessages()))}, nil
}

func (m *MockGRPCBridge) ChatStream(req *bridgepb.ChatRequest, stream grpc.ServerStreamingServer[bridgepb.ChatChunk]) error {
	if err := m.begin(stream.Context(), "ChatStream"); err != nil {
		return err
	}

	m.mu.Lock()
	m.requests = append(m.requests, req)
	chunks := m.chunks
	m.mu.Unlock()

	for _, chunk := range chunks {
		if err := stream.Send(chunk); err != nil {
			return err
		}
	}
	return nil
}

func fromPBMessages(in []*bridgepb.ChatMessage) []ChatMessage {
	out := make([]ChatMessage, 0, len(in))
	for _, m := range in {
		out = append(out, ChatMessage{Role: Role(m.GetRole()), Content: m.GetContent()})
	}
	return out
}
