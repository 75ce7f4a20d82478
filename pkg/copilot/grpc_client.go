package copilot

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/inansen/copilot-bridge-client/pkg/copilot/bridgepb"
)

// GRPCClient talks to the bridge's CopilotBridgeService. It owns one channel
// for its whole lifetime; call Close to release it.
type GRPCClient struct {
	logger  Logger
	address string
	cfg     *clientConfig
	conn    *grpc.ClientConn
	stub    bridgepb.CopilotBridgeServiceClient
}

var _ Client = (*GRPCClient)(nil)

// NewGRPCClient creates a client for the bridge gRPC server at address, e.g.
// "127.0.0.1:3742". The channel connects lazily, so an unreachable server is
// reported by the first call rather than here.
func NewGRPCClient(address string, logger Logger, opts ...ClientOption) (*GRPCClient, error) {
	if address == "" {
		address = DefaultGRPCAddress
	}
	if logger == nil {
		logger = NewLogger(LogLevelError)
	}

	cfg := newClientConfig(opts)
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}, cfg.dialOptions...)

	conn, err := grpc.NewClient(address, dialOpts...)
	if err != nil {
		return nil, &ConnectionError{Endpoint: address, Err: err}
	}

	logger.Debug("Created gRPC channel to %s", address)

	return &GRPCClient{
		logger:  logger,
		address: address,
		cfg:     cfg,
		conn:    conn,
		stub:    bridgepb.NewCopilotBridgeServiceClient(conn),
	}, nil
}

// Address returns the gRPC target of the client
func (c *GRPCClient) Address() string {
	return c.address
}

func (c *GRPCClient) Status(ctx context.Context) (*StatusResponse, error) {
	ctx, cancel := c.callContext(ctx, c.cfg.statusTimeout, "GetStatus")
	defer cancel()

	resp, err := c.stub.GetStatus(ctx, &bridgepb.StatusRequest{})
	if err != nil {
		return nil, c.translate(err)
	}
	return &StatusResponse{
		Status:         resp.GetStatus(),
		Port:           int(resp.GetPort()),
		DefaultModel:   resp.GetDefaultModel(),
		RequestsServed: resp.GetRequestsServed(),
		Version:        resp.GetVersion(),
	}, nil
}

func (c *GRPCClient) ListModels(ctx context.Context) ([]ModelInfo, error) {
	ctx, cancel := c.callContext(ctx, c.cfg.statusTimeout, "ListModels")
	defer cancel()

	resp, err := c.stub.ListModels(ctx, &bridgepb.ListModelsRequest{})
	if err != nil {
		return nil, c.translate(err)
	}

	models := make([]ModelInfo, 0, len(resp.GetModels()))
	for _, m := range resp.GetModels() {
		models = append(models, ModelInfo{
			ID:             m.GetId(),
			Name:           m.GetName(),
			Vendor:         m.GetVendor(),
			Family:         m.GetFamily(),
			Version:        m.GetVersion(),
			MaxInputTokens: int(m.GetMaxInputTokens()),
		})
	}
	return models, nil
}

func (c *GRPCClient) Chat(ctx context.Context, messages []ChatMessage, opts ...ChatOption) (string, error) {
	resp, err := c.ChatFull(ctx, messages, opts...)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

func (c *GRPCClient) ChatFull(ctx context.Context, messages []ChatMessage, opts ...ChatOption) (*ChatResponse, error) {
	if err := validateMessages(messages); err != nil {
		return nil, err
	}

	ctx, cancel := c.callContext(ctx, c.cfg.chatTimeout, "Chat")
	defer cancel()

	resp, err := c.stub.Chat(ctx, c.buildRequest(messages, opts))
	if err != nil {
		return nil, c.translate(err)
	}
	return &ChatResponse{
		ID:      resp.GetId(),
		Model:   resp.GetModel(),
		Content: resp.GetContent(),
	}, nil
}

func (c *GRPCClient) ChatJSON(ctx context.Context, messages []ChatMessage, out any, opts ...ChatOption) error {
	text, err := c.Chat(ctx, messages, opts...)
	if err != nil {
		return err
	}
	return ExtractJSON(text, out)
}

// ChatStream opens a server stream of chunks. Closing the returned stream
// cancels the call.
func (c *GRPCClient) ChatStream(ctx context.Context, messages []ChatMessage, opts ...ChatOption) (Stream, error) {
	if err := validateMessages(messages); err != nil {
		return nil, err
	}

	ctx, cancel := c.callContext(ctx, c.cfg.chatTimeout, "ChatStream")
	stream, err := c.stub.ChatStream(ctx, c.buildRequest(messages, opts))
	if err != nil {
		cancel()
		return nil, c.translate(err)
	}
	return &grpcStream{client: c, stream: stream, cancel: cancel}, nil
}

// Close releases the gRPC channel
func (c *GRPCClient) Close() error {
	c.logger.Debug("Closing gRPC channel to %s", c.address)
	return c.conn.Close()
}

func (c *GRPCClient) buildRequest(messages []ChatMessage, opts []ChatOption) *bridgepb.ChatRequest {
	o := c.cfg.resolve(opts)
	req := &bridgepb.ChatRequest{
		Messages:     make([]*bridgepb.ChatMessage, 0, len(messages)),
		Model:        o.model,
		Vendor:       o.vendor,
		SystemPrompt: o.systemPrompt,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, &bridgepb.ChatMessage{Role: string(m.Role), Content: m.Content})
	}
	return req
}

func (c *GRPCClient) callContext(ctx context.Context, timeout time.Duration, method string) (context.Context, context.CancelFunc) {
	requestID := uuid.New().String()
	c.logger.Debug("gRPC %s (request %s)", method, requestID)
	ctx = metadata.AppendToOutgoingContext(ctx, RequestIDMetadata, requestID)
	return context.WithTimeout(ctx, timeout)
}

// translate maps a gRPC status onto the client error taxonomy
func (c *GRPCClient) translate(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return &ConnectionError{Endpoint: c.address, Err: err}
	}
	c.logger.Debug("gRPC call failed: %s: %s", st.Code(), st.Message())
	if st.Code() == codes.Unavailable {
		return &ConnectionError{Endpoint: c.address, Err: err}
	}
	return &BridgeError{
		Transport:  "grpc",
		StatusCode: int(st.Code()),
		Body:       st.Message(),
		Err:        err,
	}
}

type grpcStream struct {
	client   *GRPCClient
	stream   grpc.ServerStreamingClient[bridgepb.ChatChunk]
	cancel   context.CancelFunc
	finished bool
}

func (s *grpcStream) Recv() (string, error) {
	for !s.finished {
		chunk, err := s.stream.Recv()
		if errors.Is(err, io.EOF) {
			s.Close()
			return "", io.EOF
		}
		if err != nil {
			s.Close()
			return "", s.client.translate(err)
		}

		switch {
		case chunk.GetError() != "":
			s.Close()
			return "", &StreamError{Message: chunk.GetError()}
		case chunk.GetDone():
			s.Close()
			return "", io.EOF
		case chunk.GetContent() != "":
			return chunk.GetContent(), nil
		}
	}
	return "", io.EOF
}

func (s *grpcStream) Close() error {
	if !s.finished {
		s.finished = true
		s.cancel()
	}
	return nil
}
