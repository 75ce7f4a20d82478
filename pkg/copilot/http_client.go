package copilot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxErrorBodySize = 1 << 20

// HTTPClient talks to the bridge over its HTTP/JSON and SSE endpoints
type HTTPClient struct {
	logger     Logger
	baseURL    string
	cfg        *clientConfig
	httpClient *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the bridge at baseURL, e.g.
// "http://127.0.0.1:3741". An empty baseURL selects DefaultBaseURL.
func NewHTTPClient(baseURL string, logger Logger, opts ...ClientOption) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = NewLogger(LogLevelError)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	return &HTTPClient{
		logger:     logger,
		baseURL:    strings.TrimRight(baseURL, "/"),
		cfg:        newClientConfig(opts),
		httpClient: &http.Client{Transport: transport},
	}
}

// BaseURL returns the bridge address the client sends requests to
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// Status returns the bridge status
func (c *HTTPClient) Status(ctx context.Context) (*StatusResponse, error) {
	var status StatusResponse
	if err := c.doJSON(ctx, http.MethodGet, StatusEndpoint, nil, &status, c.cfg.statusTimeout); err != nil {
		return nil, err
	}
	return &status, nil
}

// ListModels lists the models the bridge can route to
func (c *HTTPClient) ListModels(ctx context.Context) ([]ModelInfo, error) {
	var resp modelsResponse
	if err := c.doJSON(ctx, http.MethodGet, ModelsEndpoint, nil, &resp, c.cfg.statusTimeout); err != nil {
		return nil, err
	}
	if resp.Models == nil {
		return []ModelInfo{}, nil
	}
	return resp.Models, nil
}

// Chat sends the conversation and returns the full reply text
func (c *HTTPClient) Chat(ctx context.Context, messages []ChatMessage, opts ...ChatOption) (string, error) {
	resp, err := c.ChatFull(ctx, messages, opts...)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// ChatFull sends the conversation and returns the structured reply
func (c *HTTPClient) ChatFull(ctx context.Context, messages []ChatMessage, opts ...ChatOption) (*ChatResponse, error) {
	if err := validateMessages(messages); err != nil {
		return nil, err
	}

	var resp ChatResponse
	if err := c.doJSON(ctx, http.MethodPost, ChatEndpoint, c.buildRequest(messages, opts), &resp, c.cfg.chatTimeout); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChatJSON sends the conversation and decodes the JSON value found in the reply into out
func (c *HTTPClient) ChatJSON(ctx context.Context, messages []ChatMessage, out any, opts ...ChatOption) error {
	text, err := c.Chat(ctx, messages, opts...)
	if err != nil {
		return err
	}
	return ExtractJSON(text, out)
}

// ChatStream opens POST /chat/stream. The returned stream must be closed.
func (c *HTTPClient) ChatStream(ctx context.Context, messages []ChatMessage, opts ...ChatOption) (Stream, error) {
	if err := validateMessages(messages); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.chatTimeout)
	resp, err := c.send(ctx, http.MethodPost, ChatStreamEndpoint, c.buildRequest(messages, opts))
	if err != nil {
		cancel()
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer cancel()
		defer resp.Body.Close()
		return nil, c.statusError(resp)
	}

	return &httpStream{
		endpoint: c.baseURL,
		body:     resp.Body,
		decoder:  newSSEDecoder(resp.Body, c.logger),
		cancel:   cancel,
	}, nil
}

// Close releases idle HTTP connections held by the client
func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) buildRequest(messages []ChatMessage, opts []ChatOption) *chatRequest {
	o := c.cfg.resolve(opts)
	return &chatRequest{
		Messages:     messages,
		Model:        o.model,
		Vendor:       o.vendor,
		SystemPrompt: o.systemPrompt,
	}
}

// doJSON performs one request bounded by timeout and decodes the reply into out
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, out any, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ConnectionError{Endpoint: c.baseURL, Err: fmt.Errorf("failed to read %s response: %w", path, err)}
	}

	c.logger.Trace("Raw %s response: %s", path, string(data))

	if err := json.Unmarshal(data, out); err != nil {
		return &BridgeError{
			Transport: "http",
			Body:      preview(string(data), ParsePreviewLimit),
			Err:       fmt.Errorf("failed to parse %s response: %w", path, err),
		}
	}
	return nil
}

func (c *HTTPClient) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", path, err)
	}

	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if c.cfg.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.apiKey)
	}

	c.logger.Debug("%s %s (request %s)", method, path, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("Request %s failed: %v", requestID, err)
		return nil, &ConnectionError{Endpoint: c.baseURL, Err: err}
	}
	return resp, nil
}

func (c *HTTPClient) statusError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	c.logger.Debug("Bridge answered HTTP %d: %s", resp.StatusCode, string(data))
	return &BridgeError{
		Transport:  "http",
		StatusCode: resp.StatusCode,
		Body:       string(data),
	}
}

// httpStream adapts an SSE response body to Stream
type httpStream struct {
	endpoint string
	body     io.ReadCloser
	decoder  *sseDecoder
	cancel   context.CancelFunc
	closed   bool
}

func (s *httpStream) Recv() (string, error) {
	if s.closed {
		return "", io.EOF
	}

	content, err := s.decoder.Next()
	if err == nil {
		return content, nil
	}

	s.Close()

	var (
		streamErr *StreamError
		bridgeErr *BridgeError
	)
	switch {
	case errors.Is(err, io.EOF), errors.As(err, &streamErr), errors.As(err, &bridgeErr):
		return "", err
	}
	return "", &ConnectionError{Endpoint: s.endpoint, Err: err}
}

func (s *httpStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.body.Close()
	s.cancel()
	return err
}
