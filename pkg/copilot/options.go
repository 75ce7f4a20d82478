package copilot

import (
	"time"

	"google.golang.org/grpc"
)

// ChatOption overrides a request field for a single chat call
type ChatOption func(*chatOptions)

type chatOptions struct {
	model        string
	vendor       string
	systemPrompt string
}

// WithModel selects the model family for one call, e.g. "gpt-4o"
func WithModel(model string) ChatOption {
	return func(o *chatOptions) { o.model = model }
}

// WithVendor selects the model vendor for one call, e.g. "copilot"
func WithVendor(vendor string) ChatOption {
	return func(o *chatOptions) { o.vendor = vendor }
}

// WithSystemPrompt sets a system-level instruction for one call
func WithSystemPrompt(prompt string) ChatOption {
	return func(o *chatOptions) { o.systemPrompt = prompt }
}

// resolve applies per-call options over the client defaults. Empty values
// are left for the server to fill in.
func (cfg *clientConfig) resolve(opts []ChatOption) chatOptions {
	o := chatOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.model == "" {
		o.model = cfg.defaultModel
	}
	if o.vendor == "" {
		o.vendor = cfg.defaultVendor
	}
	return o
}

// ClientOption configures a client at construction time
type ClientOption func(*clientConfig)

type clientConfig struct {
	defaultModel  string
	defaultVendor string
	apiKey        string
	statusTimeout time.Duration
	chatTimeout   time.Duration
	dialOptions   []grpc.DialOption
}

func newClientConfig(opts []ClientOption) *clientConfig {
	cfg := &clientConfig{
		statusTimeout: StatusTimeout,
		chatTimeout:   ChatTimeout,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithDefaultModel sets the model used when a call does not pick one
func WithDefaultModel(model string) ClientOption {
	return func(c *clientConfig) { c.defaultModel = model }
}

// WithDefaultVendor sets the vendor used when a call does not pick one
func WithDefaultVendor(vendor string) ClientOption {
	return func(c *clientConfig) { c.defaultVendor = vendor }
}

// WithAPIKey sends "Authorization: Bearer <key>" with every HTTP request.
// It is ignored by the gRPC client.
func WithAPIKey(key string) ClientOption {
	return func(c *clientConfig) { c.apiKey = key }
}

// WithTimeouts replaces the status and chat timeouts. Zero keeps the default.
func WithTimeouts(status, chat time.Duration) ClientOption {
	return func(c *clientConfig) {
		if status > 0 {
			c.statusTimeout = status
		}
		if chat > 0 {
			c.chatTimeout = chat
		}
	}
}

// WithDialOptions appends gRPC dial options, e.g. a custom dialer in tests
func WithDialOptions(opts ...grpc.DialOption) ClientOption {
	return func(c *clientConfig) { c.dialOptions = append(c.dialOptions, opts...) }
}
