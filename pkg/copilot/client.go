package copilot

import (
	"context"
	"errors"
	"io"
	"strings"
)

// Stream yields response fragments in arrival order. Recv returns io.EOF
// once the bridge signals completion and a *StreamError if the bridge
// reports an error mid-stream. A stream is consumed once; Close releases the
// underlying transport and may be called at any point.
type Stream interface {
	Recv() (string, error)
	Close() error
}

// Client is the transport-independent contract implemented by HTTPClient and
// GRPCClient
type Client interface {
	Status(ctx context.Context) (*StatusResponse, error)
	ListModels(ctx context.Context) ([]ModelInfo, error)
	Chat(ctx context.Context, messages []ChatMessage, opts ...ChatOption) (string, error)
	ChatFull(ctx context.Context, messages []ChatMessage, opts ...ChatOption) (*ChatResponse, error)
	ChatStream(ctx context.Context, messages []ChatMessage, opts ...ChatOption) (Stream, error)
	ChatJSON(ctx context.Context, messages []ChatMessage, out any, opts ...ChatOption) error
	Close() error
}

// Prompt wraps a single prompt as a one-message user conversation
func Prompt(text string) []ChatMessage {
	return []ChatMessage{{Role: RoleUser, Content: text}}
}

// Ask sends a single prompt and returns the full reply text
func Ask(ctx context.Context, client Client, prompt string, opts ...ChatOption) (string, error) {
	if client == nil {
		return "", errors.New("copilot: nil client")
	}
	return client.Chat(ctx, Prompt(prompt), opts...)
}

// CollectStream reads s to the end and returns the concatenated fragments.
// The stream is closed on return.
func CollectStream(s Stream) (string, error) {
	defer s.Close()
	var sb strings.Builder
	for {
		chunk, err := s.Recv()
		if errors.Is(err, io.EOF) {
			return sb.String(), nil
		}
		if err != nil {
			return sb.String(), err
		}
		sb.WriteString(chunk)
	}
}

func validateMessages(messages []ChatMessage) error {
	if len(messages) == 0 {
		return &ValidationError{Message: "messages must not be empty"}
	}
	return nil
}
