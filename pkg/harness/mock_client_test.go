package harness

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/inansen/copilot-bridge-client/pkg/copilot"
)

type mockClient struct {
	mock.Mock
}

var _ copilot.Client = (*mockClient)(nil)

func (m *mockClient) Status(ctx context.Context) (*copilot.StatusResponse, error) {
	args := m.Called(ctx)
	status, _ := args.Get(0).(*copilot.StatusResponse)
	return status, args.Error(1)
}

func (m *mockClient) ListModels(ctx context.Context) ([]copilot.ModelInfo, error) {
	args := m.Called(ctx)
	models, _ := args.Get(0).([]copilot.ModelInfo)
	return models, args.Error(1)
}

func (m *mockClient) Chat(ctx context.Context, messages []copilot.ChatMessage, opts ...copilot.ChatOption) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

func (m *mockClient) ChatFull(ctx context.Context, messages []copilot.ChatMessage, opts ...copilot.ChatOption) (*copilot.ChatResponse, error) {
	args := m.Called(ctx, messages)
	resp, _ := args.Get(0).(*copilot.ChatResponse)
	return resp, args.Error(1)
}

func (m *mockClient) ChatStream(ctx context.Context, messages []copilot.ChatMessage, opts ...copilot.ChatOption) (copilot.Stream, error) {
	args := m.Called(ctx, messages)
	stream, _ := args.Get(0).(copilot.Stream)
	return stream, args.Error(1)
}

func (m *mockClient) ChatJSON(ctx context.Context, messages []copilot.ChatMessage, out any, opts ...copilot.ChatOption) error {
	args := m.Called(ctx, messages, out)
	return args.Error(0)
}

func (m *mockClient) Close() error {
	return m.Called().Error(0)
}

// sliceStream replays fixed fragments and then a terminal error
type sliceStream struct {
	chunks []string
	end    error
	closed bool
}

func (s *sliceStream) Recv() (string, error) {
	if len(s.chunks) == 0 {
		if s.end != nil {
			return "", s.end
		}
		return "", io.EOF
	}
	chunk := s.chunks[0]
	s.chunks = s.chunks[1:]
	return chunk, nil
}

func (s *sliceStream) Close() error {
	s.closed = true
	return nil
}
