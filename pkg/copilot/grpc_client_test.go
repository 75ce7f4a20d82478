package copilot

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/inansen/copilot-bridge-client/pkg/copilot/bridgepb"
)

func TestGRPCClientStatus(t *testing.T) {
	mock := NewMockGRPCBridgeService(t, nil)
	client := mock.NewClient(t)

	status, err := client.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "running", status.Status)
	assert.Equal(t, 3742, status.Port)
	assert.Equal(t, CopilotGoVersion, status.Version)
	assert.Equal(t, int64(1), status.RequestsServed)

	ids := mock.RequestIDs()
	require.Len(t, ids, 1)
	_, err = uuid.Parse(ids[0])
	assert.NoError(t, err)
}

func TestGRPCClientListModels(t *testing.T) {
	mock := NewMockGRPCBridgeService(t, nil)
	client := mock.NewClient(t)

	models, err := client.ListModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, mockModels, models)

	mock.SetModels(nil)
	models, err = client.ListModels(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, models)
	assert.Empty(t, models)
}

func TestGRPCClientChat(t *testing.T) {
	mock := NewMockGRPCBridgeService(t, nil)
	client := mock.NewClient(t, WithDefaultVendor("copilot"))

	conversation := []ChatMessage{
		{Role: RoleUser, Content: "My name is TestBot."},
		{Role: RoleAssistant, Content: "Hello TestBot!"},
		{Role: RoleUser, Content: "What is my name?"},
	}
	resp, err := client.ChatFull(context.Background(), conversation, WithModel("gpt-4o-mini"), WithSystemPrompt("one word"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
	assert.Equal(t, "Echo: What is my name?", resp.Content)

	reqs := mock.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "gpt-4o-mini", reqs[0].GetModel())
	assert.Equal(t, "copilot", reqs[0].GetVendor())
	assert.Equal(t, "one word", reqs[0].GetSystemPrompt())
	require.Len(t, reqs[0].GetMessages(), 3)
	assert.Equal(t, "assistant", reqs[0].GetMessages()[1].GetRole())
	assert.Equal(t, "What is my name?", reqs[0].GetMessages()[2].GetContent())

	reply, err := client.Chat(context.Background(), Prompt("hi"))
	require.NoError(t, err)
	assert.Equal(t, "Echo: hi", reply)
}

func TestGRPCClientChatJSON(t *testing.T) {
	mock := NewMockGRPCBridgeService(t, nil)
	client := mock.NewClient(t)

	var out map[string]string
	require.NoError(t, client.ChatJSON(context.Background(), Prompt("Return JSON"), &out))
	assert.Equal(t, map[string]string{"name": "test", "language": "python"}, out)
}

func TestGRPCClientEmptyMessagesRejected(t *testing.T) {
	mock := NewMockGRPCBridgeService(t, nil)
	client := mock.NewClient(t)

	_, err := client.Chat(context.Background(), nil)
	assertValidationError(t, err)
	_, err = client.ChatStream(context.Background(), []ChatMessage{})
	assertValidationError(t, err)
	assert.Empty(t, mock.RequestIDs())
}

func TestGRPCClientStream(t *testing.T) {
	mock := NewMockGRPCBridgeService(t, nil)
	client := mock.NewClient(t)

	stream, err := client.ChatStream(context.Background(), Prompt("hi"))
	require.NoError(t, err)

	var chunks []string
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		chunks = append(chunks, chunk)
	}
	assert.Equal(t, []string{"He", "llo"}, chunks)
	assert.NoError(t, stream.Close())
}

func TestGRPCClientStreamChunks(t *testing.T) {
	tests := []struct {
		name      string
		chunks    []*bridgepb.ChatChunk
		want      string
		wantError string
	}{
		{
			name:   "empty content chunks are skipped",
			chunks: []*bridgepb.ChatChunk{{Content: "a"}, {}, {Content: "b"}, {Done: true}},
			want:   "ab",
		},
		{
			name:   "server closes without done",
			chunks: []*bridgepb.ChatChunk{{Content: "a"}},
			want:   "a",
		},
		{
			name:      "error chunk",
			chunks:    []*bridgepb.ChatChunk{{Content: "a"}, {Error: "model unavailable"}, {Content: "b"}},
			want:      "a",
			wantError: "model unavailable",
		},
		{
			name:   "nothing after done",
			chunks: []*bridgepb.ChatChunk{{Done: true}, {Content: "late"}},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockGRPCBridgeService(t, nil)
			mock.SetChunks(tt.chunks...)
			client := mock.NewClient(t)

			stream, err := client.ChatStream(context.Background(), Prompt("hi"))
			require.NoError(t, err)

			text, err := CollectStream(stream)
			assert.Equal(t, tt.want, text)
			if tt.wantError == "" {
				assert.NoError(t, err)
				return
			}
			var streamErr *StreamError
			require.ErrorAs(t, err, &streamErr)
			assert.Equal(t, tt.wantError, streamErr.Message)
		})
	}
}

func TestGRPCClientStatusTranslation(t *testing.T) {
	tests := []struct {
		code     codes.Code
		wantKind string
	}{
		{codes.Unavailable, "ConnectionError"},
		{codes.Internal, "BridgeError"},
		{codes.InvalidArgument, "BridgeError"},
		{codes.PermissionDenied, "BridgeError"},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			mock := NewMockGRPCBridgeService(t, nil)
			mock.FailMethod("Chat", tt.code)
			client := mock.NewClient(t)

			_, err := client.Chat(context.Background(), Prompt("hi"))
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, ErrorKind(err))

			var bridgeErr *BridgeError
			if errors.As(err, &bridgeErr) {
				assert.Equal(t, "grpc", bridgeErr.Transport)
				assert.Equal(t, int(tt.code), bridgeErr.StatusCode)
				assert.Contains(t, bridgeErr.Error(), tt.code.String())
			}
		})
	}
}

func TestGRPCClientUnreachable(t *testing.T) {
	client, err := NewGRPCClient("127.0.0.1:1", nil, WithTimeouts(2*time.Second, 0))
	require.NoError(t, err, "channels connect lazily")
	defer client.Close()

	_, err = client.Status(context.Background())
	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, "127.0.0.1:1", connErr.Endpoint)
	assert.Equal(t, "127.0.0.1:1", client.Address())
}

func TestGRPCClientStreamEarlyClose(t *testing.T) {
	mock := NewMockGRPCBridgeService(t, nil)
	client := mock.NewClient(t)

	stream, err := client.ChatStream(context.Background(), Prompt("hi"))
	require.NoError(t, err)

	chunk, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, "He", chunk)

	require.NoError(t, stream.Close())
	_, err = stream.Recv()
	assert.ErrorIs(t, err, io.EOF)
}
