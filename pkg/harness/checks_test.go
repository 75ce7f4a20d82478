package harness

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/inansen/copilot-bridge-client/pkg/copilot"
)

func checkByName(t *testing.T, checks []Check, name string) Check {
	t.Helper()
	for _, c := range checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no check named %s", name)
	return Check{}
}

func TestInterfaceCheckNames(t *testing.T) {
	var names []string
	for _, c := range InterfaceChecks(&mockClient{}, "") {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"status", "list_models", "chat_simple", "chat_with_model", "chat_with_system_prompt",
		"chat_conversation", "chat_full", "chat_stream", "chat_json", "chat_empty_rejected",
	}, names)
}

func TestStatusCheck(t *testing.T) {
	tests := []struct {
		name    string
		status  *copilot.StatusResponse
		err     error
		wantErr string
	}{
		{"running", &copilot.StatusResponse{Status: "running", Version: "0.3.0", RequestsServed: 7}, nil, ""},
		{"not running", &copilot.StatusResponse{Status: "starting", Version: "0.3.0"}, nil, "expected status='running'"},
		{"no version", &copilot.StatusResponse{Status: "running"}, nil, "version should not be empty"},
		{"transport failure", nil, &copilot.ConnectionError{Endpoint: "x", Err: errors.New("refused")}, "refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{}
			client.On("Status", mock.Anything).Return(tt.status, tt.err)

			msg, err := checkByName(t, InterfaceChecks(client, ""), "status").Run(context.Background())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "status=running, version=0.3.0, requests=7", msg)
		})
	}
}

func TestListModelsCheck(t *testing.T) {
	tests := []struct {
		name    string
		models  []copilot.ModelInfo
		wantErr string
	}{
		{"two models", []copilot.ModelInfo{{ID: "a", Vendor: "copilot", Family: "gpt-4o"}, {ID: "b", Vendor: "copilot", Family: "o1"}}, ""},
		{"empty list", []copilot.ModelInfo{}, "no models available"},
		{"missing id", []copilot.ModelInfo{{Vendor: "copilot"}}, "id should not be empty"},
		{"missing vendor", []copilot.ModelInfo{{ID: "a"}}, "vendor should not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{}
			client.On("ListModels", mock.Anything).Return(tt.models, nil)

			msg, err := checkByName(t, InterfaceChecks(client, ""), "list_models").Run(context.Background())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2 models: gpt-4o, o1", msg)
		})
	}
}

func TestChatChecksRejectEmptyReplies(t *testing.T) {
	client := &mockClient{}
	client.On("Chat", mock.Anything, mock.Anything).Return("", nil)

	for _, name := range []string{"chat_simple", "chat_with_model", "chat_with_system_prompt", "chat_conversation"} {
		t.Run(name, func(t *testing.T) {
			_, err := checkByName(t, InterfaceChecks(client, "gpt-4o"), name).Run(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "response should not be empty")
		})
	}
}

func TestConversationCheckSendsThreeTurns(t *testing.T) {
	client := &mockClient{}
	client.On("Chat", mock.Anything, mock.MatchedBy(func(msgs []copilot.ChatMessage) bool {
		return len(msgs) == 3 && msgs[1].Role == copilot.RoleAssistant
	})).Return("TestBot", nil)

	msg, err := checkByName(t, InterfaceChecks(client, ""), "chat_conversation").Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "response='TestBot'", msg)
	client.AssertExpectations(t)
}

func TestChatFullCheck(t *testing.T) {
	client := &mockClient{}
	client.On("ChatFull", mock.Anything, mock.Anything).Return(&copilot.ChatResponse{ID: 3, Content: "FULL_TEST_OK"}, nil).Once()
	client.On("ChatFull", mock.Anything, mock.Anything).Return(&copilot.ChatResponse{ID: 4, Model: "gpt-4o", Content: "FULL_TEST_OK"}, nil).Once()

	check := checkByName(t, InterfaceChecks(client, ""), "chat_full")

	_, err := check.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model should not be empty")

	msg, err := check.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "id=4, model=gpt-4o, content_len=12", msg)
}

func TestChatStreamCheck(t *testing.T) {
	tests := []struct {
		name    string
		stream  *sliceStream
		wantMsg string
		wantErr string
	}{
		{"chunks", &sliceStream{chunks: []string{"1\n", "2\n", "3"}}, "3 chunks, total 5 chars", ""},
		{"no chunks", &sliceStream{}, "", "at least one chunk"},
		{"empty chunks", &sliceStream{chunks: []string{"", ""}}, "", "combined text should not be empty"},
		{"stream error", &sliceStream{chunks: []string{"1"}, end: &copilot.StreamError{Message: "overloaded"}}, "", "overloaded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{}
			client.On("ChatStream", mock.Anything, mock.Anything).Return(tt.stream, nil)

			msg, err := checkByName(t, InterfaceChecks(client, ""), "chat_stream").Run(context.Background())
			assert.True(t, tt.stream.closed, "stream must be closed")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestChatJSONCheck(t *testing.T) {
	fill := func(v map[string]any) func(args mock.Arguments) {
		return func(args mock.Arguments) {
			out := args.Get(2).(*map[string]any)
			*out = v
		}
	}

	client := &mockClient{}
	client.On("ChatJSON", mock.Anything, mock.Anything, mock.Anything).Return(nil).Run(fill(map[string]any{"name": "test", "language": "python"})).Once()
	client.On("ChatJSON", mock.Anything, mock.Anything, mock.Anything).Return(nil).Run(fill(map[string]any{"other": 1})).Once()
	client.On("ChatJSON", mock.Anything, mock.Anything, mock.Anything).Return(&copilot.ParseError{Preview: "nope"}).Once()

	check := checkByName(t, InterfaceChecks(client, ""), "chat_json")

	msg, err := check.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "parsed keys: [language name]", msg)

	_, err = check.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 'name' or 'language' key")

	_, err = check.Run(context.Background())
	assert.Equal(t, "ParseError", copilot.ErrorKind(err))
}

func TestChatEmptyRejectedCheck(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr string
	}{
		{"validation error", &copilot.ValidationError{Message: "messages must not be empty"}, ""},
		{"accepted", nil, "should have rejected"},
		{"server side rejection is not enough", &copilot.BridgeError{Transport: "http", StatusCode: 400}, "expected ValidationError, got BridgeError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockClient{}
			client.On("Chat", mock.Anything, mock.Anything).Return("", tt.err)

			msg, err := checkByName(t, InterfaceChecks(client, ""), "chat_empty_rejected").Run(context.Background())
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "correctly rejected: ValidationError", msg)
		})
	}
}

func TestRunChecksContinuesAfterFailure(t *testing.T) {
	var out bytes.Buffer
	runner := NewRunner(&out, nil)

	results := runner.RunChecks(context.Background(), "HTTP", []Check{
		{"first", func(context.Context) (string, error) { return "", &copilot.ConnectionError{Endpoint: "e", Err: errors.New("refused")} }},
		{"second", func(context.Context) (string, error) { panic("boom") }},
		{"third", func(context.Context) (string, error) { return "fine", nil }},
	})

	require.Len(t, results, 3)
	assert.False(t, results[0].Passed)
	assert.True(t, strings.HasPrefix(results[0].Message, "ConnectionError: "))
	assert.False(t, results[1].Passed)
	assert.Equal(t, "panic: boom", results[1].Message)
	assert.True(t, results[2].Passed)
	assert.Equal(t, "HTTP::third", results[2].Name)

	assert.Contains(t, out.String(), "[FAIL] HTTP::first")
	assert.Contains(t, out.String(), "[PASS] HTTP::third")
}

func TestHTTPChecks(t *testing.T) {
	bridge := copilot.NewMockBridgeService(t, nil)
	checks := HTTPChecks(bridge.URL, nil)

	for _, check := range checks {
		t.Run(check.Name, func(t *testing.T) {
			_, err := check.Run(context.Background())
			assert.NoError(t, err)
		})
	}
}

func TestHTTPChecksFailures(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"stopped"}`))
	})
	checks := HTTPChecks(server.URL, nil)

	_, err := checkByName(t, checks, "http_raw_status").Run(context.Background())
	assert.ErrorContains(t, err, "expected status='running'")

	_, err = checkByName(t, checks, "http_not_found").Run(context.Background())
	assert.ErrorContains(t, err, "expected 404, got 200")

	_, err = checkByName(t, checks, "http_cors_headers").Run(context.Background())
	assert.ErrorContains(t, err, "expected CORS '*'")
}
