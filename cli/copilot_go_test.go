package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inansen/copilot-bridge-client/pkg/copilot"
)

var bridgeEnv = []string{
	"COPILOT_BRIDGE_URL",
	"COPILOT_BRIDGE_API_KEY",
	"COPILOT_BRIDGE_GRPC_ADDR",
	"COPILOT_BRIDGE_MODEL",
	"COPILOT_BRIDGE_VENDOR",
	"COPILOT_BRIDGE_LOG_LEVEL",
	"COPILOT_BRIDGE_LOG_FILE",
}

// isolate runs the test in an empty directory with no bridge variables set
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, key := range bridgeEnv {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestUsageAndVersion(t *testing.T) {
	isolate(t)

	tests := []struct {
		name     string
		args     []string
		code     int
		contains string
	}{
		{"no arguments prints usage", nil, 0, "Examples:"},
		{"help flag", []string{"--help"}, 0, "--base-url"},
		{"version", []string{"--version"}, 0, "Copilot Bridge Go CLI version: " + copilot.CopilotGoVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, _ := runCLI(t, "", tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stdout, tt.contains)
		})
	}
}

func TestInvalidArguments(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--frobnicate"}},
		{"bad transport", []string{"--status", "--transport=websocket"}},
		{"exclusive harness modes", []string{"--test", "--http-only", "--grpc-only"}},
		{"bad log level", []string{"--status", "--log-level=loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, "", tt.args...)
			assert.Equal(t, 2, code)
			assert.NotEmpty(t, stderr)
		})
	}
}

func TestStatus(t *testing.T) {
	isolate(t)
	bridge := copilot.NewMockBridgeService(t, nil)

	code, stdout, _ := runCLI(t, "", "--status", "-u", bridge.URL)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Copilot Bridge status: running @ "+bridge.URL)
	assert.Contains(t, stdout, "Default model:   gpt-4o")
}

func TestStatusFromEnvironment(t *testing.T) {
	isolate(t)
	bridge := copilot.NewMockBridgeService(t, nil)
	bridge.RequireAPIKey("s3cret")
	t.Setenv("COPILOT_BRIDGE_URL", bridge.URL)
	t.Setenv("COPILOT_BRIDGE_API_KEY", "s3cret")

	code, stdout, _ := runCLI(t, "", "--status")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "running @ "+bridge.URL)
}

func TestStatusFromDotEnv(t *testing.T) {
	isolate(t)
	bridge := copilot.NewMockBridgeService(t, nil)
	require.NoError(t, os.WriteFile(".env", []byte("COPILOT_BRIDGE_URL="+bridge.URL+"\n"), 0o600))

	code, stdout, _ := runCLI(t, "", "--status")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "running @ "+bridge.URL)
}

func TestStatusUnreachable(t *testing.T) {
	isolate(t)

	code, stdout, _ := runCLI(t, "", "--status", "-u", "http://127.0.0.1:1")
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "Copilot Bridge status: ERROR")
}

func TestListModels(t *testing.T) {
	isolate(t)
	bridge := copilot.NewMockBridgeService(t, nil)

	code, stdout, _ := runCLI(t, "", "--list-models", "-u", bridge.URL)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Family")
	assert.Contains(t, stdout, "claude-3.5-sonnet")
	assert.Contains(t, stdout, "63k")

	code, stdout, _ = runCLI(t, "", "--list-models", "--json", "-u", bridge.URL)
	assert.Equal(t, 0, code)
	var models []copilot.ModelInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &models))
	assert.Len(t, models, 2)
}

func TestPrompt(t *testing.T) {
	isolate(t)
	bridge := copilot.NewMockBridgeService(t, nil)

	code, stdout, _ := runCLI(t, "", "-p", "What is a monad?", "-m", "gpt-4o", "-s", "be brief", "-u", bridge.URL)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Echo: What is a monad?\n", stdout)

	req, ok := bridge.LastRequest()
	require.True(t, ok)
	assert.Equal(t, "gpt-4o", req.Payload.Model)
	assert.Equal(t, "be brief", req.Payload.SystemPrompt)
}

func TestPromptStream(t *testing.T) {
	isolate(t)
	bridge := copilot.NewMockBridgeService(t, nil)

	code, stdout, _ := runCLI(t, "", "-p", "hi", "--stream", "-u", bridge.URL)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Hello\n", stdout)
}

func TestPromptJSON(t *testing.T) {
	isolate(t)
	bridge := copilot.NewMockBridgeService(t, nil)

	code, stdout, _ := runCLI(t, "", "-p", "Return JSON", "--json", "-u", bridge.URL)
	assert.Equal(t, 0, code)

	var out map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "python", out["language"])
}

func TestPromptOverGRPC(t *testing.T) {
	isolate(t)
	grpcBridge := copilot.NewMockGRPCBridgeService(t, nil)
	extraGRPCOptions = []copilot.ClientOption{grpcBridge.ClientOption()}
	t.Cleanup(func() { extraGRPCOptions = nil })

	code, stdout, _ := runCLI(t, "", "-t", "grpc", "--grpc-address", copilot.MockGRPCAddress, "-p", "hi", "--stream")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Hello\n", stdout)

	code, stdout, _ = runCLI(t, "", "-t", "grpc", "--grpc-address", copilot.MockGRPCAddress, "--status")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "running @ "+copilot.MockGRPCAddress)
}

func TestHarnessMode(t *testing.T) {
	isolate(t)
	bridge := copilot.NewMockBridgeService(t, nil)

	code, stdout, _ := runCLI(t, "\n", "--test", "--http-only", "-u", bridge.URL)
	assert.Equal(t, 0, code, stdout)
	assert.Contains(t, stdout, "Using model: gpt-4o")
	assert.Contains(t, stdout, "Failed: 0")
}

func TestLogFile(t *testing.T) {
	isolate(t)
	bridge := copilot.NewMockBridgeService(t, nil)
	logPath := filepath.Join(t.TempDir(), "copilot-go.log")

	code, _, stderr := runCLI(t, "", "--status", "-v", "--log-file", logPath, "-u", bridge.URL)
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] GET /status")
}

func TestFormatTokens(t *testing.T) {
	assert.Equal(t, "N/A", formatTokens(0))
	assert.Equal(t, "512", formatTokens(512))
	assert.Equal(t, "128k", formatTokens(128000))
}
