package harness

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/inansen/copilot-bridge-client/pkg/copilot"
)

// Check is a single named functional check. Run returns a short report
// message on success.
type Check struct {
	Name string
	Run  func(ctx context.Context) (string, error)
}

// InterfaceChecks returns the checks every copilot.Client must pass. An
// empty model lets the bridge pick its default.
func InterfaceChecks(client copilot.Client, model string) []Check {
	var opts []copilot.ChatOption
	if model != "" {
		opts = append(opts, copilot.WithModel(model))
	}
	chatOpts := func(extra ...copilot.ChatOption) []copilot.ChatOption {
		return append(append([]copilot.ChatOption(nil), opts...), extra...)
	}

	return []Check{
		{"status", func(ctx context.Context) (string, error) {
			status, err := client.Status(ctx)
			if err != nil {
				return "", err
			}
			if status.Status != "running" {
				return "", fmt.Errorf("expected status='running', got '%s'", status.Status)
			}
			if status.Version == "" {
				return "", errors.New("version should not be empty")
			}
			return fmt.Sprintf("status=%s, version=%s, requests=%d", status.Status, status.Version, status.RequestsServed), nil
		}},
		{"list_models", func(ctx context.Context) (string, error) {
			models, err := client.ListModels(ctx)
			if err != nil {
				return "", err
			}
			if len(models) == 0 {
				return "", errors.New("no models available, is GitHub Copilot signed in?")
			}
			families := make([]string, 0, len(models))
			for _, m := range models {
				if m.ID == "" {
					return "", errors.New("model id should not be empty")
				}
				if m.Vendor == "" {
					return "", fmt.Errorf("model %s: vendor should not be empty", m.ID)
				}
				families = append(families, m.Family)
			}
			return fmt.Sprintf("%d models: %s", len(models), strings.Join(families, ", ")), nil
		}},
		{"chat_simple", func(ctx context.Context) (string, error) {
			reply, err := nonEmptyChat(ctx, client, copilot.Prompt("Reply with exactly: HELLO_TEST_OK"), chatOpts())
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("response length=%d, preview='%s'", len(reply), truncate(reply, 80)), nil
		}},
		{"chat_with_model", func(ctx context.Context) (string, error) {
			reply, err := nonEmptyChat(ctx, client, copilot.Prompt("Reply with exactly: MODEL_TEST_OK"), chatOpts())
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("response length=%d, model=%s", len(reply), displayModel(model)), nil
		}},
		{"chat_with_system_prompt", func(ctx context.Context) (string, error) {
			reply, err := nonEmptyChat(ctx, client, copilot.Prompt("What language should I use?"), chatOpts(
				copilot.WithSystemPrompt("You are a Python expert. Always recommend Python. Keep answers under 20 words."),
			))
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("response='%s'", truncate(reply, 100)), nil
		}},
		{"chat_conversation", func(ctx context.Context) (string, error) {
			conversation := []copilot.ChatMessage{
				{Role: copilot.RoleUser, Content: "My name is TestBot."},
				{Role: copilot.RoleAssistant, Content: "Hello TestBot! How can I help you?"},
				{Role: copilot.RoleUser, Content: "What is my name? Reply in one word only."},
			}
			reply, err := nonEmptyChat(ctx, client, conversation, chatOpts())
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("response='%s'", truncate(reply, 80)), nil
		}},
		{"chat_full", func(ctx context.Context) (string, error) {
			resp, err := client.ChatFull(ctx, copilot.Prompt("Reply with: FULL_TEST_OK"), chatOpts()...)
			if err != nil {
				return "", err
			}
			if resp.Content == "" {
				return "", errors.New("content should not be empty")
			}
			if resp.Model == "" {
				return "", errors.New("model should not be empty")
			}
			return fmt.Sprintf("id=%d, model=%s, content_len=%d", resp.ID, resp.Model, len(resp.Content)), nil
		}},
		{"chat_stream", func(ctx context.Context) (string, error) {
			stream, err := client.ChatStream(ctx, copilot.Prompt("Count from 1 to 5, one number per line"), chatOpts()...)
			if err != nil {
				return "", err
			}
			chunks, text, err := collect(stream)
			if err != nil {
				return "", err
			}
			if chunks == 0 {
				return "", errors.New("should receive at least one chunk")
			}
			if text == "" {
				return "", errors.New("combined text should not be empty")
			}
			return fmt.Sprintf("%d chunks, total %d chars", chunks, len(text)), nil
		}},
		{"chat_json", func(ctx context.Context) (string, error) {
			var result map[string]any
			err := client.ChatJSON(ctx, copilot.Prompt(
				`Return a JSON object with keys "name" and "language". Values: "test" and "python". `+
					`Return ONLY valid JSON, no markdown.`), &result, chatOpts()...)
			if err != nil {
				return "", err
			}
			_, hasName := result["name"]
			_, hasLanguage := result["language"]
			if !hasName && !hasLanguage {
				return "", fmt.Errorf("expected 'name' or 'language' key, got %v", sortedKeys(result))
			}
			return fmt.Sprintf("parsed keys: %v", sortedKeys(result)), nil
		}},
		{"chat_empty_rejected", func(ctx context.Context) (string, error) {
			_, err := client.Chat(ctx, nil)
			if err == nil {
				return "", errors.New("should have rejected empty messages")
			}
			var validationErr *copilot.ValidationError
			if !errors.As(err, &validationErr) {
				return "", fmt.Errorf("expected ValidationError, got %s: %v", copilot.ErrorKind(err), err)
			}
			return "correctly rejected: ValidationError", nil
		}},
	}
}

// HTTPChecks probes the bridge endpoints directly, without the client library
func HTTPChecks(baseURL string, httpClient *http.Client) []Check {
	baseURL = strings.TrimRight(baseURL, "/")
	if httpClient == nil {
		httpClient = &http.Client{Timeout: rawHTTPTimeout}
	}

	get := func(ctx context.Context, path string) (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path, nil)
		if err != nil {
			return nil, err
		}
		return httpClient.Do(req)
	}

	return []Check{
		{"http_raw_status", func(ctx context.Context) (string, error) {
			resp, err := get(ctx, copilot.StatusEndpoint)
			if err != nil {
				return "", err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return "", fmt.Errorf("expected 200, got %d", resp.StatusCode)
			}
			var data map[string]any
			if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
				return "", fmt.Errorf("status body is not JSON: %w", err)
			}
			if data["status"] != "running" {
				return "", fmt.Errorf("expected status='running', got '%v'", data["status"])
			}
			return fmt.Sprintf("raw HTTP OK, port=%v", data["port"]), nil
		}},
		{"http_not_found", func(ctx context.Context) (string, error) {
			resp, err := get(ctx, "/nonexistent")
			if err != nil {
				return "", err
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusNotFound {
				return "", fmt.Errorf("expected 404, got %d", resp.StatusCode)
			}
			return "correctly returned 404", nil
		}},
		{"http_cors_headers", func(ctx context.Context) (string, error) {
			resp, err := get(ctx, copilot.StatusEndpoint)
			if err != nil {
				return "", err
			}
			resp.Body.Close()
			cors := resp.Header.Get("Access-Control-Allow-Origin")
			if cors != "*" {
				return "", fmt.Errorf("expected CORS '*', got '%s'", cors)
			}
			return "CORS header: " + cors, nil
		}},
	}
}

func nonEmptyChat(ctx context.Context, client copilot.Client, messages []copilot.ChatMessage, opts []copilot.ChatOption) (string, error) {
	reply, err := client.Chat(ctx, messages, opts...)
	if err != nil {
		return "", err
	}
	if reply == "" {
		return "", errors.New("response should not be empty")
	}
	return reply, nil
}

func collect(stream copilot.Stream) (int, string, error) {
	defer stream.Close()
	var sb strings.Builder
	chunks := 0
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return chunks, sb.String(), nil
		}
		if err != nil {
			return chunks, sb.String(), err
		}
		chunks++
		sb.WriteString(chunk)
	}
}

func displayModel(model string) string {
	if model == "" {
		return "default"
	}
	return model
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
