package copilot

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var fencedBlockRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// ExtractJSON decodes a JSON value from model output into out. It tries, in
// order, the whole text, the body of the first fenced code block and the
// span from the first '{' to the last '}'. When every stage fails it returns
// a *ParseError previewing the first 500 characters of text.
func ExtractJSON(text string, out any) error {
	if out == nil {
		return errors.New("copilot: ExtractJSON needs a non-nil target")
	}

	var lastErr error
	for _, candidate := range jsonCandidates(text) {
		if !json.Valid([]byte(candidate)) {
			continue
		}
		if err := json.Unmarshal([]byte(candidate), out); err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("no JSON value found in %d characters of text", len([]rune(text)))
	}
	return &ParseError{Preview: preview(text, ParsePreviewLimit), Err: lastErr}
}

func jsonCandidates(text string) []string {
	candidates := []string{text}

	if m := fencedBlockRe.FindStringSubmatch(text); m != nil {
		candidates = append(candidates, strings.TrimSpace(m[1]))
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		candidates = append(candidates, text[start:end+1])
	}
	return candidates
}

// preview cuts s to at most n characters
func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
