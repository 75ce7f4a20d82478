package harness

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/inansen/copilot-bridge-client/pkg/copilot"
)

// ErrNoModels is returned by PickModel when the bridge lists no models
var ErrNoModels = errors.New("no models available")

var ruleLine = strings.Repeat("─", 50)

// PickModel lists the bridge models on out and reads a 1-based choice from
// in. A blank line or end of input selects the first model; anything else
// out of range re-prompts. The chosen model's family is returned, or its id
// when the family is empty.
func PickModel(ctx context.Context, client copilot.Client, in io.Reader, out io.Writer) (string, error) {
	models, err := client.ListModels(ctx)
	if err != nil {
		return "", err
	}
	if len(models) == 0 {
		lipgloss.Fprintln(out, "  No models available!")
		return "", ErrNoModels
	}

	lipgloss.Fprintf(out, "\n  Available models (%d):\n", len(models))
	lipgloss.Fprintf(out, "  %s\n", ruleLine)
	for i, m := range models {
		lipgloss.Fprintf(out, "  %3d) %-30s %s\n", i+1, modelName(m), dimStyle.Render("["+m.Vendor+"]"))
	}
	lipgloss.Fprintf(out, "  %s\n", ruleLine)

	scanner := bufio.NewScanner(in)
	for {
		lipgloss.Fprintf(out, "  Select model [1-%d] (default=1): ", len(models))
		if !scanner.Scan() {
			lipgloss.Fprintln(out)
			return modelName(models[0]), nil
		}

		choice := strings.TrimSpace(scanner.Text())
		if choice == "" {
			return modelName(models[0]), nil
		}

		idx, err := strconv.Atoi(choice)
		if err != nil {
			lipgloss.Fprintf(out, "  Invalid input. Enter 1-%d.\n", len(models))
			continue
		}
		if idx < 1 || idx > len(models) {
			lipgloss.Fprintf(out, "  Invalid choice. Enter 1-%d.\n", len(models))
			continue
		}
		return modelName(models[idx-1]), nil
	}
}

func modelName(m copilot.ModelInfo) string {
	if m.Family != "" {
		return m.Family
	}
	return m.ID
}
