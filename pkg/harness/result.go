package harness

import (
	"fmt"
	"io"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
)

var (
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerRule = strings.Repeat("=", 60)
)

// Result is the outcome of one check
type Result struct {
	Name     string
	Passed   bool
	Message  string
	Duration time.Duration
}

// String renders the result as one report line
func (r Result) String() string {
	marker := passStyle.Render("[PASS]")
	if !r.Passed {
		marker = failStyle.Render("[FAIL]")
	}

	line := "  " + marker + " " + r.Name
	if r.Duration > 0 {
		line += dimStyle.Render(fmt.Sprintf(" (%.2fs)", r.Duration.Seconds()))
	}
	if r.Message != "" {
		line += " - " + r.Message
	}
	return line
}

func printHeader(w io.Writer, title string) {
	lipgloss.Fprintln(w)
	lipgloss.Fprintln(w, headerRule)
	lipgloss.Fprintln(w, "  "+titleStyle.Render(title))
	lipgloss.Fprintln(w, headerRule)
}

// Summary prints totals and the failed checks. It returns the number of failures.
func Summary(w io.Writer, results []Result) int {
	var passed, failed int
	var total time.Duration
	for _, r := range results {
		if r.Passed {
			passed++
		} else {
			failed++
		}
		total += r.Duration
	}

	printHeader(w, "TEST SUMMARY")
	lipgloss.Fprintf(w, "  Total:  %d\n", len(results))
	lipgloss.Fprintf(w, "  Passed: %s\n", passStyle.Render(fmt.Sprint(passed)))
	if failed > 0 {
		lipgloss.Fprintf(w, "  Failed: %s\n", failStyle.Render(fmt.Sprint(failed)))
	} else {
		lipgloss.Fprintf(w, "  Failed: %d\n", failed)
	}
	lipgloss.Fprintf(w, "  Time:   %.2fs\n", total.Seconds())

	if failed > 0 {
		lipgloss.Fprintln(w)
		lipgloss.Fprintln(w, "  Failed tests:")
		for _, r := range results {
			if !r.Passed {
				lipgloss.Fprintf(w, "    - %s: %s\n", r.Name, r.Message)
			}
		}
	}
	lipgloss.Fprintln(w)
	return failed
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
