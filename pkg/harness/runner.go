package harness

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/inansen/copilot-bridge-client/pkg/copilot"
)

const rawHTTPTimeout = 10 * time.Second

// Config selects what a harness run exercises
type Config struct {
	BaseURL     string
	GRPCAddress string
	HTTPOnly    bool
	GRPCOnly    bool
	APIKey      string
	// Model is the model family to test with; empty means pick interactively
	// from the live list (or the bridge default in gRPC-only runs)
	Model string

	// GRPCOptions are passed to the gRPC client, e.g. a custom dialer
	GRPCOptions []copilot.ClientOption
}

// Runner executes checks and reports each result as it completes
type Runner struct {
	out    io.Writer
	logger copilot.Logger
}

func NewRunner(out io.Writer, logger copilot.Logger) *Runner {
	if logger == nil {
		logger = copilot.NewLogger(copilot.LogLevelError)
	}
	return &Runner{out: out, logger: logger}
}

// RunChecks runs every check in order, naming results "<prefix>::<check>".
// A failing check never stops the remaining ones.
func (r *Runner) RunChecks(ctx context.Context, prefix string, checks []Check) []Result {
	results := make([]Result, 0, len(checks))
	for _, check := range checks {
		result := r.run(ctx, prefix+"::"+check.Name, check)
		results = append(results, result)
		lipgloss.Fprintln(r.out, result.String())
	}
	return results
}

func (r *Runner) run(ctx context.Context, name string, check Check) (result Result) {
	start := time.Now()
	result.Name = name

	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("Check %s panicked: %v", name, p)
			result.Passed = false
			result.Message = fmt.Sprintf("panic: %v", p)
		}
		result.Duration = time.Since(start)
	}()

	r.logger.Debug("Running check %s", name)
	msg, err := check.Run(ctx)
	if err != nil {
		result.Message = copilot.ErrorKind(err) + ": " + err.Error()
		return result
	}
	result.Passed = true
	result.Message = msg
	return result
}

// RunInterfaceChecks runs InterfaceChecks against client under a transport banner
func (r *Runner) RunInterfaceChecks(ctx context.Context, client copilot.Client, transport, model string) []Result {
	printHeader(r.out, transport+" Transport Tests (model: "+displayModel(model)+")")
	return r.RunChecks(ctx, transport, InterfaceChecks(client, model))
}

// RunHTTPChecks runs HTTPChecks against the bridge at baseURL
func (r *Runner) RunHTTPChecks(ctx context.Context, baseURL string) []Result {
	printHeader(r.out, "HTTP-Specific Tests")
	return r.RunChecks(ctx, "HTTP", HTTPChecks(baseURL, &http.Client{Timeout: rawHTTPTimeout}))
}

// Run performs a full harness run and returns the process exit code: 0 when
// every check passed, 1 otherwise. An unreachable HTTP bridge aborts the run;
// an unreachable gRPC server only skips the gRPC checks.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, logger copilot.Logger) int {
	if logger == nil {
		logger = copilot.NewLogger(copilot.LogLevelError)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = copilot.DefaultBaseURL
	}
	if cfg.GRPCAddress == "" {
		cfg.GRPCAddress = copilot.DefaultGRPCAddress
	}

	runner := NewRunner(out, logger)
	var results []Result
	selectedModel := cfg.Model

	if !cfg.GRPCOnly {
		client := copilot.NewHTTPClient(cfg.BaseURL, logger, copilot.WithAPIKey(cfg.APIKey))
		defer client.Close()

		lipgloss.Fprintf(out, "\nConnecting to HTTP server at %s...\n", cfg.BaseURL)
		status, err := client.Status(ctx)
		if err != nil {
			lipgloss.Fprintf(out, "  %s %v\n", failStyle.Render("CANNOT CONNECT:"), err)
			lipgloss.Fprintln(out, "  Make sure VS Code is running with the Copilot Bridge extension.")
			return 1
		}
		lipgloss.Fprintf(out, "  Connected! Server version: %s\n", status.Version)

		if selectedModel == "" {
			selectedModel, err = PickModel(ctx, client, in, out)
			if err != nil {
				lipgloss.Fprintf(out, "  Model selection failed: %v\n", err)
				return 1
			}
		}
		lipgloss.Fprintf(out, "\n  Using model: %s\n", selectedModel)

		results = append(results, runner.RunInterfaceChecks(ctx, client, "HTTP", selectedModel)...)
		results = append(results, runner.RunHTTPChecks(ctx, cfg.BaseURL)...)
	}

	if !cfg.HTTPOnly {
		results = append(results, runGRPC(ctx, runner, cfg, selectedModel, out, logger)...)
	}

	if Summary(out, results) > 0 {
		return 1
	}
	return 0
}

func runGRPC(ctx context.Context, runner *Runner, cfg Config, model string, out io.Writer, logger copilot.Logger) []Result {
	lipgloss.Fprintf(out, "\nConnecting to gRPC server at %s...\n", cfg.GRPCAddress)

	client, err := copilot.NewGRPCClient(cfg.GRPCAddress, logger, cfg.GRPCOptions...)
	if err != nil {
		lipgloss.Fprintf(out, "  gRPC client setup failed: %v\n", err)
		lipgloss.Fprintln(out, "  Skipping gRPC tests.")
		return nil
	}
	defer client.Close()

	status, err := client.Status(ctx)
	if err != nil {
		lipgloss.Fprintf(out, "  gRPC connection failed: %v\n", err)
		lipgloss.Fprintln(out, "  Skipping gRPC tests. Make sure the extension's gRPC server is enabled.")
		return nil
	}
	lipgloss.Fprintf(out, "  Connected! Server version: %s\n", status.Version)

	return runner.RunInterfaceChecks(ctx, client, "gRPC", model)
}
