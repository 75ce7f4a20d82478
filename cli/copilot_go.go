package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/inansen/copilot-bridge-client/pkg/copilot"
	"github.com/inansen/copilot-bridge-client/pkg/harness"
)

// Options are the command line options; every connection setting can also
// come from the environment or a .env file in the working directory
type Options struct {
	BaseURL      string `short:"u" long:"base-url" env:"COPILOT_BRIDGE_URL" default:"http://127.0.0.1:3741" description:"Bridge HTTP base URL"`
	GRPCAddress  string `long:"grpc-address" env:"COPILOT_BRIDGE_GRPC_ADDR" default:"127.0.0.1:3742" description:"Bridge gRPC address"`
	APIKey       string `long:"api-key" env:"COPILOT_BRIDGE_API_KEY" description:"API key if the bridge requires one"`
	Transport    string `short:"t" long:"transport" choice:"http" choice:"grpc" default:"http" description:"Transport for --status, --list-models and --prompt"`
	Model        string `short:"m" long:"model" env:"COPILOT_BRIDGE_MODEL" description:"Model family, e.g. gpt-4o (bridge default if empty)"`
	Vendor       string `long:"vendor" env:"COPILOT_BRIDGE_VENDOR" description:"Model vendor, e.g. copilot"`
	SystemPrompt string `short:"s" long:"system-prompt" description:"System instruction sent with --prompt"`

	Status     bool   `long:"status" description:"Show bridge status"`
	ListModels bool   `long:"list-models" description:"List available models"`
	Prompt     string `short:"p" long:"prompt" description:"Send a single prompt and print the reply"`
	Stream     bool   `long:"stream" description:"Stream the reply of --prompt as it arrives"`
	JSONOutput bool   `long:"json" description:"Print --list-models as JSON, or parse the --prompt reply as JSON"`
	Discover   bool   `long:"discover" description:"Look for a running bridge on this machine and the local network"`

	Test     bool `long:"test" description:"Run the functional test harness against the bridge"`
	HTTPOnly bool `long:"http-only" description:"Harness: only run HTTP tests"`
	GRPCOnly bool `long:"grpc-only" description:"Harness: only run gRPC tests"`

	LogLevel string `long:"log-level" env:"COPILOT_BRIDGE_LOG_LEVEL" default:"info" description:"error, warn, info, debug or trace"`
	LogFile  string `long:"log-file" env:"COPILOT_BRIDGE_LOG_FILE" description:"Write logs to a rotating file instead of stderr"`
	Verbose  []bool `short:"v" description:"Verbose logging, repeat (-vv) for trace"`
	Version  bool   `long:"version" description:"Show version information"`
}

// extraGRPCOptions is appended to every gRPC client the command creates
var extraGRPCOptions []copilot.ClientOption

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(stderr, "Failed to load .env: %v\n", err)
		return 2
	}

	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "copilot-go"
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	if !opts.Status && !opts.ListModels && opts.Prompt == "" && !opts.Test && !opts.Discover && !opts.Version {
		parser.WriteHelp(stdout)
		printExamples(stdout)
		return 0
	}
	if opts.HTTPOnly && opts.GRPCOnly {
		fmt.Fprintln(stderr, "--http-only and --grpc-only cannot be combined")
		return 2
	}

	logger, closeLog, err := newLogger(&opts, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	defer closeLog()

	if opts.Version {
		fmt.Fprintf(stdout, "Copilot Bridge Go CLI version: %s\n", copilot.CopilotGoVersion)
		return 0
	}

	if opts.Discover {
		url, err := copilot.DiscoverBridgeServer(ctx, "", 0, logger)
		if err != nil {
			logger.Error("Could not discover a Copilot Bridge server: %v", err)
			return 1
		}
		fmt.Fprintf(stdout, "Copilot Bridge found at %s\n", url)
	}

	if opts.Test {
		return harness.Run(ctx, harness.Config{
			BaseURL:     opts.BaseURL,
			GRPCAddress: opts.GRPCAddress,
			HTTPOnly:    opts.HTTPOnly,
			GRPCOnly:    opts.GRPCOnly,
			APIKey:      opts.APIKey,
			Model:       opts.Model,
			GRPCOptions: extraGRPCOptions,
		}, stdin, stdout, logger)
	}

	if !opts.Status && !opts.ListModels && opts.Prompt == "" {
		return 0
	}

	client, err := newClient(&opts, logger)
	if err != nil {
		logger.Error("Failed to create client: %v", err)
		return 1
	}
	defer client.Close()

	if opts.Status {
		status, err := client.Status(ctx)
		if err != nil {
			fmt.Fprintf(stdout, "Copilot Bridge status: ERROR - %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Copilot Bridge status: %s @ %s\n", status.Status, endpoint(&opts))
		fmt.Fprintf(stdout, "  Version:         %s\n", status.Version)
		fmt.Fprintf(stdout, "  Default model:   %s\n", status.DefaultModel)
		fmt.Fprintf(stdout, "  Requests served: %d\n", status.RequestsServed)
	}

	if opts.ListModels {
		models, err := client.ListModels(ctx)
		if err != nil {
			logger.Error("Failed to list models: %v", err)
			return 1
		}
		if err := printModels(stdout, models, opts.JSONOutput); err != nil {
			logger.Error("Failed to print models: %v", err)
			return 1
		}
	}

	if opts.Prompt != "" {
		if err := sendPrompt(ctx, client, &opts, stdout); err != nil {
			logger.Error("Prompt failed: %v", err)
			return 1
		}
	}

	return 0
}

// newLogger builds the logger from --log-level, -v and --log-file. The
// returned func closes the log file, if any.
func newLogger(opts *Options, stderr io.Writer) (copilot.Logger, func(), error) {
	level, err := copilot.ParseLogLevel(opts.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case len(opts.Verbose) >= 2:
		level = copilot.LogLevelTrace
	case len(opts.Verbose) == 1 && level < copilot.LogLevelDebug:
		level = copilot.LogLevelDebug
	}

	if opts.LogFile == "" {
		return copilot.NewLoggerWithOutput(level, stderr), func() {}, nil
	}

	rotating := &lumberjack.Logger{
		Filename:   opts.LogFile,
		MaxSize:    5, // megabytes
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	}
	return copilot.NewLoggerWithOutput(level, rotating), func() { rotating.Close() }, nil
}

func newClient(opts *Options, logger copilot.Logger) (copilot.Client, error) {
	clientOpts := []copilot.ClientOption{
		copilot.WithDefaultModel(opts.Model),
		copilot.WithDefaultVendor(opts.Vendor),
		copilot.WithAPIKey(opts.APIKey),
	}
	if opts.Transport == "grpc" {
		return copilot.NewGRPCClient(opts.GRPCAddress, logger, append(clientOpts, extraGRPCOptions...)...)
	}
	return copilot.NewHTTPClient(opts.BaseURL, logger, clientOpts...), nil
}

func endpoint(opts *Options) string {
	if opts.Transport == "grpc" {
		return opts.GRPCAddress
	}
	return opts.BaseURL
}

func sendPrompt(ctx context.Context, client copilot.Client, opts *Options, stdout io.Writer) error {
	var chatOpts []copilot.ChatOption
	if opts.SystemPrompt != "" {
		chatOpts = append(chatOpts, copilot.WithSystemPrompt(opts.SystemPrompt))
	}
	messages := copilot.Prompt(opts.Prompt)

	switch {
	case opts.Stream:
		stream, err := client.ChatStream(ctx, messages, chatOpts...)
		if err != nil {
			return err
		}
		defer stream.Close()
		for {
			chunk, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				fmt.Fprintln(stdout)
				return err
			}
			fmt.Fprint(stdout, chunk)
		}
		fmt.Fprintln(stdout)

	case opts.JSONOutput:
		var value any
		if err := client.ChatJSON(ctx, messages, &value, chatOpts...); err != nil {
			return err
		}
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, string(data))

	default:
		reply, err := client.Chat(ctx, messages, chatOpts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, reply)
	}
	return nil
}

// printModels prints models as a table or as JSON
func printModels(w io.Writer, models []copilot.ModelInfo, jsonOutput bool) error {
	if jsonOutput {
		data, err := json.MarshalIndent(models, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	if len(models) == 0 {
		fmt.Fprintln(w, "No models found")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Family", "ID", "Name", "Vendor", "Max input")
	for i, m := range models {
		t.Row(strconv.Itoa(i+1), m.Family, m.ID, m.Name, m.Vendor, formatTokens(m.MaxInputTokens))
	}
	_, err := lipgloss.Fprintln(w, t.Render())
	return err
}

// formatTokens formats a token count in human-readable form
func formatTokens(n int) string {
	if n == 0 {
		return "N/A"
	}
	if n >= 1000 {
		return fmt.Sprintf("%dk", n/1000)
	}
	return strconv.Itoa(n)
}

func printExamples(w io.Writer) {
	fmt.Fprintln(w, "\nExamples:")
	fmt.Fprintln(w, "  Status:")
	fmt.Fprintln(w, "     --status")
	fmt.Fprintln(w, "\n  List models (as JSON):")
	fmt.Fprintln(w, "     --list-models [--json]")
	fmt.Fprintln(w, "\n  Ask a question with a specific model:")
	fmt.Fprintln(w, "     --model=gpt-4o --prompt=\"What is a monad?\"")
	fmt.Fprintln(w, "\n  Stream the reply over gRPC:")
	fmt.Fprintln(w, "     --transport=grpc --stream --prompt=\"Write a poem\"")
	fmt.Fprintln(w, "\n  Parse a JSON reply:")
	fmt.Fprintln(w, "     --json --prompt=\"Return a JSON object with keys name and language\"")
	fmt.Fprintln(w, "\n  Run the test harness (HTTP only):")
	fmt.Fprintln(w, "     --test --http-only")
	fmt.Fprintln(w, "\n  Very verbose logging (trace level):")
	fmt.Fprintln(w, "     -vv")
}
