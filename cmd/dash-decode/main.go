// Command dash-decode decodes Geometry Dash server replies and prints the
// requests that produce them.
//
// Without an endpoint argument it starts an interactive session. With one,
// it decodes a single body read from a file or stdin and exits.
//
// Usage:
//
//	dash-decode [flags] [endpoint [file]]
//
// Flags:
//
//	--config string        Configuration file path (YAML)
//	--base-url string      Server base URL used for printed requests
//	--client string        Client manifest requests are built from (default "2.2")
//	--protocol-log string  Write protocol events to this CBOR file
//	--log-level string     Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Decode a saved level search
//	dash-decode levels search.txt
//
//	# Decode from stdin and record every event
//	curl ... | dash-decode --protocol-log decode.dlog levels
//
//	# Interactive session against a private server
//	dash-decode --base-url https://gdps.example.com/db/
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/dash-protocol/dash-go/pkg/log"
	"github.com/dash-protocol/dash-go/pkg/request"
	"github.com/dash-protocol/dash-go/pkg/response"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("dash-decode", pflag.ContinueOnError)
	configFile := fs.String("config", "", "Configuration file path (YAML)")
	baseURL := fs.String("base-url", "", "Server base URL used for printed requests")
	client := fs.String("client", "", "Client manifest requests are built from")
	protocolLog := fs.String("protocol-log", "", "Write protocol events to this CBOR file")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	fs.BoolP("help", "h", false, "Show help")

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}
	if help, _ := fs.GetBool("help"); help {
		fs.PrintDefaults()
		return nil
	}

	cfg := DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = LoadConfig(*configFile); err != nil {
			return err
		}
	}
	applyFlags(&cfg, fs, *baseURL, *client, *protocolLog, *logLevel)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := cfg.level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := request.SetDefaultBaseURL(cfg.BaseURL); err != nil {
		return err
	}
	base, err := cfg.Base()
	if err != nil {
		return err
	}

	protocol, closeLog, err := openProtocolLog(cfg, logger)
	if err != nil {
		return err
	}
	defer closeLog()

	decoder := response.NewDecoder(response.DecoderConfig{
		Logger:         logger,
		ProtocolLogger: protocol,
	})

	if fs.NArg() > 0 {
		return decodeOnce(decoder, fs.Arg(0), fs.Arg(1), os.Stdout)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	session, err := NewInteractive(decoder, base, request.Endpoints{}, protocol)
	if err != nil {
		return err
	}
	logger.Info("interactive session started", "base_url", request.DefaultBaseURL(), "client", cfg.Client)
	session.Run(ctx)
	return nil
}

// applyFlags overrides cfg with the flags given on the command line.
func applyFlags(cfg *Config, fs *pflag.FlagSet, baseURL, client, protocolLog, logLevel string) {
	if fs.Changed("base-url") {
		cfg.BaseURL = baseURL
	}
	if fs.Changed("client") {
		cfg.Client = client
	}
	if fs.Changed("protocol-log") {
		cfg.ProtocolLog = protocolLog
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
}

// openProtocolLog creates the protocol logger described by cfg. At debug
// level events are mirrored to the operational logger. The returned logger
// is nil when neither is enabled.
func openProtocolLog(cfg Config, logger *slog.Logger) (log.Logger, func(), error) {
	var file *log.FileLogger
	if cfg.ProtocolLog != "" {
		var err error
		file, err = log.NewFileLogger(cfg.ProtocolLog)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open protocol log: %w", err)
		}
	}

	var mirror log.Logger
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		mirror = log.NewSlogAdapter(logger)
	}

	closeLog := func() {
		if file == nil {
			return
		}
		if err := file.Close(); err != nil {
			logger.Warn("failed to close protocol log", "error", err)
		}
		if dropped := file.Dropped(); dropped > 0 {
			logger.Warn("protocol events dropped", "count", dropped, "path", file.Path())
		}
	}

	var fileLogger log.Logger
	if file != nil {
		fileLogger = file
	}
	multi := log.NewMultiLogger(fileLogger, mirror)
	if multi.Len() == 0 {
		return nil, closeLog, nil
	}
	return multi, closeLog, nil
}

// decodeOnce decodes a single body from path, or stdin when path is empty
// or "-".
func decodeOnce(d *response.Decoder, endpoint, path string, w io.Writer) error {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}
	return Decode(d, endpoint, string(data), w)
}
