// Command dash-log is a tool for viewing and analyzing Dash protocol log files.
//
// Log files are written by dash-decode with the --protocol-log flag, or by
// any program that hands a log.FileLogger to a response.Decoder.
//
// Usage:
//
//	dash-log <command> [flags] <file.dlog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSON or CSV format
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	dash-log view decode.dlog
//
//	# View only record-layer events
//	dash-log view --layer record decode.dlog
//
//	# View only encoded requests
//	dash-log view --direction out decode.dlog
//
//	# Export to CSV
//	dash-log export --format csv decode.dlog
//
//	# Keep only level records
//	dash-log filter --schema Level -o levels.dlog decode.dlog
//
//	# Keep users and profiles from one session
//	dash-log filter --session-id abc --schema SearchedUser,Profile -o users.dlog decode.dlog
//
//	# Show statistics
//	dash-log stats decode.dlog
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/dash-protocol/dash-go/cmd/dash-log/commands"
)

const usage = `dash-log - Dash Protocol Log Analyzer

Usage:
  dash-log <command> [flags] <file.dlog>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSON or CSV format
  filter   Filter log file and write to new file
  stats    Show statistics about the log file

Use "dash-log <command> --help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "view":
		err = runView(args)
	case "export":
		err = runExport(args)
	case "filter":
		err = runFilter(args)
	case "stats":
		err = runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newFlagSet creates a subcommand flag set with the given usage header.
func newFlagSet(name, header string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, header)
		fmt.Fprintln(os.Stderr, "\nFlags:")
		fs.PrintDefaults()
	}
	return fs
}

// parse parses args and returns the log file path. A nil path with a nil
// error means help was printed.
func parse(fs *pflag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return "", nil
		}
		return "", err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return "", fmt.Errorf("log file path required")
	}
	return fs.Arg(0), nil
}

func runView(args []string) error {
	fs := newFlagSet("view", `dash-log view - View log file in human-readable format

Usage:
  dash-log view [flags] <file.dlog>
`)
	layer := fs.String("layer", "", "Filter by layer (body, section, record)")
	direction := fs.String("direction", "", "Filter by direction (in, out)")
	category := fs.String("category", "", "Filter by category (decode, encode, sentinel, error)")
	endpoint := fs.String("endpoint", "", "Filter by endpoint script name")
	colorMode := fs.String("color", "auto", "Colorize output (auto, always, never)")
	maxData := fs.Int("max-data", commands.DefaultMaxData, "Body bytes to print per event (0 disables)")

	path, err := parse(fs, args)
	if path == "" {
		return err
	}

	filter := commands.ViewFilter{Endpoint: *endpoint}
	if *layer != "" {
		l, err := commands.ParseLayerFlag(*layer)
		if err != nil {
			return err
		}
		filter.Layer = &l
	}
	if *direction != "" {
		d, err := commands.ParseDirectionFlag(*direction)
		if err != nil {
			return err
		}
		filter.Direction = &d
	}
	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			return err
		}
		filter.Category = &c
	}

	opts := commands.ViewOptions{MaxData: *maxData}
	switch *colorMode {
	case "auto":
		opts.Color = isatty.IsTerminal(os.Stdout.Fd())
	case "always":
		opts.Color = true
	case "never":
	default:
		return fmt.Errorf("invalid color mode: %s (valid: auto, always, never)", *colorMode)
	}

	return commands.RunView(path, filter, opts, os.Stdout)
}

func runExport(args []string) error {
	fs := newFlagSet("export", `dash-log export - Export log file to JSON or CSV format

Usage:
  dash-log export [flags] <file.dlog>
`)
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.StringP("output", "o", "", "Output file (default: stdout)")

	path, err := parse(fs, args)
	if path == "" {
		return err
	}
	return commands.RunExport(path, *format, *output)
}

func runFilter(args []string) error {
	fs := newFlagSet("filter", `dash-log filter - Filter log file and write to new file

Usage:
  dash-log filter [flags] <file.dlog>
`)
	output := fs.StringP("output", "o", "", "Output file (required)")
	sessionID := fs.String("session-id", "", "Filter by session ID")
	endpoints := fs.StringSlice("endpoint", nil, "Filter by endpoint script name (repeatable or comma-separated)")
	schemas := fs.StringSlice("schema", nil, "Filter by record schema (repeatable or comma-separated)")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")
	layer := fs.String("layer", "", "Filter by layer (body, section, record)")
	direction := fs.String("direction", "", "Filter by direction (in, out)")
	category := fs.String("category", "", "Filter by category (decode, encode, sentinel, error)")

	path, err := parse(fs, args)
	if path == "" {
		return err
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("output file (-o) required")
	}

	return commands.RunFilter(path, commands.FilterOptions{
		Output:    *output,
		SessionID: *sessionID,
		Endpoints: *endpoints,
		Schemas:   *schemas,
		TimeStart: *timeStart,
		TimeEnd:   *timeEnd,
		Layer:     *layer,
		Direction: *direction,
		Category:  *category,
	}, os.Stdout)
}

func runStats(args []string) error {
	fs := newFlagSet("stats", `dash-log stats - Show statistics about the log file

Usage:
  dash-log stats <file.dlog>
`)
	path, err := parse(fs, args)
	if path == "" {
		return err
	}
	return commands.RunStats(path, os.Stdout)
}
