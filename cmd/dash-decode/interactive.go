package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/dash-protocol/dash-go/pkg/log"
	"github.com/dash-protocol/dash-go/pkg/request"
	"github.com/dash-protocol/dash-go/pkg/response"
)

// Interactive runs the dash-decode command loop.
type Interactive struct {
	decoder   *response.Decoder
	base      request.BaseRequest
	endpoints request.Endpoints
	protocol  log.Logger
	rl        *readline.Instance
}

// NewInteractive creates the command loop.
func NewInteractive(d *response.Decoder, base request.BaseRequest, endpoints request.Endpoints, protocol log.Logger) (*Interactive, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "dash> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Interactive{
		decoder:   d,
		base:      base,
		endpoints: endpoints,
		protocol:  protocol,
		rl:        rl,
	}, nil
}

func completer() *readline.PrefixCompleter {
	var endpoints []readline.PrefixCompleterInterface
	for _, name := range endpointNames() {
		endpoints = append(endpoints, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("decode", endpoints...),
		readline.PcItem("request", endpoints...),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// Run reads commands until quit, EOF or ctx is done.
func (i *Interactive) Run(ctx context.Context) {
	defer i.rl.Close()

	i.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := i.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			i.printHelp()
		case "decode", "d":
			i.cmdDecode(input, args)
		case "request", "r":
			i.cmdRequest(args)
		case "quit", "exit", "q":
			return
		default:
			fmt.Fprintf(i.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (i *Interactive) printHelp() {
	fmt.Fprintf(i.rl.Stdout(), `
Dash Decode Commands:
  decode <endpoint> <body>   - Decode a response body
  decode <endpoint> @<file>  - Decode a response body read from a file
  request <endpoint> <arg>   - Print the URL and form body of a request
  help                       - Show this help
  quit                       - Exit

  Endpoints: %s
`, strings.Join(endpointNames(), ", "))
}

func (i *Interactive) cmdDecode(input string, args []string) {
	out := i.rl.Stdout()
	if len(args) < 2 {
		fmt.Fprintln(out, "Usage: decode <endpoint> <body|@file>")
		return
	}

	// The body is everything after the endpoint, spaces included.
	rest := strings.TrimSpace(input[len(strings.Fields(input)[0]):])
	body := strings.TrimSpace(strings.TrimPrefix(rest, args[0]))
	if strings.HasPrefix(body, "@") {
		data, err := os.ReadFile(body[1:])
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		body = string(data)
	}

	if err := Decode(i.decoder, args[0], body, out); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}

func (i *Interactive) cmdRequest(args []string) {
	out := i.rl.Stdout()
	if len(args) < 2 {
		fmt.Fprintln(out, "Usage: request <endpoint> <arg>")
		return
	}
	r, err := buildRequest(i.base, args[0], args[1:])
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	if err := printRequest(out, i.protocol, i.endpoints, r); err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}
}
