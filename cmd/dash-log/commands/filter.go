package commands

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/dash-protocol/dash-go/pkg/log"
)

// FilterOptions specifies filtering criteria for the filter command.
// Endpoints and Schemas match any of their entries.
type FilterOptions struct {
	Output    string
	SessionID string
	Endpoints []string
	Schemas   []string
	TimeStart string
	TimeEnd   string
	Layer     string
	Direction string
	Category  string
}

// RunFilter copies the events of path that match opts into opts.Output and
// writes a per-session summary of what was kept to w.
func RunFilter(path string, opts FilterOptions, w io.Writer) error {
	filter, err := opts.logFilter()
	if err != nil {
		return err
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(opts.Output)
	if err != nil {
		return fmt.Errorf("failed to create output logger: %w", err)
	}

	var kept sessionTally
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Close()
			return fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
		kept.add(event)
	}

	if err := logger.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	if dropped := logger.Dropped(); dropped > 0 {
		return fmt.Errorf("failed to write %d of %d events to %s", dropped, kept.events, opts.Output)
	}

	kept.print(w, reader.Scanned(), opts.Output)
	return nil
}

// logFilter turns the textual options into a log.Filter.
func (o FilterOptions) logFilter() (log.Filter, error) {
	filter := log.Filter{
		SessionID: o.SessionID,
		Endpoints: nonEmpty(o.Endpoints),
		Schemas:   nonEmpty(o.Schemas),
	}

	var err error
	if filter.TimeStart, err = parseTimeOpt("time-start", o.TimeStart); err != nil {
		return filter, err
	}
	if filter.TimeEnd, err = parseTimeOpt("time-end", o.TimeEnd); err != nil {
		return filter, err
	}
	if filter.Layer, err = parseOpt(o.Layer, parseLayer); err != nil {
		return filter, err
	}
	if filter.Direction, err = parseOpt(o.Direction, parseDirection); err != nil {
		return filter, err
	}
	if filter.Category, err = parseOpt(o.Category, parseCategory); err != nil {
		return filter, err
	}
	return filter, nil
}

func parseOpt[T any](s string, parse func(string) (T, error)) (*T, error) {
	if s == "" {
		return nil, nil
	}
	v, err := parse(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseTimeOpt(name, s string) (*time.Time, error) {
	t, err := parseOpt(s, func(s string) (time.Time, error) {
		return time.Parse(time.RFC3339, s)
	})
	if err != nil {
		return nil, fmt.Errorf("invalid %s format: %w", name, err)
	}
	return t, nil
}

// nonEmpty drops blank entries, which a trailing comma on the command line
// produces.
func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// sessionTally groups kept events by session, in order of first appearance.
type sessionTally struct {
	events   int
	order    []string
	sessions map[string]*keptSession
}

type keptSession struct {
	events    int
	endpoints []string
	schemas   []string
}

func (t *sessionTally) add(event log.Event) {
	if t.sessions == nil {
		t.sessions = make(map[string]*keptSession)
	}
	s, ok := t.sessions[event.SessionID]
	if !ok {
		s = &keptSession{}
		t.sessions[event.SessionID] = s
		t.order = append(t.order, event.SessionID)
	}
	t.events++
	s.events++
	if event.Endpoint != "" && !slices.Contains(s.endpoints, event.Endpoint) {
		s.endpoints = append(s.endpoints, event.Endpoint)
	}
	if event.Record != nil && !slices.Contains(s.schemas, event.Record.Schema) {
		s.schemas = append(s.schemas, event.Record.Schema)
	}
}

func (t *sessionTally) print(w io.Writer, scanned int, output string) {
	noun := "sessions"
	if len(t.order) == 1 {
		noun = "session"
	}
	fmt.Fprintf(w, "Filtered %d of %d events from %d %s to %s\n", t.events, scanned, len(t.order), noun, output)
	for _, id := range t.order {
		s := t.sessions[id]
		fmt.Fprintf(w, "  %s: %d events, endpoints %s, schemas %s\n",
			orDash(id), s.events, joinOrDash(s.endpoints), joinOrDash(s.schemas))
	}
}

func joinOrDash(values []string) string {
	return orDash(strings.Join(values, ","))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
