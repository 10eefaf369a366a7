// Package commands implements the dash-log CLI commands.
package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/dash-protocol/dash-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Layer     *log.Layer
	Direction *log.Direction
	Category  *log.Category
	Endpoint  string
}

// ViewOptions controls how events are printed.
type ViewOptions struct {
	// Color enables ANSI colors.
	Color bool

	// MaxData is the number of body bytes printed. Zero prints none.
	MaxData int
}

// DefaultMaxData is the number of body bytes the view command prints.
const DefaultMaxData = 120

// palette holds the color functions used by the view command.
type palette struct {
	header   func(a ...any) string
	in       func(a ...any) string
	out      func(a ...any) string
	err      func(a ...any) string
	sentinel func(a ...any) string
	dim      func(a ...any) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		header:   mk(color.Bold),
		in:       mk(color.FgGreen),
		out:      mk(color.FgCyan),
		err:      mk(color.FgRed, color.Bold),
		sentinel: mk(color.FgYellow),
		dim:      mk(color.Faint),
	}
}

// formatter writes human-readable events.
type formatter struct {
	colors  palette
	maxData int
}

func newFormatter(opts ViewOptions) *formatter {
	return &formatter{colors: newPalette(opts.Color), maxData: opts.MaxData}
}

// formatEvent writes a human-readable representation of the event to w.
func (f *formatter) formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [sess:id] DIRECTION LAYER CATEGORY endpoint
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	sess := shortenSessionID(event.SessionID)

	dir := fmt.Sprintf("%-3s", event.Direction.String())
	if event.Direction == log.DirectionOut {
		dir = f.colors.out(dir)
	} else {
		dir = f.colors.in(dir)
	}

	category := event.Category.String()
	switch event.Category {
	case log.CategoryError:
		category = f.colors.err(category)
	case log.CategorySentinel:
		category = f.colors.sentinel(category)
	}

	fmt.Fprintf(w, "%s [sess:%s] %s %s %s", f.colors.dim(ts), sess, dir, f.colors.header(event.Layer.String()), category)
	if event.Endpoint != "" {
		fmt.Fprintf(w, " %s", event.Endpoint)
	}
	fmt.Fprintln(w)

	switch {
	case event.Body != nil:
		f.formatBodyDetails(w, event.Body)
	case event.Section != nil:
		formatSectionDetails(w, event.Section)
	case event.Record != nil:
		f.formatRecordDetails(w, event.Record)
	case event.Sentinel != nil:
		fmt.Fprintf(w, "  Sentinel: %s %q\n", f.colors.sentinel(event.Sentinel.Kind.String()), event.Sentinel.Text)
	case event.Error != nil:
		f.formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func (f *formatter) formatBodyDetails(w io.Writer, body *log.BodyEvent) {
	fmt.Fprintf(w, "  Size: %d bytes\n", body.Size)
	if len(body.Digest) > 0 {
		fmt.Fprintf(w, "  Digest: %s\n", hex.EncodeToString(body.Digest))
	}
	if f.maxData <= 0 || len(body.Data) == 0 {
		return
	}
	data := body.Data
	truncated := body.Truncated
	if len(data) > f.maxData {
		data = data[:f.maxData]
		truncated = true
	}
	fmt.Fprintf(w, "  Data: %q", data)
	if truncated {
		fmt.Fprint(w, " (truncated)")
	}
	fmt.Fprintln(w)
}

func formatSectionDetails(w io.Writer, s *log.SectionEvent) {
	fmt.Fprintf(w, "  Section %d: %d fragments split on %q", s.Index, s.Fragments, s.Delimiter)
	if s.Dropped > 0 {
		fmt.Fprintf(w, ", %d empty dropped", s.Dropped)
	}
	fmt.Fprintln(w)
}

func (f *formatter) formatRecordDetails(w io.Writer, r *log.RecordEvent) {
	fmt.Fprintf(w, "  Record: %s (%d fields)\n", r.Schema, r.Fields)
	for _, rel := range r.Relations {
		state := "resolved"
		if !rel.Resolved {
			state = f.colors.sentinel("unresolved")
		}
		fmt.Fprintf(w, "  %s -> %d (%s)\n", rel.Name, rel.ID, state)
	}
}

func (f *formatter) formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer.String())
	fmt.Fprintf(w, "  Message: %s\n", f.colors.err(err.Message))
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// ParseLayerFlag parses a layer string from command-line flag (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	return parseLayer(s)
}

func parseLayer(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "body":
		return log.LayerBody, nil
	case "section":
		return log.LayerSection, nil
	case "record":
		return log.LayerRecord, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be body, section, or record)", s)
	}
}

// ParseDirectionFlag parses a direction string from command-line flag (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	return parseDirection(s)
}

func parseDirection(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	return parseCategory(s)
}

func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "decode":
		return log.CategoryDecode, nil
	case "encode":
		return log.CategoryEncode, nil
	case "sentinel":
		return log.CategorySentinel, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be decode, encode, sentinel, or error)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, opts ViewOptions, output io.Writer) error {
	lf := log.Filter{
		Layer:     filter.Layer,
		Direction: filter.Direction,
		Category:  filter.Category,
	}
	if filter.Endpoint != "" {
		lf.Endpoints = []string{filter.Endpoint}
	}
	reader, err := log.NewFilteredReader(path, lf)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	f := newFormatter(opts)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		f.formatEvent(output, event)
	}

	return nil
}
