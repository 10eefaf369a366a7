package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dash-protocol/dash-go/pkg/log"
)

// RunExport exports the log file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

// eventType names the payload carried by an event.
func eventType(event log.Event) string {
	switch {
	case event.Body != nil:
		return "body"
	case event.Section != nil:
		return "section"
	case event.Record != nil:
		return "record"
	case event.Sentinel != nil:
		return "sentinel"
	case event.Error != nil:
		return "error"
	default:
		return "unknown"
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "session_id", "direction", "layer", "category", "endpoint", "type", "detail"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		detail := ""
		switch {
		case event.Body != nil:
			detail = strconv.Itoa(event.Body.Size)
		case event.Section != nil:
			detail = strconv.Itoa(event.Section.Fragments)
		case event.Record != nil:
			detail = event.Record.Schema
		case event.Sentinel != nil:
			detail = event.Sentinel.Kind.String()
		case event.Error != nil:
			detail = event.Error.Message
		}

		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.SessionID,
			event.Direction.String(),
			event.Layer.String(),
			event.Category.String(),
			event.Endpoint,
			eventType(event),
			detail,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
