package log

import (
	"context"
	"encoding/hex"
	"log/slog"
)

// SlogAdapter writes protocol events to an slog.Logger.
// Useful for development when you want to see protocol events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}

	if event.Endpoint != "" {
		attrs = append(attrs, slog.String("endpoint", event.Endpoint))
	}

	// Add type-specific attributes
	switch {
	case event.Body != nil:
		attrs = append(attrs,
			slog.Int("body_size", event.Body.Size),
			slog.Bool("truncated", event.Body.Truncated),
		)
		if len(event.Body.Digest) > 0 {
			attrs = append(attrs, slog.String("digest", hex.EncodeToString(event.Body.Digest)))
		}
	case event.Section != nil:
		attrs = append(attrs,
			slog.Int("section", event.Section.Index),
			slog.Int("fragments", event.Section.Fragments),
		)
		if event.Section.Dropped > 0 {
			attrs = append(attrs, slog.Int("dropped", event.Section.Dropped))
		}
	case event.Record != nil:
		attrs = append(attrs,
			slog.String("schema", event.Record.Schema),
			slog.Int("fields", event.Record.Fields),
		)
		for _, rel := range event.Record.Relations {
			attrs = append(attrs, slog.Group(rel.Name,
				slog.Uint64("id", rel.ID),
				slog.Bool("resolved", rel.Resolved),
			))
		}
	case event.Sentinel != nil:
		attrs = append(attrs, slog.String("sentinel", event.Sentinel.Kind.String()))
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "protocol", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
