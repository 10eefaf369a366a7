// Package log provides structured protocol logging for the dash codec.
//
// This package defines the Logger interface and Event types for capturing
// what happens while a response body is decoded or a request is encoded, at
// three layers (body, section, record). It is separate from operational
// logging (slog): protocol capture is a complete machine-readable trace for
// debugging decoding failures against real server output.
//
// # Basic Usage
//
// Applications configure logging by handing a Logger to the response decoder:
//
//	// For development: log to console via slog
//	dec := response.NewDecoder(response.DecoderConfig{
//	    ProtocolLogger: log.NewSlogAdapter(slog.Default()),
//	})
//
//	// For production: write to binary file
//	fl, _ := log.NewFileLogger("/var/log/dash/decode.dlog")
//	dec := response.NewDecoder(response.DecoderConfig{ProtocolLogger: fl})
//
//	// Both: use MultiLogger
//	dec := response.NewDecoder(response.DecoderConfig{
//	    ProtocolLogger: log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), fl),
//	})
//
// Request records log their encoding through the same interface with
// request.LogEncode.
//
// # Event Types
//
// Events are captured at multiple layers:
//   - Body: the raw body with its size and BLAKE3 digest (BodyEvent)
//   - Section: how a section split into fragments (SectionEvent)
//   - Record: one decoded record and its cross-references (RecordEvent)
//
// Reserved bodies and literals (SentinelEvent) and errors have dedicated
// event types.
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with the .dlog extension.
// The dash-log CLI tool provides viewing, filtering, and export capabilities.
package log
