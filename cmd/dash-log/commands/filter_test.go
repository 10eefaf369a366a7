package commands

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dash-protocol/dash-go/pkg/log"
)

func readAll(t *testing.T, path string) []log.Event {
	t.Helper()
	reader, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer reader.Close()

	var events []log.Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return events
		}
		if err != nil {
			t.Fatalf("failed to read event: %v", err)
		}
		events = append(events, event)
	}
}

func filterFixture(t *testing.T) string {
	base := time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC)
	return createTestLogFile(t, []log.Event{
		{Timestamp: base, SessionID: "sess-1", Direction: log.DirectionIn, Layer: log.LayerBody, Endpoint: "getGJLevels21", Body: log.NewBodyEvent("1:1")},
		{Timestamp: base.Add(time.Second), SessionID: "sess-1", Direction: log.DirectionIn, Layer: log.LayerRecord, Endpoint: "getGJLevels21",
			Record: &log.RecordEvent{Schema: "Level", Fields: 27}},
		{Timestamp: base.Add(2 * time.Second), SessionID: "sess-2", Direction: log.DirectionOut, Layer: log.LayerRecord, Category: log.CategoryEncode,
			Endpoint: "getGJUserInfo20", Record: &log.RecordEvent{Schema: "UserRequest", Fields: 4}},
		{Timestamp: base.Add(time.Hour), SessionID: "sess-3", Direction: log.DirectionIn, Layer: log.LayerBody, Category: log.CategorySentinel,
			Endpoint: "getGJUserInfo20", Sentinel: &log.SentinelEvent{Kind: log.SentinelAccessBlocked, Text: "error code: 1005"}},
	})
}

func TestFilterBySession(t *testing.T) {
	path := filterFixture(t)
	out := filepath.Join(t.TempDir(), "out.dlog")

	var buf bytes.Buffer
	if err := RunFilter(path, FilterOptions{Output: out, SessionID: "sess-1"}, &buf); err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	events := readAll(t, out)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	for _, e := range events {
		if e.SessionID != "sess-1" {
			t.Errorf("unexpected session %q", e.SessionID)
		}
	}
	summary := buf.String()
	if !strings.Contains(summary, "Filtered 2 of 4 events from 1 session to "+out) {
		t.Errorf("unexpected summary: %q", summary)
	}
	if !strings.Contains(summary, "sess-1: 2 events, endpoints getGJLevels21, schemas Level") {
		t.Errorf("missing session line: %q", summary)
	}
}

func TestFilterByDirectionAndCategory(t *testing.T) {
	path := filterFixture(t)
	out := filepath.Join(t.TempDir(), "out.dlog")

	if err := RunFilter(path, FilterOptions{Output: out, Direction: "out", Category: "encode"}, io.Discard); err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	events := readAll(t, out)
	if len(events) != 1 || events[0].Record == nil || events[0].Record.Schema != "UserRequest" {
		t.Fatalf("expected the encoded request record, got %+v", events)
	}
}

func TestFilterBySchemaAndEndpoint(t *testing.T) {
	path := filterFixture(t)

	out := filepath.Join(t.TempDir(), "schema.dlog")
	if err := RunFilter(path, FilterOptions{Output: out, Schemas: []string{"Level"}}, io.Discard); err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if events := readAll(t, out); len(events) != 1 {
		t.Errorf("expected 1 Level record, got %d", len(events))
	}

	out = filepath.Join(t.TempDir(), "endpoint.dlog")
	if err := RunFilter(path, FilterOptions{Output: out, Endpoints: []string{"getGJUserInfo20"}}, io.Discard); err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if events := readAll(t, out); len(events) != 2 {
		t.Errorf("expected 2 profile events, got %d", len(events))
	}
}

func TestFilterGroupsSummaryBySession(t *testing.T) {
	path := filterFixture(t)
	out := filepath.Join(t.TempDir(), "out.dlog")

	var buf bytes.Buffer
	opts := FilterOptions{Output: out, Endpoints: []string{"getGJUserInfo20", " ", "getGJLevels21"}}
	if err := RunFilter(path, opts, &buf); err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"Filtered 4 of 4 events from 3 sessions to " + out,
		"  sess-1: 2 events, endpoints getGJLevels21, schemas Level",
		"  sess-2: 1 events, endpoints getGJUserInfo20, schemas UserRequest",
		"  sess-3: 1 events, endpoints getGJUserInfo20, schemas -",
	}
	if len(lines) != len(want) {
		t.Fatalf("summary has %d lines, want %d: %q", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestFilterSchemaAndSessionTogether(t *testing.T) {
	path := filterFixture(t)
	out := filepath.Join(t.TempDir(), "out.dlog")

	var buf bytes.Buffer
	opts := FilterOptions{Output: out, SessionID: "sess-2", Schemas: []string{"Level", "UserRequest"}}
	if err := RunFilter(path, opts, &buf); err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	events := readAll(t, out)
	if len(events) != 1 || events[0].Record.Schema != "UserRequest" {
		t.Fatalf("expected only the sess-2 request record, got %+v", events)
	}
	if !strings.Contains(buf.String(), "Filtered 1 of 4 events from 1 session") {
		t.Errorf("unexpected summary: %q", buf.String())
	}
}

func TestFilterByTimeRange(t *testing.T) {
	path := filterFixture(t)
	out := filepath.Join(t.TempDir(), "out.dlog")

	opts := FilterOptions{
		Output:    out,
		TimeStart: "2026-01-28T10:15:32Z",
		TimeEnd:   "2026-01-28T10:20:00Z",
	}
	if err := RunFilter(path, opts, io.Discard); err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if events := readAll(t, out); len(events) != 3 {
		t.Errorf("expected 3 events in range, got %d", len(events))
	}
}

func TestFilterInvalidOptions(t *testing.T) {
	path := filterFixture(t)
	out := filepath.Join(t.TempDir(), "out.dlog")

	tests := []struct {
		name string
		opts FilterOptions
	}{
		{"bad time", FilterOptions{Output: out, TimeStart: "yesterday"}},
		{"bad layer", FilterOptions{Output: out, Layer: "wire"}},
		{"bad direction", FilterOptions{Output: out, Direction: "sideways"}},
		{"bad category", FilterOptions{Output: out, Category: "message"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := RunFilter(path, tt.opts, io.Discard); err == nil {
				t.Error("expected error")
			}
		})
	}
}
