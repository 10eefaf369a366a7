package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dash-protocol/dash-go/pkg/log"
	"github.com/dash-protocol/dash-go/pkg/response"
)

func TestCollectStatsFromDecodes(t *testing.T) {
	path := captureDecode(t, func(d *response.Decoder) {
		if _, err := d.ParseProfileComments(profileCommentsBody); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if _, err := d.ParseProfile("error code: 1005"); err == nil {
			t.Fatal("expected access blocked")
		}
		if _, err := d.ParseSearchedUser("1:x"); err == nil {
			t.Fatal("expected decode failure")
		}
	})

	reader, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("failed to open log: %v", err)
	}
	defer reader.Close()

	stats, err := CollectStats(reader)
	if err != nil {
		t.Fatalf("CollectStats failed: %v", err)
	}

	if len(stats.Sessions) != 3 {
		t.Errorf("expected 3 sessions, got %d", len(stats.Sessions))
	}
	if got := stats.Records["ProfileComment"]; got != 2 {
		t.Errorf("expected 2 ProfileComment records, got %d", got)
	}
	if got := stats.Sentinels[log.SentinelAccessBlocked]; got != 1 {
		t.Errorf("expected 1 access blocked sentinel, got %d", got)
	}
	if stats.Errors != 1 {
		t.Errorf("expected 1 error, got %d", stats.Errors)
	}

	failed := 0
	for _, s := range stats.Sessions {
		if s.Failed {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("expected 1 failed session, got %d", failed)
	}
	if stats.BodyBytes != len(profileCommentsBody)+len("error code: 1005")+len("1:x") {
		t.Errorf("unexpected body bytes %d", stats.BodyBytes)
	}
}

func TestCollectStatsUnresolved(t *testing.T) {
	path := createTestLogFile(t, []log.Event{
		{SessionID: "s1", Layer: log.LayerRecord, Record: &log.RecordEvent{
			Schema: "Level",
			Relations: []log.Relation{
				{Name: "creator", ID: 1, Resolved: true},
				{Name: "song", ID: 2},
			},
		}},
		{SessionID: "s1", Layer: log.LayerRecord, Record: &log.RecordEvent{
			Schema:    "Level",
			Relations: []log.Relation{{Name: "creator", ID: 3}},
		}},
	})

	reader, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("failed to open log: %v", err)
	}
	defer reader.Close()

	stats, err := CollectStats(reader)
	if err != nil {
		t.Fatalf("CollectStats failed: %v", err)
	}
	if stats.Unresolved != 2 {
		t.Errorf("expected 2 unresolved references, got %d", stats.Unresolved)
	}
	if stats.Sessions["s1"].Records != 2 {
		t.Errorf("expected 2 records in session, got %d", stats.Sessions["s1"].Records)
	}
}

func TestRunStatsOutput(t *testing.T) {
	path := captureDecode(t, func(d *response.Decoder) {
		_, _ = d.ParseProfileComments(profileCommentsBody)
		_, _ = d.ParseLevel("-1")
	})

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"=== Dash Protocol Log Statistics ===",
		"Total Events: 6",
		"ProfileComment:",
		"NOT_FOUND:",
		"Sessions: 2",
		"getGJAccountComments20: 4 events, 2 records, ok",
		"downloadGJLevel22: 2 events, 0 records, ok",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
	if strings.Contains(output, "Errors:") {
		t.Errorf("unexpected errors line:\n%s", output)
	}
}
