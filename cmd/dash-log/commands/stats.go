package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/dash-protocol/dash-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents       int
	EventsByLayer     map[log.Layer]int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	Sessions          map[string]*SessionStats
	Records           map[string]int
	Sentinels         map[log.SentinelKind]int
	Unresolved        int
	BodyBytes         int
	Errors            int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single decode or encode call.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Endpoint  string
	Records   int
	Failed    bool
}

// CollectStats reads every event from reader.
func CollectStats(reader *log.Reader) (*Stats, error) {
	stats := &Stats{
		EventsByLayer:     make(map[log.Layer]int),
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		Sessions:          make(map[string]*SessionStats),
		Records:           make(map[string]int),
		Sentinels:         make(map[log.SentinelKind]int),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByLayer[event.Layer]++
		stats.EventsByCategory[event.Category]++
		stats.EventsByDirection[event.Direction]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
				Endpoint:  event.Endpoint,
			}
			stats.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}

		switch {
		case event.Body != nil:
			stats.BodyBytes += event.Body.Size
		case event.Record != nil:
			sess.Records++
			stats.Records[event.Record.Schema]++
			for _, rel := range event.Record.Relations {
				if !rel.Resolved {
					stats.Unresolved++
				}
			}
		case event.Sentinel != nil:
			stats.Sentinels[event.Sentinel.Kind]++
		case event.Error != nil:
			stats.Errors++
			sess.Failed = true
		}
	}

	return stats, nil
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats, err := CollectStats(reader)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Dash Protocol Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Body Bytes:   %d\n", stats.BodyBytes)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Layer:")
	for _, layer := range []log.Layer{log.LayerBody, log.LayerSection, log.LayerRecord} {
		if count := stats.EventsByLayer[layer]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", layer.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryDecode, log.CategoryEncode, log.CategorySentinel, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []log.Direction{log.DirectionIn, log.DirectionOut} {
		if count := stats.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", dir.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.Records) > 0 {
		fmt.Fprintln(w, "Records:")
		schemas := make([]string, 0, len(stats.Records))
		for s := range stats.Records {
			schemas = append(schemas, s)
		}
		sort.Strings(schemas)
		for _, s := range schemas {
			fmt.Fprintf(w, "  %-16s %d\n", s+":", stats.Records[s])
		}
		if stats.Unresolved > 0 {
			fmt.Fprintf(w, "  Unresolved references: %d\n", stats.Unresolved)
		}
		fmt.Fprintln(w)
	}

	if len(stats.Sentinels) > 0 {
		fmt.Fprintln(w, "Sentinels:")
		for _, kind := range []log.SentinelKind{log.SentinelNotFound, log.SentinelAccessBlocked, log.SentinelNoUser} {
			if count := stats.Sentinels[kind]; count > 0 {
				fmt.Fprintf(w, "  %-16s %d\n", kind.String()+":", count)
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		type sessInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessInfo{id, ss})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, s := range sessions {
			status := "ok"
			if s.stats.Failed {
				status = "failed"
			}
			fmt.Fprintf(w, "  [%s] %s: %d events, %d records, %s\n",
				shortenSessionID(s.id), s.stats.Endpoint, s.stats.Events, s.stats.Records, status)
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
