package response

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dash-protocol/dash-go/pkg/log"
)

type stubLogger struct{ mock.Mock }

func (s *stubLogger) Log(ev log.Event) {
	s.Called(ev)
}

func newStubLogger() *stubLogger {
	s := &stubLogger{}
	s.On("Log", mock.Anything).Return()
	return s
}

func (s *stubLogger) events() []log.Event {
	var out []log.Event
	for _, c := range s.Calls {
		out = append(out, c.Arguments.Get(0).(log.Event))
	}
	return out
}

func TestDecoderLogsLevelListing(t *testing.T) {
	stub := newStubLogger()
	dec := NewDecoder(DecoderConfig{ProtocolLogger: stub})

	body := mustEncode(t, testLevel(1, 16, nil)) + "|" + mustEncode(t, testLevel(2, 999, ptr(uint64(500)))) +
		"#" + mustEncode(t, testCreator(16, "RobTop")) +
		"#" + mustEncode(t, testSong(500, "Song"))

	levels, err := dec.ParseLevels(body)
	require.NoError(t, err)
	require.Len(t, levels, 2)

	events := stub.events()
	// body, 3 sections, 1 creator, 1 song, 2 levels
	require.Len(t, events, 8)

	sessionID := events[0].SessionID
	assert.NotEmpty(t, sessionID)
	for _, ev := range events {
		assert.Equal(t, sessionID, ev.SessionID)
		assert.Equal(t, log.DirectionIn, ev.Direction)
		assert.Equal(t, "getGJLevels21", ev.Endpoint)
		assert.False(t, ev.Timestamp.IsZero())
	}

	require.NotNil(t, events[0].Body)
	assert.Equal(t, len(body), events[0].Body.Size)
	assert.True(t, events[0].Body.VerifyDigest([]byte(body)))

	for i, delim := range []string{"|", "|", "~:~"} {
		ev := events[1+i]
		require.NotNil(t, ev.Section, "event %d", 1+i)
		assert.Equal(t, i, ev.Section.Index)
		assert.Equal(t, delim, ev.Section.Delimiter)
	}
	assert.Equal(t, 2, events[1].Section.Fragments)

	assert.Equal(t, "Creator", events[4].Record.Schema)
	assert.Equal(t, 3, events[4].Record.Fields)
	assert.Equal(t, "NewgroundsSong", events[5].Record.Schema)

	assert.Equal(t, "Level", events[6].Record.Schema)
	assert.Equal(t, []log.Relation{{Name: "creator", ID: 16, Resolved: true}}, events[6].Record.Relations)
	assert.Equal(t, []log.Relation{
		{Name: "creator", ID: 999},
		{Name: "song", ID: 500, Resolved: true},
	}, events[7].Record.Relations)
}

func TestDecoderSessionsAreDistinct(t *testing.T) {
	stub := newStubLogger()
	dec := NewDecoder(DecoderConfig{ProtocolLogger: stub})

	_, err := dec.ParseProfileComments("2~aGVsbG8=~4~7~6~55~9~2 weeks")
	require.NoError(t, err)
	_, err = dec.ParseProfileComments("2~aGVsbG8=~4~7~6~55~9~2 weeks")
	require.NoError(t, err)

	events := stub.events()
	require.Len(t, events, 6)
	assert.NotEqual(t, events[0].SessionID, events[3].SessionID)
}

func TestDecoderLogsSentinelBodies(t *testing.T) {
	tests := []struct {
		body string
		kind log.SentinelKind
		err  error
	}{
		{body: "-1", kind: log.SentinelNotFound, err: ErrNotFound},
		{body: "error code: 1005", kind: log.SentinelAccessBlocked, err: ErrAccessBlocked},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			stub := newStubLogger()
			_, err := NewDecoder(DecoderConfig{ProtocolLogger: stub}).ParseProfile(tt.body)
			assert.ErrorIs(t, err, tt.err)

			events := stub.events()
			require.Len(t, events, 2)
			assert.Equal(t, log.CategorySentinel, events[1].Category)
			require.NotNil(t, events[1].Sentinel)
			assert.Equal(t, tt.kind, events[1].Sentinel.Kind)
			assert.Equal(t, tt.body, events[1].Sentinel.Text)
		})
	}
}

func TestDecoderLogsNoUserSentinel(t *testing.T) {
	stub := newStubLogger()
	dec := NewDecoder(DecoderConfig{ProtocolLogger: stub})

	_, err := dec.ParseLevelComments(commentFixture + ":" + NoUserSentinel)
	require.NoError(t, err)

	events := stub.events()
	require.Len(t, events, 4)
	assert.Equal(t, "LevelComment", events[2].Record.Schema)
	require.NotNil(t, events[3].Sentinel)
	assert.Equal(t, log.SentinelNoUser, events[3].Sentinel.Kind)
	assert.Equal(t, log.LayerRecord, events[3].Layer)
}

func TestDecoderLogsRecordErrors(t *testing.T) {
	stub := newStubLogger()
	dec := NewDecoder(DecoderConfig{ProtocolLogger: stub})

	_, err := dec.ParseProfileComments("2~x~4~y~6~1~9~now")
	require.Error(t, err)

	events := stub.events()
	last := events[len(events)-1]
	assert.Equal(t, log.CategoryError, last.Category)
	require.NotNil(t, last.Error)
	assert.Equal(t, log.LayerRecord, last.Error.Layer)
	assert.Equal(t, "decode ProfileComment", last.Error.Context)
	assert.Equal(t, err.Error(), last.Error.Message)
}

func TestDecoderLogsFormatErrors(t *testing.T) {
	stub := newStubLogger()
	dec := NewDecoder(DecoderConfig{ProtocolLogger: stub})

	_, err := dec.ParseLevels("a#b")
	require.ErrorIs(t, err, ErrUnexpectedFormat)

	events := stub.events()
	require.Len(t, events, 2)
	require.NotNil(t, events[1].Error)
	assert.Equal(t, log.LayerBody, events[1].Error.Layer)
}

func TestDecoderWithoutProtocolLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	dec := NewDecoder(DecoderConfig{Logger: logger})

	_, err := dec.ParseLevel("error code: 1005")
	assert.ErrorIs(t, err, ErrAccessBlocked)
	assert.Contains(t, buf.String(), "endpoint=downloadGJLevel22")
	assert.Contains(t, buf.String(), "blocked")
}

func TestDecoderZeroConfig(t *testing.T) {
	dec := NewDecoder(DecoderConfig{})
	comments, err := dec.ParseProfileComments("")
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestDecoderWritesToSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := log.NewSlogAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	dec := NewDecoder(DecoderConfig{ProtocolLogger: adapter})

	_, err := dec.ParseLevelComments(commentFixture + ":" + authorFixture)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"schema":"CommentUser"`)
}
