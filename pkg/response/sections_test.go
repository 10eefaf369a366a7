package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckBody(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{name: "not found", body: "-1", want: ErrNotFound},
		{name: "access blocked", body: "error code: 1005", want: ErrAccessBlocked},
		{name: "data", body: "1:2:3", want: nil},
		{name: "empty", body: "", want: nil},
		{name: "not found prefix only", body: "-1#", want: nil},
		{name: "negative number", body: "-10", want: nil},
		{name: "blocked with newline", body: "error code: 1005\n", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckBody(tt.body))
		})
	}
}

func TestSections(t *testing.T) {
	got, err := Sections("a#b#c", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestSectionsKeepsExtra(t *testing.T) {
	got, err := Sections("a#b#c#d", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestSectionsTooFew(t *testing.T) {
	_, err := Sections("a#b", 3)
	require.ErrorIs(t, err, ErrUnexpectedFormat)
	assert.Contains(t, err.Error(), "got 2 sections, want at least 3")
}

func TestSectionsSentinelsBeforeSplit(t *testing.T) {
	_, err := Sections("-1", 3)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Sections("error code: 1005", 1)
	assert.ErrorIs(t, err, ErrAccessBlocked)
}

func TestSectionsEmptyBody(t *testing.T) {
	got, err := Sections("", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{""}, got)
}

func TestSplitFragments(t *testing.T) {
	tests := []struct {
		name    string
		section string
		delim   string
		want    []string
		dropped int
	}{
		{name: "plain", section: "a|b|c", delim: "|", want: []string{"a", "b", "c"}},
		{name: "doubled delimiter", section: "a||b", delim: "|", want: []string{"a", "b"}, dropped: 1},
		{name: "leading and trailing", section: "|a|", delim: "|", want: []string{"a"}, dropped: 2},
		{name: "empty section", section: "", delim: "|", want: []string{}, dropped: 1},
		{name: "multi char delimiter", section: "x~:~y~:~~:~z", delim: "~:~", want: []string{"x", "y", "z"}, dropped: 1},
		{name: "no delimiter", section: "single", delim: "|", want: []string{"single"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, dropped := splitFragments(tt.section, tt.delim)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.dropped, dropped)
			assert.Equal(t, tt.want, SplitFragments(tt.section, tt.delim))
		})
	}
}
