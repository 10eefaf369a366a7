package response

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dash-protocol/dash-go/pkg/model"
	"github.com/dash-protocol/dash-go/pkg/version"
	"github.com/dash-protocol/dash-go/pkg/wire"
)

type encoder interface {
	Encode() (string, error)
}

func mustEncode(t *testing.T, v encoder) string {
	t.Helper()
	s, err := v.Encode()
	require.NoError(t, err)
	return s
}

func testLevel(id, creatorID uint64, songID *uint64) *model.Level {
	return &model.Level{
		LevelID:      id,
		Name:         "Level " + strings.Repeat("I", int(id%4)+1),
		Version:      1,
		CreatorID:    creatorID,
		Downloads:    100,
		GDVersion:    version.GameVersion{Major: 2, Minor: 1},
		Length:       model.LengthShort,
		CustomSongID: songID,
	}
}

func testCreator(userID uint64, name string) *model.Creator {
	return &model.Creator{UserID: userID, Name: name}
}

func testSong(id uint64, name string) *model.NewgroundsSong {
	return &model.NewgroundsSong{
		SongID:   id,
		Name:     name,
		Artist:   "Dimrain47",
		Filesize: 9.56,
		Link:     model.NewLink("http://audio.ngfiles.com/song.mp3"),
	}
}

func ptr[T any](v T) *T { return &v }

func TestParseLevelsCrossReference(t *testing.T) {
	lvl1 := mustEncode(t, testLevel(1, 16, nil))
	lvl2 := mustEncode(t, testLevel(2, 999, ptr(uint64(500))))
	creator1 := mustEncode(t, testCreator(16, "RobTop"))
	creator2 := mustEncode(t, testCreator(17, "Viprin"))
	song1 := mustEncode(t, testSong(400, "Other"))
	song2 := mustEncode(t, testSong(500, "At the Speed of Light"))

	body := lvl1 + "|" + lvl2 + "#" + creator1 + "|" + creator2 + "#" + song1 + "~:~" + song2

	levels, err := ParseLevels(body)
	require.NoError(t, err)
	require.Len(t, levels, 2)

	assert.Equal(t, uint64(1), levels[0].LevelID)
	require.NotNil(t, levels[0].Creator)
	assert.Equal(t, "RobTop", levels[0].Creator.Name)
	assert.Nil(t, levels[0].CustomSong)

	assert.Equal(t, uint64(2), levels[1].LevelID)
	assert.Nil(t, levels[1].Creator)
	require.NotNil(t, levels[1].CustomSong)
	assert.Equal(t, "At the Speed of Light", levels[1].CustomSong.Name)
}

func TestParseLevelsSharesRelatedRecords(t *testing.T) {
	body := mustEncode(t, testLevel(1, 16, nil)) + "|" + mustEncode(t, testLevel(2, 16, nil)) +
		"#" + mustEncode(t, testCreator(16, "RobTop")) + "#"

	levels, err := ParseLevels(body)
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Same(t, levels[0].Creator, levels[1].Creator)
}

func TestParseLevelsFirstMatchWins(t *testing.T) {
	body := mustEncode(t, testLevel(1, 16, nil)) +
		"#" + mustEncode(t, testCreator(16, "first")) + "|" + mustEncode(t, testCreator(16, "second")) + "#"

	levels, err := ParseLevels(body)
	require.NoError(t, err)
	require.Len(t, levels, 1)
	require.NotNil(t, levels[0].Creator)
	assert.Equal(t, "first", levels[0].Creator.Name)
}

func TestParseLevelsDropsEmptyFragments(t *testing.T) {
	lvl := mustEncode(t, testLevel(1, 16, nil))
	body := "|" + lvl + "||" + lvl + "|#" + mustEncode(t, testCreator(16, "RobTop")) + "||#~:~"

	levels, err := ParseLevels(body)
	require.NoError(t, err)
	assert.Len(t, levels, 2)
}

func TestParseLevelsEmptySections(t *testing.T) {
	levels, err := ParseLevels("##")
	require.NoError(t, err)
	assert.Empty(t, levels)
}

func TestParseLevelsTooFewSections(t *testing.T) {
	_, err := ParseLevels(mustEncode(t, testLevel(1, 16, nil)) + "#")
	assert.ErrorIs(t, err, ErrUnexpectedFormat)
}

func TestParseLevelsRecordFailureAbortsCall(t *testing.T) {
	good := mustEncode(t, testLevel(1, 16, nil))

	tests := []struct {
		name   string
		body   string
		record string
	}{
		{name: "level", body: good + "|1:x#" + "#", record: "Level"},
		{name: "creator", body: good + "#16:RobTop:71|oops#", record: "Creator"},
		{name: "song", body: good + "##1~|~nope", record: "NewgroundsSong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			levels, err := ParseLevels(tt.body)
			assert.Nil(t, levels)

			var decodeErr *wire.DecodeError
			require.True(t, errors.As(err, &decodeErr), "got %v", err)
			assert.Equal(t, tt.record, decodeErr.Record)
		})
	}
}

func TestParseLevelsSentinels(t *testing.T) {
	_, err := ParseLevels("-1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ParseLevels("error code: 1005")
	assert.ErrorIs(t, err, ErrAccessBlocked)
}

func TestParseLevelUsesFirstSection(t *testing.T) {
	in := testLevel(128, 16, nil)
	data, err := model.NewLevelData([]byte("kS38,1_40_2_125;1,1,2,15,3,15;"))
	require.NoError(t, err)
	in.Data = data

	body := mustEncode(t, in) + "#aa0d0f1e9b1c#2073761,1,16"
	l, err := ParseLevel(body)
	require.NoError(t, err)

	assert.Equal(t, uint64(128), l.LevelID)
	require.NotNil(t, l.Data)
	got, err := l.Data.Value()
	require.NoError(t, err)
	assert.Equal(t, "kS38,1_40_2_125;1,1,2,15,3,15;", string(got))
}

func TestParseLevelNotFound(t *testing.T) {
	_, err := ParseLevel("-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseProfileWholeBody(t *testing.T) {
	body := "1:RobTop:2:16:13:149:17:0:10:3:11:12:3:301:4:15:8:0:18:0:19:0:50:0:20:RobTopGames" +
		":21:1:30:0:16:71:44:RobTopGames:45::46:0:49:2"

	p, err := ParseProfile(body)
	require.NoError(t, err)
	assert.Equal(t, "RobTop", p.Name)
	assert.Equal(t, uint64(16), p.UserID)
	assert.Equal(t, uint64(71), p.AccountID)
	assert.Equal(t, uint32(301), p.Stars)
	assert.Nil(t, p.Rank)
	assert.Nil(t, p.Twitch)
	assert.Equal(t, model.ModElder, p.ModLevel)
}

func TestParseProfileDoesNotSplitSections(t *testing.T) {
	// A '#' inside a profile field is data, not a section break.
	body := "1:Rob#Top:2:16:3:1:4:0:8:0:10:0:11:0:13:0:16:71:17:0"

	p, err := ParseProfile(body)
	require.NoError(t, err)
	assert.Equal(t, "Rob#Top", p.Name)
}

func TestParseProfileSentinels(t *testing.T) {
	_, err := ParseProfile("-1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ParseProfile("error code: 1005")
	assert.ErrorIs(t, err, ErrAccessBlocked)
}

func TestParseSearchedUser(t *testing.T) {
	body := "1:RobTop:2:16:13:149:17:0:6::9:4:10:3:11:12:14:0:15:2:16:71:3:301:8:0:4:15#999:0:10"

	u, err := ParseSearchedUser(body)
	require.NoError(t, err)
	assert.Equal(t, "RobTop", u.Name)
	assert.Equal(t, uint64(71), u.AccountID)
	assert.Nil(t, u.Rank)
	assert.True(t, u.HasGlow())
}

func TestParseSearchedUserNotFound(t *testing.T) {
	_, err := ParseSearchedUser("-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

const (
	commentFixture = "2~R3JlYXQgbGV2ZWwh~3~16~4~12~7~0~10~97~9~5 days~6~1337~11~2~12~75,255,75"
	authorFixture  = "1~RobTop~9~4~10~0~11~3~14~0~15~2~16~71"
)

func TestParseLevelComments(t *testing.T) {
	body := commentFixture + ":" + authorFixture + "|" + commentFixture + ":" + NoUserSentinel + "#0:20:10"

	comments, err := ParseLevelComments(body)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	require.NotNil(t, comments[0].User)
	assert.Equal(t, "RobTop", comments[0].User.Name)
	require.NotNil(t, comments[0].User.AccountID)
	assert.Equal(t, uint64(71), *comments[0].User.AccountID)

	assert.Nil(t, comments[1].User)
	content, err := comments[1].Content.Value()
	require.NoError(t, err)
	assert.Equal(t, "Great level!", content)
}

func TestParseLevelCommentsRoundTrip(t *testing.T) {
	author := &model.CommentUser{Name: "Serponge", IconIndex: 30, IconType: model.IconShip, AccountID: ptr(uint64(119741))}
	comment := &model.LevelComment{Content: model.NewText("gg"), UserID: 4170784, CommentID: 5, Time: "3 hours"}

	body := mustEncode(t, comment) + ":" + mustEncode(t, author)
	comments, err := ParseLevelComments(body)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, author, comments[0].User)
	assert.Equal(t, uint64(5), comments[0].CommentID)
}

func TestParseLevelCommentsMalformedPair(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no author", body: commentFixture},
		{name: "three parts", body: commentFixture + ":" + authorFixture + ":extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comments, err := ParseLevelComments(tt.body)
			assert.Nil(t, comments)
			assert.ErrorIs(t, err, ErrUnexpectedFormat)
		})
	}
}

func TestParseLevelCommentsBadAuthor(t *testing.T) {
	// The sentinel is matched exactly; anything else is decoded as an author.
	_, err := ParseLevelComments(commentFixture + ":" + NoUserSentinel + "~")

	var decodeErr *wire.DecodeError
	require.True(t, errors.As(err, &decodeErr), "got %v", err)
	assert.Equal(t, "CommentUser", decodeErr.Record)
}

func TestParseLevelCommentsEmpty(t *testing.T) {
	comments, err := ParseLevelComments("#0:0:10")
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestParseProfileComments(t *testing.T) {
	body := "2~aGVsbG8=~4~7~6~55~9~2 weeks||2~d29ybGQ=~4~-1~6~56~9~1 day#2:0:10"

	comments, err := ParseProfileComments(body)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	first, err := comments[0].Content.Value()
	require.NoError(t, err)
	assert.Equal(t, "hello", first)
	assert.Equal(t, int32(-1), comments[1].Likes)
	assert.Equal(t, uint64(56), comments[1].CommentID)
}

func TestParseProfileCommentsRecordFailure(t *testing.T) {
	_, err := ParseProfileComments("2~aGVsbG8=~4~7~6~55~9~2 weeks|2~x~4~y~6~1~9~now")

	var decodeErr *wire.DecodeError
	require.True(t, errors.As(err, &decodeErr), "got %v", err)
	assert.Equal(t, "4", decodeErr.Field)
	assert.ErrorIs(t, err, wire.ErrInvalidInteger)
}
