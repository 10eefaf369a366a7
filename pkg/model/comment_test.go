package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLevelComment(t *testing.T) {
	c, err := DecodeLevelComment("2~R3JlYXQgbGV2ZWwh~3~2073761~4~12~7~0~10~97~9~5 days~6~1337~11~2~12~75,255,75")
	require.NoError(t, err)

	assert.Nil(t, c.User)
	assert.Equal(t, uint64(2073761), c.UserID)
	assert.Equal(t, int32(12), c.Likes)
	assert.Equal(t, uint64(1337), c.CommentID)
	assert.False(t, c.IsSpam)
	assert.Equal(t, "5 days", c.Time)
	require.NotNil(t, c.Progress)
	assert.Equal(t, uint8(97), *c.Progress)
	assert.Equal(t, ModElder, c.ModLevel)
	require.NotNil(t, c.Color)
	assert.Equal(t, "75,255,75", *c.Color)

	content, err := c.Content.Value()
	require.NoError(t, err)
	assert.Equal(t, "Great level!", content)
}

func TestLevelCommentRoundTrip(t *testing.T) {
	in := &LevelComment{
		Content:   NewText("first post"),
		UserID:    16,
		Likes:     -2,
		CommentID: 9,
		IsSpam:    true,
		Time:      "1 year",
	}

	text, err := in.Encode()
	require.NoError(t, err)
	assert.Equal(t, "2~Zmlyc3QgcG9zdA==~3~16~4~-2~6~9~7~1~9~1 year~10~~11~0~12~", text)

	out, err := DecodeLevelComment(text)
	require.NoError(t, err)
	assert.Nil(t, out.Progress)
	assert.Nil(t, out.Color)
	assert.True(t, out.IsSpam)
	content, err := out.Content.Value()
	require.NoError(t, err)
	assert.Equal(t, "first post", content)
}

func TestDecodeCommentUser(t *testing.T) {
	u, err := DecodeCommentUser("1~Serponge~9~95~10~12~11~3~14~0~15~2~16~119741")
	require.NoError(t, err)

	assert.Equal(t, "Serponge", u.Name)
	assert.Equal(t, uint16(95), u.IconIndex)
	assert.Equal(t, uint8(12), u.PrimaryColor)
	assert.Equal(t, uint8(3), u.SecondaryColor)
	assert.Equal(t, IconCube, u.IconType)
	assert.True(t, u.HasGlow())
	require.NotNil(t, u.AccountID)
	assert.Equal(t, uint64(119741), *u.AccountID)
}

func TestDecodeCommentUserSentinelIsNotAUser(t *testing.T) {
	// The "deleted author" literal lacks a name and cannot decode as a user.
	_, err := DecodeCommentUser("1~~9~~10~~11~~14~~15~~16~")
	assert.Error(t, err)
}

func TestDecodeProfileComment(t *testing.T) {
	c, err := DecodeProfileComment("2~aGVsbG8=~4~7~9~2 weeks~6~55")
	require.NoError(t, err)

	assert.Equal(t, int32(7), c.Likes)
	assert.Equal(t, uint64(55), c.CommentID)
	assert.Equal(t, "2 weeks", c.Time)
	content, err := c.Content.Value()
	require.NoError(t, err)
	assert.Equal(t, "hello", content)

	text, err := c.Encode()
	require.NoError(t, err)
	assert.Equal(t, "2~aGVsbG8=~4~7~6~55~9~2 weeks", text)
}
