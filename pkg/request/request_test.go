package request

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dash-protocol/dash-go/pkg/log"
	"github.com/dash-protocol/dash-go/pkg/model"
	"github.com/dash-protocol/dash-go/pkg/version"
	"github.com/dash-protocol/dash-go/pkg/wire"
)

const gd22Prefix = "gameVersion=22&binaryVersion=38&secret=Wmfd2893gb7"

func TestPresets(t *testing.T) {
	assert.Equal(t, version.GameVersion{Major: 2, Minor: 1}, GD21.GameVersion)
	assert.Equal(t, version.GameVersion{Major: 3, Minor: 3}, GD21.BinaryVersion)
	assert.Equal(t, version.GameVersion{Major: 2, Minor: 2}, GD22.GameVersion)
	assert.Equal(t, version.GameVersion{Major: 3, Minor: 8}, GD22.BinaryVersion)
	assert.Equal(t, "Wmfd2893gb7", GD22.Secret)
	assert.Equal(t, GD22, DefaultBase)
}

func TestLoadBaseUnknownClient(t *testing.T) {
	_, err := LoadBase("1.9")
	assert.Error(t, err)
}

func TestRequestBodies(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{
			name: "user",
			req:  NewUserRequest(71),
			want: gd22Prefix + "&targetAccountID=71",
		},
		{
			name: "user search escapes",
			req:  NewUserSearchRequest("Rob Top&Co"),
			want: gd22Prefix + "&total=0&page=0&str=Rob+Top%26Co",
		},
		{
			name: "level",
			req:  NewLevelRequest(128).WithInc(true),
			want: gd22Prefix + "&levelID=128&inc=1&extra=0",
		},
		{
			name: "levels",
			req:  NewLevelsRequest("bloodbath").WithPage(2),
			want: gd22Prefix + "&type=0&str=bloodbath&len=-&diff=-&page=2&total=0" +
				"&featured=0&original=0&twoPlayer=0&coins=0&epic=0&star=0&customSong=",
		},
		{
			name: "levels filtered",
			req: NewLevelsRequest("").
				WithSearchType(SearchMostLiked).
				WithLengths(model.LengthLong, model.LengthExtraLong).
				WithRatings(model.RatingHard, model.RatingDemon, model.RatingNA).
				WithEpic(true).
				WithCustomSong(467339),
			want: gd22Prefix + "&type=2&str=&len=3,4&diff=3,-2,-1&page=0&total=0" +
				"&featured=0&original=0&twoPlayer=0&coins=0&epic=1&star=0&customSong=467339",
		},
		{
			name: "level comments",
			req:  NewLevelCommentsRequest(11774780).WithMode(SortLiked).WithPage(1),
			want: gd22Prefix + "&levelID=11774780&page=1&total=0&count=20&mode=1",
		},
		{
			name: "profile comments",
			req:  NewProfileCommentsRequest(71).WithBase(GD21),
			want: "gameVersion=21&binaryVersion=33&secret=Wmfd2893gb7&accountID=71&page=0&total=0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Body(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringMatchesBody(t *testing.T) {
	req := NewUserSearchRequest("RobTop")
	body, err := Body(req)
	require.NoError(t, err)
	assert.Equal(t, body, req.String())
}

func TestBuildersCopy(t *testing.T) {
	a := NewLevelsRequest("a").WithLengths(model.LengthTiny)
	b := a.WithPage(3).WithSearch("b")

	assert.Equal(t, uint32(0), a.Page)
	assert.Equal(t, "a", a.Search)
	assert.Equal(t, uint32(3), b.Page)

	lengths := []model.LevelLength{model.LengthShort}
	c := a.WithLengths(lengths...)
	lengths[0] = model.LengthLong
	assert.Equal(t, model.LengthShort, c.Lengths[0])
}

func TestForm(t *testing.T) {
	form, err := Form(NewLevelsRequest("x"))
	require.NoError(t, err)

	assert.Equal(t, "22", form.Get("gameVersion"))
	assert.Equal(t, "x", form.Get("str"))
	assert.Equal(t, "-", form.Get("len"))
	assert.True(t, form.Has("customSong"))
	assert.Equal(t, "", form.Get("customSong"))
}

func TestIndexed(t *testing.T) {
	got, err := Indexed(NewUserRequest(71), ":")
	require.NoError(t, err)
	assert.Equal(t, "gameVersion:22:binaryVersion:38:secret:Wmfd2893gb7:targetAccountID:71", got)

	s := wire.MustSchema("UserRequest",
		wire.Required("gameVersion", wire.KindUint8),
		wire.Required("binaryVersion", wire.KindUint8),
		wire.Required("secret", wire.KindString),
		wire.Required("targetAccountID", wire.KindUint64),
	)
	rec, err := wire.Unmarshal(s, got, ":", wire.Keyed)
	require.NoError(t, err)
	assert.Equal(t, NewUserRequest(71).Record(), rec)
}

func TestRequestHelpersFromModels(t *testing.T) {
	c := &model.Creator{UserID: 16, Name: "RobTop"}

	assert.Equal(t, "RobTop", SearchCreator(c).SearchString)

	byUser := LevelsByCreator(c)
	assert.Equal(t, SearchByUser, byUser.SearchType)
	assert.Equal(t, "16", byUser.Search)

	comments := CommentsOn(&model.Level{LevelID: 128})
	assert.Equal(t, uint64(128), comments.LevelID)
	assert.Equal(t, uint32(DefaultCommentCount), comments.Count)
}

func TestEndpointsURL(t *testing.T) {
	tests := []struct {
		base string
		req  Request
		want string
	}{
		{"http://localhost:8080/db", NewUserRequest(1), "http://localhost:8080/db/getGJUserInfo20.php"},
		{"http://localhost:8080/db/", NewLevelRequest(1), "http://localhost:8080/db/downloadGJLevel22.php"},
		{"https://gdps.example/", NewProfileCommentsRequest(1), "https://gdps.example/getGJAccountComments20.php"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Endpoints{BaseURL: tt.base}.URL(tt.req))
		})
	}
}

func TestDefaultEndpoints(t *testing.T) {
	assert.Equal(t, DefaultServerURL+"getGJLevels21.php", Endpoints{}.URL(NewLevelsRequest("")))
	assert.ErrorIs(t, SetDefaultBaseURL("https://gdps.example/"), ErrBaseURLFrozen)
	assert.Equal(t, DefaultServerURL, DefaultBaseURL())
}

func TestBaseURLOverrideBeforeFirstRead(t *testing.T) {
	var b baseURL
	require.NoError(t, b.set("https://one.example/"))
	require.NoError(t, b.set("https://two.example/"))
	assert.Equal(t, "https://two.example/", b.get())
	assert.ErrorIs(t, b.set("https://three.example/"), ErrBaseURLFrozen)
	assert.Equal(t, "https://two.example/", b.get())
}

func TestBaseURLDefault(t *testing.T) {
	assert.Equal(t, "https://www.boomlings.com/database/", DefaultServerURL)

	var b baseURL
	assert.Equal(t, DefaultServerURL, b.get())
}

func TestBaseURLConcurrentReads(t *testing.T) {
	var b baseURL
	require.NoError(t, b.set("https://gdps.example/"))

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = b.get()
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "https://gdps.example/", r)
	}
}

func TestBaseURLValidation(t *testing.T) {
	var b baseURL
	for _, u := range []string{"ftp://host/", "/relative", "https://", "://bad"} {
		err := b.set(u)
		assert.True(t, errors.Is(err, ErrInvalidBaseURL), "%q: %v", u, err)
	}
}

type stubLogger struct{ mock.Mock }

func (s *stubLogger) Log(ev log.Event) {
	s.Called(ev)
}

func TestLogEncode(t *testing.T) {
	stub := &stubLogger{}
	stub.On("Log", mock.MatchedBy(func(ev log.Event) bool {
		return ev.Category == log.CategoryEncode && ev.Layer == log.LayerRecord
	})).Return().Once()
	stub.On("Log", mock.MatchedBy(func(ev log.Event) bool {
		return ev.Category == log.CategoryEncode && ev.Layer == log.LayerBody
	})).Return().Once()

	req := NewUserRequest(71)
	body, err := LogEncode(stub, req)
	require.NoError(t, err)
	assert.Equal(t, req.String(), body)
	stub.AssertExpectations(t)

	rec := stub.Calls[0].Arguments.Get(0).(log.Event)
	assert.Equal(t, log.DirectionOut, rec.Direction)
	assert.Equal(t, "getGJUserInfo20", rec.Endpoint)
	assert.Equal(t, "UserRequest", rec.Record.Schema)
	assert.Equal(t, 4, rec.Record.Fields)

	bodyEv := stub.Calls[1].Arguments.Get(0).(log.Event)
	assert.Equal(t, rec.SessionID, bodyEv.SessionID)
	assert.True(t, bodyEv.Body.VerifyDigest([]byte(body)))
}

func TestLogEncodeNilLogger(t *testing.T) {
	body, err := LogEncode(nil, NewLevelRequest(1))
	require.NoError(t, err)
	assert.Equal(t, gd22Prefix+"&levelID=1&inc=0&extra=0", body)
}
