package response

import (
	"github.com/dash-protocol/dash-go/pkg/log"
	"github.com/dash-protocol/dash-go/pkg/model"
)

// Fragment delimiters of the level listing sections.
const (
	levelDelimiter   = "|"
	creatorDelimiter = "|"
	songDelimiter    = "~:~"
)

// ParseLevels decodes a level listing: levels, their creators and their
// custom songs in three sections. Each level is linked to the first creator
// with a matching user id and the first song with a matching song id. Levels
// without a match keep a nil Creator or CustomSong.
func (d *Decoder) ParseLevels(body string) ([]*model.Level, error) {
	s := d.begin(endpointLevels, body)
	sections, err := s.sections(body, 3)
	if err != nil {
		return nil, err
	}

	levels, err := decodeFragments(s, model.LevelSchema(), 0, sections[0], levelDelimiter, model.DecodeLevel)
	if err != nil {
		return nil, err
	}
	creators, err := decodeFragments(s, model.CreatorSchema(), 1, sections[1], creatorDelimiter, model.DecodeCreator)
	if err != nil {
		return nil, err
	}
	songs, err := decodeFragments(s, model.SongSchema(), 2, sections[2], songDelimiter, model.DecodeSong)
	if err != nil {
		return nil, err
	}

	byUser := make(map[uint64]*model.Creator, len(creators))
	for _, c := range creators {
		s.record(model.CreatorSchema())
		if _, ok := byUser[c.UserID]; !ok {
			byUser[c.UserID] = c
		}
	}
	bySong := make(map[uint64]*model.NewgroundsSong, len(songs))
	for _, song := range songs {
		s.record(model.SongSchema())
		if _, ok := bySong[song.SongID]; !ok {
			bySong[song.SongID] = song
		}
	}

	unresolved := 0
	for _, l := range levels {
		l.Creator = byUser[l.CreatorID]
		relations := []log.Relation{{Name: "creator", ID: l.CreatorID, Resolved: l.Creator != nil}}
		if l.Creator == nil {
			unresolved++
		}
		if l.CustomSongID != nil {
			l.CustomSong = bySong[*l.CustomSongID]
			relations = append(relations, log.Relation{Name: "song", ID: *l.CustomSongID, Resolved: l.CustomSong != nil})
			if l.CustomSong == nil {
				unresolved++
			}
		}
		s.record(model.LevelSchema(), relations...)
	}

	s.logger.Debug("decoded levels",
		"levels", len(levels),
		"creators", len(creators),
		"songs", len(songs),
		"unresolved", unresolved)
	return levels, nil
}

// ParseLevel decodes a level download. Only the first section is used.
func (d *Decoder) ParseLevel(body string) (*model.Level, error) {
	s := d.begin(endpointLevel, body)
	sections, err := s.sections(body, 1)
	if err != nil {
		return nil, err
	}
	l, err := model.DecodeLevel(sections[0])
	if err != nil {
		return nil, s.fail(log.LayerRecord, err, "decode Level")
	}
	s.record(model.LevelSchema())
	return l, nil
}

// ParseLevels decodes a level listing without logging.
func ParseLevels(body string) ([]*model.Level, error) {
	return defaultDecoder.ParseLevels(body)
}

// ParseLevel decodes a level download without logging.
func ParseLevel(body string) (*model.Level, error) {
	return defaultDecoder.ParseLevel(body)
}
