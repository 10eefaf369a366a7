package response

import (
	"github.com/dash-protocol/dash-go/pkg/log"
	"github.com/dash-protocol/dash-go/pkg/model"
)

// ParseProfile decodes a user profile. The whole body is one record.
func (d *Decoder) ParseProfile(body string) (*model.Profile, error) {
	s := d.begin(endpointProfile, body)
	if err := s.checkBody(body); err != nil {
		return nil, err
	}
	p, err := model.DecodeProfile(body)
	if err != nil {
		return nil, s.fail(log.LayerRecord, err, "decode Profile")
	}
	s.record(model.ProfileSchema())
	return p, nil
}

// ParseSearchedUser decodes the result of a user search. The server returns
// the best match in the first section followed by paging information, which
// is ignored.
func (d *Decoder) ParseSearchedUser(body string) (*model.SearchedUser, error) {
	s := d.begin(endpointSearchedUser, body)
	sections, err := s.sections(body, 1)
	if err != nil {
		return nil, err
	}
	u, err := model.DecodeSearchedUser(sections[0])
	if err != nil {
		return nil, s.fail(log.LayerRecord, err, "decode SearchedUser")
	}
	s.record(model.SearchedUserSchema())
	return u, nil
}

// ParseProfile decodes a user profile without logging.
func ParseProfile(body string) (*model.Profile, error) {
	return defaultDecoder.ParseProfile(body)
}

// ParseSearchedUser decodes a user search result without logging.
func ParseSearchedUser(body string) (*model.SearchedUser, error) {
	return defaultDecoder.ParseSearchedUser(body)
}
