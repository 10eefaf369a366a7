package response

import (
	"fmt"
	"strings"

	"github.com/dash-protocol/dash-go/pkg/log"
	"github.com/dash-protocol/dash-go/pkg/model"
)

// Delimiters of the comment listings.
const (
	commentDelimiter     = "|"
	commentPairDelimiter = ":"
)

// ParseLevelComments decodes the comments on a level. Each fragment is a
// comment and its author separated by ':'. An author equal to NoUserSentinel
// leaves the comment's User nil.
func (d *Decoder) ParseLevelComments(body string) ([]*model.LevelComment, error) {
	s := d.begin(endpointLevelComments, body)
	sections, err := s.sections(body, 1)
	if err != nil {
		return nil, err
	}

	pairs := s.fragments(0, sections[0], commentDelimiter)
	comments := make([]*model.LevelComment, 0, len(pairs))
	for i, pair := range pairs {
		parts := strings.Split(pair, commentPairDelimiter)
		if len(parts) != 2 {
			err := fmt.Errorf("%w: comment %d has %d parts, want 2", ErrUnexpectedFormat, i, len(parts))
			return nil, s.fail(log.LayerSection, err, "split comment pair")
		}

		c, err := model.DecodeLevelComment(parts[0])
		if err != nil {
			return nil, s.fail(log.LayerRecord, err, "decode LevelComment")
		}
		s.record(model.LevelCommentSchema())

		if parts[1] == NoUserSentinel {
			s.sentinel(log.SentinelNoUser, parts[1])
		} else {
			c.User, err = model.DecodeCommentUser(parts[1])
			if err != nil {
				return nil, s.fail(log.LayerRecord, err, "decode CommentUser")
			}
			s.record(model.CommentUserSchema())
		}
		comments = append(comments, c)
	}
	return comments, nil
}

// ParseProfileComments decodes the posts on a user's profile.
func (d *Decoder) ParseProfileComments(body string) ([]*model.ProfileComment, error) {
	s := d.begin(endpointProfileComments, body)
	sections, err := s.sections(body, 1)
	if err != nil {
		return nil, err
	}
	comments, err := decodeFragments(s, model.ProfileCommentSchema(), 0, sections[0], commentDelimiter, model.DecodeProfileComment)
	if err != nil {
		return nil, err
	}
	for range comments {
		s.record(model.ProfileCommentSchema())
	}
	return comments, nil
}

// ParseLevelComments decodes level comments without logging.
func ParseLevelComments(body string) ([]*model.LevelComment, error) {
	return defaultDecoder.ParseLevelComments(body)
}

// ParseProfileComments decodes profile comments without logging.
func ParseProfileComments(body string) ([]*model.ProfileComment, error) {
	return defaultDecoder.ParseProfileComments(body)
}
