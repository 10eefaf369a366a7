package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dash-protocol/dash-go/pkg/model"
	"github.com/dash-protocol/dash-go/pkg/response"
)

// decodeFunc decodes a body and prints a summary of the result.
type decodeFunc func(d *response.Decoder, body string, w io.Writer) error

// decoders maps the names accepted on the command line to decode functions.
// Script names are accepted too.
var decoders = map[string]decodeFunc{
	"levels":                 decodeLevels,
	"getGJLevels21":          decodeLevels,
	"level":                  decodeLevel,
	"downloadGJLevel22":      decodeLevel,
	"profile":                decodeProfile,
	"getGJUserInfo20":        decodeProfile,
	"user":                   decodeSearchedUser,
	"getGJUsers20":           decodeSearchedUser,
	"comments":               decodeLevelComments,
	"getGJComments21":        decodeLevelComments,
	"posts":                  decodeProfileComments,
	"getGJAccountComments20": decodeProfileComments,
}

// endpointNames returns the short endpoint names, sorted.
func endpointNames() []string {
	var names []string
	for name := range decoders {
		if !strings.HasPrefix(name, "get") && !strings.HasPrefix(name, "download") {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Decode decodes body as a reply from endpoint and writes a summary to w.
func Decode(d *response.Decoder, endpoint, body string, w io.Writer) error {
	fn, ok := decoders[endpoint]
	if !ok {
		return fmt.Errorf("unknown endpoint: %s (valid: %s)", endpoint, strings.Join(endpointNames(), ", "))
	}
	return fn(d, strings.TrimRight(body, "\r\n"), w)
}

func decodeLevels(d *response.Decoder, body string, w io.Writer) error {
	levels, err := d.ParseLevels(body)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d levels\n", len(levels))
	for _, l := range levels {
		printLevel(w, l)
	}
	return nil
}

func decodeLevel(d *response.Decoder, body string, w io.Writer) error {
	l, err := d.ParseLevel(body)
	if err != nil {
		return err
	}
	printLevel(w, l)
	if l.Data != nil {
		data, err := l.Data.Value()
		if err != nil {
			fmt.Fprintf(w, "  Data: %v\n", err)
		} else {
			fmt.Fprintf(w, "  Data: %d bytes\n", len(data))
		}
	}
	return nil
}

func printLevel(w io.Writer, l *model.Level) {
	creator := fmt.Sprintf("user %d", l.CreatorID)
	if l.Creator != nil {
		creator = l.Creator.Name
	}
	fmt.Fprintf(w, "  [%d] %q by %s: %s, %s, %d stars, %d downloads\n",
		l.LevelID, l.Name, creator, l.Rating(), l.Length, l.Stars, l.Downloads)
	if l.Description != nil {
		if desc, err := l.Description.Value(); err == nil && desc != "" {
			fmt.Fprintf(w, "    %s\n", desc)
		}
	}
	switch {
	case l.CustomSong != nil:
		fmt.Fprintf(w, "    Song: %q by %s (%d)\n", l.CustomSong.Name, l.CustomSong.Artist, l.CustomSong.SongID)
	case l.CustomSongID != nil:
		fmt.Fprintf(w, "    Song: %d (not in response)\n", *l.CustomSongID)
	}
}

func decodeProfile(d *response.Decoder, body string, w io.Writer) error {
	p, err := d.ParseProfile(body)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s (user %d, account %d)\n", p.Name, p.UserID, p.AccountID)
	fmt.Fprintf(w, "  Stars: %d, Demons: %d, Creator points: %d\n", p.Stars, p.Demons, p.CreatorPoints)
	return nil
}

func decodeSearchedUser(d *response.Decoder, body string, w io.Writer) error {
	u, err := d.ParseSearchedUser(body)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s (user %d)\n", u.Name, u.UserID)
	fmt.Fprintf(w, "  Stars: %d, Demons: %d, Creator points: %d\n", u.Stars, u.Demons, u.CreatorPoints)
	return nil
}

func decodeLevelComments(d *response.Decoder, body string, w io.Writer) error {
	comments, err := d.ParseLevelComments(body)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d comments\n", len(comments))
	for _, c := range comments {
		author := "[deleted]"
		if c.User != nil {
			author = c.User.Name
		}
		fmt.Fprintf(w, "  [%d] %s (%d likes, %s): %s\n", c.CommentID, author, c.Likes, c.Time, text(c.Content))
	}
	return nil
}

func decodeProfileComments(d *response.Decoder, body string, w io.Writer) error {
	comments, err := d.ParseProfileComments(body)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d posts\n", len(comments))
	for _, c := range comments {
		fmt.Fprintf(w, "  [%d] (%d likes, %s): %s\n", c.CommentID, c.Likes, c.Time, text(c.Content))
	}
	return nil
}

// text returns the decoded content, or the raw text if it is not valid
// base64.
func text(t *model.Thunk[string]) string {
	if t == nil {
		return ""
	}
	if s, err := t.Value(); err == nil {
		return s
	}
	return t.Raw()
}
