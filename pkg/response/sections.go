package response

import (
	"fmt"
	"strings"
)

// Reserved bodies and delimiters shared by all endpoints.
const (
	NotFoundBody      = "-1"
	AccessBlockedBody = "error code: 1005"

	// NoUserSentinel stands in for the author of a comment whose account
	// no longer exists.
	NoUserSentinel = "1~~9~~10~~11~~14~~15~~16~"

	SectionDelimiter = "#"
)

// CheckBody maps the reserved bodies to their errors. Only an exact match of
// the whole body counts.
func CheckBody(body string) error {
	switch body {
	case NotFoundBody:
		return ErrNotFound
	case AccessBlockedBody:
		return ErrAccessBlocked
	default:
		return nil
	}
}

// Sections checks body and splits it into sections. At least need sections
// must be present; extra trailing sections are returned but callers ignore
// them.
func Sections(body string, need int) ([]string, error) {
	if err := CheckBody(body); err != nil {
		return nil, err
	}
	sections := strings.Split(body, SectionDelimiter)
	if len(sections) < need {
		return nil, fmt.Errorf("%w: got %d sections, want at least %d", ErrUnexpectedFormat, len(sections), need)
	}
	return sections, nil
}

// SplitFragments splits a section into record fragments, dropping empty
// ones. An empty section yields no fragments.
func SplitFragments(section, delim string) []string {
	fragments, _ := splitFragments(section, delim)
	return fragments
}

// splitFragments is SplitFragments that also reports how many empty
// fragments were dropped.
func splitFragments(section, delim string) ([]string, int) {
	parts := strings.Split(section, delim)
	fragments := parts[:0]
	dropped := 0
	for _, p := range parts {
		if p == "" {
			dropped++
			continue
		}
		fragments = append(fragments, p)
	}
	return fragments, dropped
}
