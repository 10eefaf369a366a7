// Package golden loads recorded server replies and their expected decoding
// from YAML files.
package golden

import "fmt"

// Case is one recorded reply.
type Case struct {
	// ID uniquely identifies the case (e.g., "levels-cross-reference").
	ID string `yaml:"id"`

	// Description explains what the case covers.
	Description string `yaml:"description,omitempty"`

	// Endpoint names the resolver the body is fed to: levels, level,
	// profile, searched_user, level_comments or profile_comments.
	Endpoint string `yaml:"endpoint"`

	// Body is the raw reply.
	Body string `yaml:"body"`

	// Error is the expected failure: not_found, access_blocked,
	// unexpected_format or decode. Empty means the decode succeeds.
	Error string `yaml:"error,omitempty"`

	// Expect lists a summary of every decoded record, in order.
	Expect []map[string]string `yaml:"expect,omitempty"`
}

// Endpoints accepted in Case.Endpoint.
var Endpoints = []string{
	"levels",
	"level",
	"profile",
	"searched_user",
	"level_comments",
	"profile_comments",
}

// Errors accepted in Case.Error.
var Errors = []string{
	"not_found",
	"access_blocked",
	"unexpected_format",
	"decode",
}

// LoadError provides details about a case loading error.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	if e.File == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
