package request

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
)

// DefaultServerURL is the base URL used when none is configured. It points
// at the official server on purpose; private servers are reached through
// SetDefaultBaseURL or the dash-decode base_url setting.
const DefaultServerURL = "https://www.boomlings.com/database/"

var (
	// ErrBaseURLFrozen is returned when the default base URL is changed
	// after it has been read.
	ErrBaseURLFrozen = errors.New("request: default base URL already in use")

	// ErrInvalidBaseURL is returned for base URLs that are not absolute
	// http or https URLs.
	ErrInvalidBaseURL = errors.New("request: invalid base URL")
)

// Endpoints locates the server scripts. A zero Endpoints uses the process
// default base URL.
type Endpoints struct {
	BaseURL string
}

// URL returns the address r is posted to.
func (e Endpoints) URL(r Request) string {
	base := e.BaseURL
	if base == "" {
		base = DefaultBaseURL()
	}
	return strings.TrimSuffix(base, "/") + "/" + r.Script() + ".php"
}

// baseURL is a value that may be overridden until it is first read.
type baseURL struct {
	mu       sync.Mutex
	once     sync.Once
	override string
	frozen   bool
	value    string
}

func (b *baseURL) set(u string) error {
	if err := validateBaseURL(u); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.frozen {
		return ErrBaseURLFrozen
	}
	b.override = u
	return nil
}

func (b *baseURL) get() string {
	b.once.Do(func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.frozen = true
		b.value = DefaultServerURL
		if b.override != "" {
			b.value = b.override
		}
	})
	return b.value
}

var defaultBase baseURL

// SetDefaultBaseURL overrides the process default base URL. It must be
// called before the first DefaultBaseURL call; afterwards it returns
// ErrBaseURLFrozen. Safe for concurrent use.
func SetDefaultBaseURL(u string) error {
	return defaultBase.set(u)
}

// DefaultBaseURL returns the process default base URL. The first call fixes
// the value for the rest of the process. Safe for concurrent use.
func DefaultBaseURL() string {
	return defaultBase.get()
}

func validateBaseURL(u string) error {
	parsed, err := url.Parse(u)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: scheme %q", ErrInvalidBaseURL, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidBaseURL)
	}
	return nil
}
