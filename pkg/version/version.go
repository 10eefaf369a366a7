// Package version provides game version parsing, the numeric wire form the
// server expects, and the embedded client manifests used to fill request
// headers.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// GameVersion represents a "major.minor" game or binary version.
// The zero value means "not set"; it is distinct from Unknown.
type GameVersion struct {
	Major uint8
	Minor uint8
}

// Unknown is the version the server reports for pre-1.7 levels. Its wire
// form is 10, so Parse("1.0") also yields Unknown.
var Unknown = GameVersion{Major: 1, Minor: 0}

// Parse parses a "major.minor" version string. Both components must be
// single digits because the wire form packs them into one decimal number.
func Parse(s string) (GameVersion, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return GameVersion{}, fmt.Errorf("invalid version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil || parts[0] == "" || major > 9 {
		return GameVersion{}, fmt.Errorf("invalid version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil || parts[1] == "" || minor > 9 {
		return GameVersion{}, fmt.Errorf("invalid version %q: bad minor component", s)
	}

	return GameVersion{Major: uint8(major), Minor: uint8(minor)}, nil
}

// FromWire converts the numeric wire form (e.g. 22) back into a version.
// 10 maps to Unknown. Every byte survives FromWire(b).Wire() unchanged,
// including 0, which yields the zero version.
func FromWire(v uint8) GameVersion {
	return GameVersion{Major: v / 10, Minor: v % 10}
}

// Wire returns the numeric wire form major*10+minor.
func (v GameVersion) Wire() uint8 {
	return v.Major*10 + v.Minor
}

// IsZero reports whether v is the zero value, i.e. no version was set.
func (v GameVersion) IsZero() bool {
	return v == GameVersion{}
}

// IsUnknown reports whether v is the Unknown version.
func (v GameVersion) IsUnknown() bool {
	return v == Unknown
}

// String returns the version as "major.minor", or "unknown".
func (v GameVersion) String() string {
	if v.IsUnknown() {
		return "unknown"
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Compatible returns true if the other version has the same major version.
func (v GameVersion) Compatible(other GameVersion) bool {
	return v.Major == other.Major
}

// MarshalText implements encoding.TextMarshaler so versions read naturally
// in YAML configuration.
func (v GameVersion) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *GameVersion) UnmarshalText(text []byte) error {
	if string(text) == "unknown" {
		*v = Unknown
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
