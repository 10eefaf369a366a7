package model

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// maxLevelData bounds the decompressed size of a level string.
const maxLevelData = 64 << 20

// DecodeText decodes URL-safe base64 text. The server pads inconsistently,
// so padding is optional.
func DecodeText(raw string) (string, error) {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(raw, "="))
	if err != nil {
		return "", fmt.Errorf("failed to decode base64 text: %w", err)
	}
	return string(b), nil
}

// EncodeText is the inverse of DecodeText and always pads.
func EncodeText(s string) string {
	return base64.URLEncoding.EncodeToString([]byte(s))
}

// DecodeLink decodes a percent-encoded song link.
func DecodeLink(raw string) (string, error) {
	s, err := url.QueryUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode link: %w", err)
	}
	return s, nil
}

// EncodeLink percent-encodes a song link the way the server does.
func EncodeLink(link string) string {
	return url.QueryEscape(link)
}

// DecodeLevelData decodes a level string: URL-safe base64 around a gzip
// stream. Very old levels use a bare zlib stream instead.
func DecodeLevelData(raw string) ([]byte, error) {
	compressed, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(raw, "="))
	if err != nil {
		return nil, fmt.Errorf("failed to decode level data: %w", err)
	}

	var r io.ReadCloser
	if len(compressed) >= 2 && compressed[0] == 0x1f && compressed[1] == 0x8b {
		r, err = gzip.NewReader(bytes.NewReader(compressed))
	} else {
		r, err = zlib.NewReader(bytes.NewReader(compressed))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open level data stream: %w", err)
	}
	defer r.Close()

	data, err := io.ReadAll(io.LimitReader(r, maxLevelData+1))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress level data: %w", err)
	}
	if len(data) > maxLevelData {
		return nil, fmt.Errorf("level data exceeds %d bytes", maxLevelData)
	}
	return data, nil
}

// EncodeLevelData gzips data and returns the padded URL-safe base64 text.
func EncodeLevelData(data []byte) (string, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return "", fmt.Errorf("failed to compress level data: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("failed to compress level data: %w", err)
	}
	return base64.URLEncoding.EncodeToString(buf.Bytes()), nil
}

// NewText returns an evaluated thunk holding s and its base64 wire text.
func NewText(s string) *Thunk[string] {
	return evaluated(EncodeText(s), s)
}

// NewLink returns an evaluated thunk holding link and its percent-encoded text.
func NewLink(link string) *Thunk[string] {
	return evaluated(EncodeLink(link), link)
}

// NewLevelData returns an evaluated thunk holding data and its wire text.
func NewLevelData(data []byte) (*Thunk[[]byte], error) {
	raw, err := EncodeLevelData(data)
	if err != nil {
		return nil, err
	}
	return evaluated(raw, bytes.Clone(data)), nil
}

func textThunk(raw *string) *Thunk[string] {
	if raw == nil {
		return nil
	}
	return NewThunk(*raw, DecodeText)
}
