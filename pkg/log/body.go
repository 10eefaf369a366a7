package log

import "github.com/zeebo/blake3"

// MaxBodyData is the number of body bytes kept in a BodyEvent.
const MaxBodyData = 4096

// NewBodyEvent captures body, truncating the stored copy to MaxBodyData
// bytes. The digest always covers the complete body so truncated captures
// can still be matched against the original.
func NewBodyEvent(body string) *BodyEvent {
	sum := blake3.Sum256([]byte(body))
	ev := &BodyEvent{
		Size:   len(body),
		Digest: sum[:],
	}
	if len(body) > MaxBodyData {
		ev.Data = []byte(body[:MaxBodyData])
		ev.Truncated = true
	} else {
		ev.Data = []byte(body)
	}
	return ev
}

// VerifyDigest reports whether data hashes to the event's digest. It is only
// meaningful for complete (non-truncated) bodies or the original body.
func (b *BodyEvent) VerifyDigest(data []byte) bool {
	if len(b.Digest) != 32 {
		return false
	}
	sum := blake3.Sum256(data)
	return string(sum[:]) == string(b.Digest)
}
