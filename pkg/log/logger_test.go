package log

import (
	"testing"

	"github.com/google/uuid"
)

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	// Must not panic.
	l.Log(Event{})
}

func TestNewSessionID(t *testing.T) {
	a := NewSessionID()
	b := NewSessionID()
	if a == b {
		t.Error("session ids should be unique")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("session id %q is not a UUID: %v", a, err)
	}
}
