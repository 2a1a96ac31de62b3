package ui

import (
	"log/slog"
	"time"
)

const DefaultStatusTTL = 2 * time.Second

// StatusOverlay holds at most one transient message.
type StatusOverlay struct {
	ttl       time.Duration
	message   string
	expiresAt time.Time
	set       bool
}

func NewStatusOverlay(ttl time.Duration) *StatusOverlay {
	if ttl <= 0 {
		ttl = DefaultStatusTTL
	}

	return &StatusOverlay{ttl: ttl}
}

// Show replaces the current message; it stays live until now+ttl.
func (o *StatusOverlay) Show(message string, now time.Time) {
	slog.Info("Status", "message", message)

	o.message = message
	o.expiresAt = now.Add(o.ttl)
	o.set = true
}

// IsLive reports whether a message should be drawn at now. An expired message
// is cleared.
func (o *StatusOverlay) IsLive(now time.Time) bool {
	if !o.set {
		return false
	}

	if now.After(o.expiresAt) {
		o.Clear()

		return false
	}

	return true
}

// Message returns the current message, expired or not.
func (o *StatusOverlay) Message() (string, bool) {
	return o.message, o.set
}

func (o *StatusOverlay) Clear() {
	o.message = ""
	o.expiresAt = time.Time{}
	o.set = false
}
