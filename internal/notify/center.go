// Package notify implements the transient status toast of the laboratory:
// a single visible event with a fixed display window. Publishing while an
// event is visible replaces it and restarts the window.
package notify

import (
	"sync"
	"time"
)

// Kind classifies a notification event.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// DefaultTTL is the display window of a published event.
const DefaultTTL = 3000 * time.Millisecond

// Event is one transient status message.
type Event struct {
	Message string `json:"message"`
	Kind    Kind   `json:"kind"`
}

// Center holds the single visible event. The expiry timer is scoped to the
// event that armed it: superseding a message cancels the old timer so two
// timers never race to clear two different messages.
type Center struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Event
	timer   *time.Timer
}

// NewCenter creates a notification center with the given display window.
// A non-positive ttl falls back to DefaultTTL.
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl}
}

// Publish replaces the visible event and restarts its expiry window.
func (c *Center) Publish(message string, kind Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
	}
	ev := &Event{Message: message, Kind: kind}
	c.current = ev
	c.timer = time.AfterFunc(c.ttl, func() {
		c.expire(ev)
	})
}

// Current returns the visible event, or nil when none is displayed.
func (c *Center) Current() *Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	ev := *c.current
	return &ev
}

// expire clears the slot only if ev is still the displayed event; a timer
// belonging to a superseded message must not clear its replacement.
func (c *Center) expire(ev *Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == ev {
		c.current = nil
		c.timer = nil
	}
}
