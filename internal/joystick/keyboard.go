package joystick

import (
	"sync"
	"time"
)

// DefaultHoldWindow is how long a key counts as held after its last press
// event. Terminals report key repeats rather than press/release pairs, so a
// held key shows up as a stream of events no further apart than the
// terminal's repeat interval.
const DefaultHoldWindow = 150 * time.Millisecond

type press struct {
	at   time.Time
	mods Modifier
}

// EventKeyboard adapts a stream of key press events to the polled Keyboard
// interface. The UI event loop feeds it every key event; pollers see a key
// as pressed until the hold window after its most recent event expires.
type EventKeyboard struct {
	mu     sync.Mutex
	hold   time.Duration
	events map[rune]press
	now    func() time.Time
}

// NewEventKeyboard creates an event-fed keyboard with the default hold window.
func NewEventKeyboard() *EventKeyboard {
	return &EventKeyboard{
		hold:   DefaultHoldWindow,
		events: make(map[rune]press),
		now:    time.Now,
	}
}

// KeyDown records a key press event with its modifier snapshot.
func (k *EventKeyboard) KeyDown(code rune, mods Modifier) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.events[code] = press{at: k.now(), mods: mods}
}

// Pressed returns the candidate keys whose hold window has not expired,
// with the modifier state captured at their last event.
func (k *EventKeyboard) Pressed(candidates []rune) []KeyState {
	k.mu.Lock()
	defer k.mu.Unlock()

	cutoff := k.now().Add(-k.hold)
	var out []KeyState
	for _, c := range candidates {
		p, ok := k.events[c]
		if !ok {
			continue
		}
		if p.at.Before(cutoff) {
			delete(k.events, c)
			continue
		}
		out = append(out, KeyState{Code: c, Mods: p.mods})
	}
	return out
}
