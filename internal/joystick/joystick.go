// Package joystick emulates a gamepad from the keyboard during development,
// for use when no physical controller is attached. Holding both modifier
// keys (ctrl+alt) turns the digit row into ten buttons: ctrl+alt+5 presses
// button 5. The device abstraction layer polls Buttons() each frame.
package joystick

// Modifier is a bitmask of modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
)

// KeyState is one pressed key with a snapshot of its modifier state.
type KeyState struct {
	Code rune
	Mods Modifier
}

// Keyboard is the input collaborator: it reports the currently pressed keys
// filtered to a candidate list, each with modifier information attached.
type Keyboard interface {
	Pressed(candidates []rune) []KeyState
}

// requiredMods are the modifiers that must all be held for any button to
// register. The AND-of-both semantic is deliberate: it keeps plain digit
// typing from triggering emulated button presses.
const requiredMods = ModCtrl | ModAlt

// Joystick is the emulated ten-button device.
type Joystick struct {
	keyboard Keyboard
	digits   []rune
	state    []bool
}

// New creates a joystick emulator polling the given keyboard.
func New(kb Keyboard) *Joystick {
	return &Joystick{
		keyboard: kb,
		digits:   []rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'},
		state:    make([]bool, 10),
	}
}

// NumButtons returns the number of emulated buttons.
func (j *Joystick) NumButtons() int {
	return len(j.digits)
}

// Buttons polls the keyboard and returns the button state vector, indexed by
// digit value. A button is down only while its digit and both modifiers are
// held simultaneously. The vector is cached as the last known state.
func (j *Joystick) Buttons() []bool {
	pressed := j.keyboard.Pressed(j.digits)

	active := make(map[rune]bool, len(pressed))
	for _, ks := range pressed {
		if ks.Mods&requiredMods == requiredMods {
			active[ks.Code] = true
		}
	}

	state := make([]bool, len(j.digits))
	for i, d := range j.digits {
		state[i] = active[d]
	}
	j.state = state
	return state
}

// LastState returns the most recent snapshot without polling.
func (j *Joystick) LastState() []bool {
	out := make([]bool, len(j.state))
	copy(out, j.state)
	return out
}
