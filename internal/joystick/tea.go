package joystick

import tea "charm.land/bubbletea/v2"

// FromKeyPress translates a Bubble Tea key press into an emulator key event.
// The bool result is true only for a full chord: a digit with both required
// modifiers held. Plain or partially modified digits are left for normal
// text entry.
func FromKeyPress(msg tea.KeyPressMsg) (rune, Modifier, bool) {
	if msg.Code < '0' || msg.Code > '9' {
		return 0, 0, false
	}
	var mods Modifier
	if msg.Mod&tea.ModCtrl != 0 {
		mods |= ModCtrl
	}
	if msg.Mod&tea.ModAlt != 0 {
		mods |= ModAlt
	}
	if mods&requiredMods != requiredMods {
		return 0, 0, false
	}
	return msg.Code, mods, true
}
