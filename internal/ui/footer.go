package ui

import (
	"strings"
	"time"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType categorizes a transient footer message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashError
)

// FlashDuration is how long a flash message stays visible
const FlashDuration = 4 * time.Second

// FlashMessage is a transient status message shown in place of keybindings
type FlashMessage struct {
	Text string
	Type FlashType
	Time time.Time
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	hasProjects  bool // Whether any project is configured
	loggedIn     bool // Whether a hub session is active
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "↑/↓", Desc: "select project"},
			{Key: "c", Desc: "commit"},
			{Key: "p", Desc: "set folder"},
			{Key: "l", Desc: "log in"},
			{Key: "o", Desc: "log out"},
			{Key: "n", Desc: "notifications"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(hasProjects, loggedIn bool) {
	f.hasProjects = hasProjects
	f.loggedIn = loggedIn
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetFlash shows a transient status message
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.flashMessage = &FlashMessage{
		Text: text,
		Type: flashType,
		Time: time.Now(),
	}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		if time.Since(f.flashMessage.Time) > FlashDuration {
			f.flashMessage = nil
		} else {
			style := FooterDescStyle
			switch f.flashMessage.Type {
			case FlashSuccess:
				style = StatusSuccessStyle
			case FlashError:
				style = StatusErrorStyle
			}
			return FooterStyle.Width(f.width).Render(style.Render(f.flashMessage.Text))
		}
	}

	var parts []string

	for _, b := range f.bindings {
		// Skip project-specific bindings when no project is configured
		if (b.Key == "↑/↓" || b.Key == "c" || b.Key == "p") && !f.hasProjects {
			continue
		}
		// Show only the relevant auth binding
		if b.Key == "l" && f.loggedIn {
			continue
		}
		if b.Key == "o" && !f.loggedIn {
			continue
		}

		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
