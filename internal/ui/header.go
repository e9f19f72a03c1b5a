package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// Gradient endpoints for the title bar. headerFg matches ColorPrimary,
// headerBg is the color the gradient fades into.
const (
	headerFg = "#0D9488"
	headerBg = "#111827"
)

// Header represents the top header bar
type Header struct {
	width    int
	username string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetUsername sets the logged-in hub username to display.
// An empty string clears it.
func (h *Header) SetUsername(name string) {
	h.username = name
}

// View renders the header
func (h *Header) View() string {
	titleText := " labsync"
	var rightText string
	if h.username != "" {
		rightText = h.username + " "
	}

	paddingLen := h.width - runewidth.StringWidth(titleText) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText

	return h.renderGradient(fullContent)
}

// parseHexColor parses a hex color string (e.g., "#0D9488") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a gradient background fading
// from the primary color into the terminal background.
func (h *Header) renderGradient(content string) string {
	if len(content) == 0 {
		return ""
	}

	startR, startG, startB := parseHexColor(headerFg)
	endR, endG, endB := parseHexColor(headerBg)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Foreground(ColorText).
			Bold(i < 8) // Bold for the "labsync" title

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
