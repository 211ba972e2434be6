package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nvalla/walletview/pkg/model"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Consistent spacing, colors, and visual language
// ══════════════════════════════════════════════════════════════════════════════

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
	SpaceLG = 4
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula-inspired with extended semantic colors
// ══════════════════════════════════════════════════════════════════════════════

var (
	// Base colors
	ColorBg          = lipgloss.Color("#282A36")
	ColorBgSubtle    = lipgloss.Color("#363949")
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorSubtext     = lipgloss.Color("#BFBFBF")
	ColorMuted       = lipgloss.Color("#6272A4")

	// Primary accent colors
	ColorPrimary = lipgloss.Color("#BD93F9")
	ColorInfo    = lipgloss.Color("#8BE9FD")
	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorWarning = lipgloss.Color("#FFB86C")
	ColorDanger  = lipgloss.Color("#FF5555")

	// Price mode colors
	ColorPriceLastSale = lipgloss.Color("#8BE9FD")
	ColorPriceFloor    = lipgloss.Color("#50FA7B")
)

// ══════════════════════════════════════════════════════════════════════════════
// PANEL STYLES
// ══════════════════════════════════════════════════════════════════════════════

var (
	// PanelStyle is the default style for unfocused panels
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBgHighlight)

	// FocusedPanelStyle is the style for focused panels
	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	// TitleStyle renders view titles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StatusBarStyle renders the bottom hint line
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorSubtext).
			Background(ColorBgSubtle)

	// ErrorStyle renders user-facing error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	// InvalidWordStyle highlights words flagged invalid in the mnemonic input
	InvalidWordStyle = lipgloss.NewStyle().
				Foreground(ColorDanger).
				Underline(true)

	// SuggestionStyle renders autocomplete candidates
	SuggestionStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	// SelectedSuggestionStyle renders the highlighted candidate
	SelectedSuggestionStyle = lipgloss.NewStyle().
				Foreground(ColorBg).
				Background(ColorInfo)
)

// RenderPriceBadge returns a styled badge for the current price mode.
func RenderPriceBadge(mode model.PriceMode) string {
	var fg lipgloss.Color
	var label string

	switch mode {
	case model.PriceLastSale:
		fg, label = ColorPriceLastSale, "LAST"
	case model.PriceFloor:
		fg, label = ColorPriceFloor, "FLOOR"
	case model.PriceHidden:
		fg, label = ColorMuted, "HIDDEN"
	default:
		fg, label = ColorMuted, "?"
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Background(ColorBgSubtle).
		Bold(true).
		Render(" " + label + " ")
}

// FormatPrice renders a price figure, or a placeholder when the mode hides
// prices or the figure is absent.
func FormatPrice(mode model.PriceMode, lastSale, floor float64) string {
	var v float64
	switch mode {
	case model.PriceLastSale:
		v = lastSale
	case model.PriceFloor:
		v = floor
	default:
		return lipgloss.NewStyle().Foreground(ColorMuted).Render("•••")
	}
	if v == 0 {
		return lipgloss.NewStyle().Foreground(ColorMuted).Render("  —")
	}
	return fmt.Sprintf("%8.2f", v)
}

// RenderDivider renders a horizontal divider line
func RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(ColorBgHighlight).
		Render(strings.Repeat("─", width))
}
