package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const collectionsHelp = `# Collections

## Navigation

| Key | Action |
|-----|--------|
| j/↓, k/↑ | Move down / up |
| g, G | Go to top / bottom |

## Actions

| Key | Action |
|-----|--------|
| enter, space | Expand / collapse collection |
| r | Refresh from catalog |
| p | Cycle price display mode |
| / | Fuzzy search |
| c | Copy collection id |
| s | Toggle stats panel |

## View

| Key | Action |
|-----|--------|
| ? | Toggle this help |
| q, esc | Quit |
`

const restoreHelp = `# Restore account

Type your recovery phrase. Words still being typed are not flagged as long
as they can complete to a real word; suggestions follow the detected
wordlist languages.

| Key | Action |
|-----|--------|
| ↑/↓ | Select suggestion |
| tab | Accept suggestion / next field |
| enter | Validate and restore |
| ctrl+p | Toggle passphrase |
| ctrl+k | Allow third-party keyboard |
| esc | Dismiss error / quit |
`

// HelpOverlayModel shows keyboard shortcuts help rendered from markdown
type HelpOverlayModel struct {
	visible  bool
	markdown string
	rendered string
	width    int
	height   int
}

// NewHelpOverlayModel creates a new help overlay for the given markdown
func NewHelpOverlayModel(markdown string) HelpOverlayModel {
	return HelpOverlayModel{markdown: markdown}
}

// Show makes the help overlay visible
func (m *HelpOverlayModel) Show() {
	m.visible = true
}

// Toggle toggles visibility
func (m *HelpOverlayModel) Toggle() {
	m.visible = !m.visible
}

// IsVisible returns true if overlay is showing
func (m HelpOverlayModel) IsVisible() bool {
	return m.visible
}

// SetSize sets dimensions
func (m *HelpOverlayModel) SetSize(width, height int) {
	if width != m.width {
		m.rendered = ""
	}
	m.width = width
	m.height = height
}

// Update handles input
func (m HelpOverlayModel) Update(msg tea.Msg) (HelpOverlayModel, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg.(type) {
	case tea.KeyMsg:
		// Any key closes help
		m.visible = false
	}

	return m, nil
}

// View renders the help overlay
func (m HelpOverlayModel) View() string {
	if !m.visible {
		return ""
	}

	if m.rendered == "" {
		wrap := m.width - 8
		if wrap < 40 {
			wrap = 40
		}
		m.rendered = m.markdown
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(wrap),
		)
		if err == nil {
			if out, err := r.Render(m.markdown); err == nil {
				m.rendered = out
			}
		}
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBgHighlight).
		Padding(0, 1)

	return boxStyle.Render(m.rendered)
}
