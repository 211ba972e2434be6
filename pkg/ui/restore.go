package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nvalla/walletview/pkg/mnemonic"
	"github.com/nvalla/walletview/pkg/model"
)

// KeyboardPrefs persists the third-party keyboard permission.
type KeyboardPrefs interface {
	SetAllowThirdPartyKeyboard(bool) error
}

// Fixed user-facing validation messages. Failures are state, not errors
// surfaced to the caller.
const (
	msgInvalidWords    = "invalid words in phrase"
	msgWordCount       = "phrase must be 12, 15, 18, 21 or 24 words"
	msgChecksum        = "invalid checksum"
	msgPassphraseBlank = "passphrase can't be blank"
)

// maxSuggestionsShown caps the autocomplete row.
const maxSuggestionsShown = 6

type restoreFocus int

const (
	focusMnemonic restoreFocus = iota
	focusPassphrase
	focusName
)

// Preset selections for the shown-coins toggle.
var coinPresets = [][]string{
	{"BTC", "ETH"},
	{"BTC", "ETH", "BNB", "MATIC", "ARB"},
	{"BTC"},
}

// RestoreModel drives interactive mnemonic-phrase entry: live word
// validation with in-progress leniency, wordlist language detection,
// autocomplete suggestions, optional passphrase, and checksum-validated
// submission. The whole state is recomputed on every user action.
type RestoreModel struct {
	prefs KeyboardPrefs

	input     textinput.Model
	passInput textinput.Model
	nameInput textinput.Model
	focus     restoreFocus

	words         []mnemonic.WordItem
	invalid       []mnemonic.WordItem
	invalidRanges [][2]int
	suggestion    mnemonic.Suggestion
	sugIndex      int

	passphraseEnabled bool
	passphraseError   string

	coinsPreset int

	allowThirdPartyKeyboard bool
	errMsg                  string
	result                  *model.RestoredAccount

	help   HelpOverlayModel
	width  int
	height int
}

// NewRestoreModel creates the presenter. defaultName is the account
// factory's suggested display name; allowKeyboard is the persisted
// third-party keyboard permission.
func NewRestoreModel(prefs KeyboardPrefs, defaultName string, allowKeyboard bool) RestoreModel {
	input := textinput.New()
	input.Placeholder = "enter your recovery phrase"
	input.Focus()
	input.CharLimit = 512
	input.Width = 64

	pass := textinput.New()
	pass.Placeholder = "passphrase"
	pass.EchoMode = textinput.EchoPassword
	pass.CharLimit = 128
	pass.Width = 32

	name := textinput.New()
	name.SetValue(defaultName)
	name.CharLimit = 64
	name.Width = 32

	return RestoreModel{
		prefs:                   prefs,
		input:                   input,
		passInput:               pass,
		nameInput:               name,
		allowThirdPartyKeyboard: allowKeyboard,
		help:                    NewHelpOverlayModel(restoreHelp),
	}
}

// Init implements tea.Model
func (m RestoreModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m RestoreModel) Update(msg tea.Msg) (RestoreModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m RestoreModel) handleKey(msg tea.KeyMsg) (RestoreModel, tea.Cmd) {
	if m.help.IsVisible() {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	if m.result != nil {
		// Terminal state; enter or q leaves the view.
		switch msg.String() {
		case "enter", "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.errMsg != "" {
			m = m.errorShown()
			return m, nil
		}
		return m, tea.Quit

	case "ctrl+h":
		m.help.Show()
		return m, nil

	case "ctrl+p":
		m = m.setPassphraseEnabled(!m.passphraseEnabled)
		return m, nil

	case "ctrl+k":
		m = m.setAllowThirdPartyKeyboard(!m.allowThirdPartyKeyboard)
		return m, nil

	case "ctrl+t":
		m = m.selectCoinsShown((m.coinsPreset + 1) % len(coinPresets))
		return m, nil

	case "up":
		if m.focus == focusMnemonic && len(m.suggestion.Options) > 0 {
			m.sugIndex--
			if m.sugIndex < 0 {
				m.sugIndex = len(m.suggestion.Options) - 1
			}
			return m, nil
		}

	case "down":
		if m.focus == focusMnemonic && len(m.suggestion.Options) > 0 {
			m.sugIndex = (m.sugIndex + 1) % len(m.suggestion.Options)
			return m, nil
		}

	case "tab":
		if m.focus == focusMnemonic && len(m.suggestion.Options) > 0 {
			m = m.acceptSuggestion()
			return m, nil
		}
		m = m.cycleFocus()
		return m, nil

	case "shift+tab":
		m = m.cycleFocus()
		return m, nil

	case "enter":
		m = m.proceed()
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusMnemonic:
		m.input, cmd = m.input.Update(msg)
		m = m.onMnemonicChanged()
	case focusPassphrase:
		m.passInput, cmd = m.passInput.Update(msg)
		m.passphraseError = ""
	case focusName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	}
	return m, cmd
}

// onMnemonicChanged recomputes the derived word state from the current
// text and cursor: tokens, display-invalid words, and suggestions.
func (m RestoreModel) onMnemonicChanged() RestoreModel {
	text := m.input.Value()
	cursor := m.input.Position()

	m.words = mnemonic.Tokenize(text)
	m.invalid = mnemonic.InvalidWords(m.words, cursor)
	m.invalidRanges = nil
	m.errMsg = ""

	prev := m.suggestion
	m.suggestion = mnemonic.SuggestAt(m.words, cursor)
	if prev.Word != m.suggestion.Word || len(prev.Options) != len(m.suggestion.Options) {
		m.sugIndex = 0
	}
	if m.sugIndex >= len(m.suggestion.Options) {
		m.sugIndex = 0
	}
	return m
}

// acceptSuggestion replaces the word under the cursor with the selected
// candidate and appends a separating space.
func (m RestoreModel) acceptSuggestion() RestoreModel {
	if m.sugIndex >= len(m.suggestion.Options) {
		return m
	}
	option := m.suggestion.Options[m.sugIndex]

	runes := []rune(m.input.Value())
	cursor := m.input.Position()
	start, end := cursor, cursor
	for _, it := range m.words {
		if it.Start <= cursor-1 && cursor-1 < it.End {
			start, end = it.Start, it.End
			break
		}
	}

	next := string(runes[:start]) + option + " " + string(runes[end:])
	m.input.SetValue(next)
	m.input.SetCursor(start + len([]rune(option)) + 1)
	return m.onMnemonicChanged()
}

func (m RestoreModel) cycleFocus() RestoreModel {
	m.input.Blur()
	m.passInput.Blur()
	m.nameInput.Blur()

	switch m.focus {
	case focusMnemonic:
		if m.passphraseEnabled {
			m.focus = focusPassphrase
			m.passInput.Focus()
		} else {
			m.focus = focusName
			m.nameInput.Focus()
		}
	case focusPassphrase:
		m.focus = focusName
		m.nameInput.Focus()
	default:
		m.focus = focusMnemonic
		m.input.Focus()
	}
	return m
}

// setPassphraseEnabled toggles the passphrase field, clearing its error and
// text when disabled.
func (m RestoreModel) setPassphraseEnabled(enabled bool) RestoreModel {
	m.passphraseEnabled = enabled
	m.passphraseError = ""
	if !enabled {
		m.passInput.Reset()
		if m.focus == focusPassphrase {
			m.focus = focusMnemonic
			m.passInput.Blur()
			m.input.Focus()
		}
	}
	return m
}

// selectCoinsShown replaces the shown-coins selection.
func (m RestoreModel) selectCoinsShown(preset int) RestoreModel {
	if preset < 0 || preset >= len(coinPresets) {
		return m
	}
	m.coinsPreset = preset
	return m
}

// setAllowThirdPartyKeyboard flips and persists the keyboard permission.
func (m RestoreModel) setAllowThirdPartyKeyboard(allow bool) RestoreModel {
	m.allowThirdPartyKeyboard = allow
	if m.prefs != nil {
		if err := m.prefs.SetAllowThirdPartyKeyboard(allow); err != nil {
			m.errMsg = err.Error()
		}
	}
	return m
}

// errorShown clears the error message after the user has seen it.
func (m RestoreModel) errorShown() RestoreModel {
	m.errMsg = ""
	m.invalidRanges = nil
	return m
}

// proceed validates the phrase in priority order: invalid words, word
// count, passphrase errors, then the checksum. On success the restored
// account result is set.
func (m RestoreModel) proceed() RestoreModel {
	if len(m.invalid) > 0 {
		ranges := make([][2]int, len(m.invalid))
		for i, it := range m.invalid {
			ranges[i] = [2]int{it.Start, it.End}
		}
		m.invalidRanges = ranges
		m.errMsg = msgInvalidWords
		return m
	}

	words := mnemonic.Words(m.words)
	if !mnemonic.ValidCount(len(words)) {
		m.errMsg = msgWordCount
		return m
	}

	if m.passphraseError != "" {
		return m
	}
	if m.passphraseEnabled && strings.TrimSpace(m.passInput.Value()) == "" {
		m.passphraseError = msgPassphraseBlank
		return m
	}

	res := mnemonic.Check(words)
	switch res.Reason {
	case mnemonic.CheckOK:
		m.result = &model.RestoredAccount{
			Name:       m.nameInput.Value(),
			Words:      words,
			Passphrase: m.passInput.Value(),
		}
		m.errMsg = ""
	case mnemonic.ReasonInvalidWord:
		m.errMsg = msgInvalidWords
	case mnemonic.ReasonWordCount:
		m.errMsg = msgWordCount
	default:
		m.errMsg = msgChecksum
	}
	return m
}

// Result returns the restored account, or nil before a successful submit.
func (m RestoreModel) Result() *model.RestoredAccount {
	return m.result
}

// View implements tea.Model
func (m RestoreModel) View() string {
	if m.help.IsVisible() {
		return m.help.View()
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Restore account") + "\n")
	b.WriteString(RenderDivider(max(m.width-2, 20)) + "\n\n")

	if m.result != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true).Render("✓ phrase accepted") + "\n\n")
		b.WriteString("account  " + m.result.Name + "\n")
		b.WriteString(fmt.Sprintf("words    %d\n", len(m.result.Words)))
		if m.result.Passphrase != "" {
			b.WriteString("passphrase set\n")
		}
		b.WriteString("\n" + StatusBarStyle.Render(" [enter] done "))
		return b.String()
	}

	b.WriteString(m.renderPhrase() + "\n")

	if !m.suggestion.Empty() {
		b.WriteString(m.renderSuggestions() + "\n")
	} else {
		b.WriteString("\n")
	}

	langs := mnemonic.DetectLanguages(m.words)
	if len(m.words) > 0 && len(langs) < len(mnemonic.Languages()) {
		names := make([]string, len(langs))
		for i, wl := range langs {
			names[i] = string(wl.Language)
		}
		b.WriteString(lipgloss.NewStyle().Foreground(ColorMuted).Render("wordlist: "+strings.Join(names, ", ")) + "\n")
	}

	if m.passphraseEnabled {
		b.WriteString("\npassphrase: " + m.passInput.View() + "\n")
		if m.passphraseError != "" {
			b.WriteString(ErrorStyle.Render("✗ "+m.passphraseError) + "\n")
		}
	}
	b.WriteString("\nname: " + m.nameInput.View() + "\n")

	if m.errMsg != "" {
		b.WriteString("\n" + ErrorStyle.Render("✗ "+m.errMsg) + "\n")
	}

	kb := "off"
	if m.allowThirdPartyKeyboard {
		kb = "on"
	}
	coins := strings.Join(coinPresets[m.coinsPreset], ",")
	b.WriteString("\n" + StatusBarStyle.Render(" [tab] complete  [enter] restore  [ctrl+p] passphrase  [ctrl+t] coins: "+coins+"  [ctrl+k] 3p keyboard: "+kb+"  [ctrl+h] help "))

	return b.String()
}

// renderPhrase shows the input line with invalid words underlined in red.
// Ranges flagged by a failed submit take precedence over live validation.
func (m RestoreModel) renderPhrase() string {
	if m.focus == focusMnemonic {
		// While the field is focused the textinput renders its own cursor;
		// invalid words are indicated on the summary line below instead.
		out := "phrase: " + m.input.View()
		if len(m.invalid) > 0 {
			flagged := make([]string, len(m.invalid))
			for i, it := range m.invalid {
				flagged[i] = it.Word
			}
			out += "\n" + InvalidWordStyle.Render("✗ "+strings.Join(flagged, " "))
		}
		return out
	}

	ranges := m.invalidRanges
	if ranges == nil {
		for _, it := range m.invalid {
			ranges = append(ranges, [2]int{it.Start, it.End})
		}
	}
	return "phrase: " + highlightRanges(m.input.Value(), ranges)
}

// highlightRanges styles the rune ranges of text that hold invalid words.
func highlightRanges(text string, ranges [][2]int) string {
	runes := []rune(text)
	var b strings.Builder
	pos := 0
	for _, r := range ranges {
		start, end := r[0], r[1]
		if start < pos || end > len(runes) {
			continue
		}
		b.WriteString(string(runes[pos:start]))
		b.WriteString(InvalidWordStyle.Render(string(runes[start:end])))
		pos = end
	}
	b.WriteString(string(runes[pos:]))
	return b.String()
}

func (m RestoreModel) renderSuggestions() string {
	shown := m.suggestion.Options
	first := 0
	if m.sugIndex >= maxSuggestionsShown {
		first = m.sugIndex - maxSuggestionsShown + 1
	}
	if first+maxSuggestionsShown < len(shown) {
		shown = shown[first : first+maxSuggestionsShown]
	} else {
		shown = shown[first:]
	}

	parts := make([]string, len(shown))
	for i, opt := range shown {
		if first+i == m.sugIndex {
			parts[i] = SelectedSuggestionStyle.Render(" " + opt + " ")
		} else {
			parts[i] = SuggestionStyle.Render(opt)
		}
	}
	return "  " + strings.Join(parts, "  ")
}
