package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/nvalla/walletview/pkg/model"
	"github.com/nvalla/walletview/pkg/stats"
)

// CollectionsService is the slice of the collection-data service the
// presenter consumes.
type CollectionsService interface {
	Subscribe() <-chan model.CollectionsState
	Unsubscribe(<-chan model.CollectionsState)
	Refresh()
	PriceMode() model.PriceMode
	SetPriceMode(model.PriceMode) error
}

// CollectionsStateMsg delivers a service state transition into the update
// loop.
type CollectionsStateMsg model.CollectionsState

// streamClosedMsg signals that the service closed the subscription.
type streamClosedMsg struct{}

// CollectionsModel presents the wallet's NFT collections: a scrollable list
// with per-item expand/collapse that survives refreshes, price display
// mode switching, fuzzy search and a stats panel.
type CollectionsModel struct {
	svc CollectionsService
	ch  <-chan model.CollectionsState

	items     []CollectionViewItem
	cursor    int
	offset    int
	loading   bool
	errMsg    string
	statusMsg string
	priceMode model.PriceMode

	searching bool
	search    textinput.Model
	filtered  []int // indexes into items; nil when no query

	showStats bool
	spinner   spinner.Model
	help      HelpOverlayModel

	width  int
	height int
}

// NewCollectionsModel creates the presenter and subscribes to the service
// stream. The service must already be started.
func NewCollectionsModel(svc CollectionsService) CollectionsModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	search := textinput.New()
	search.Placeholder = "search collections"
	search.CharLimit = 64
	search.Width = 32

	return CollectionsModel{
		svc:       svc,
		ch:        svc.Subscribe(),
		priceMode: svc.PriceMode(),
		spinner:   sp,
		search:    search,
		help:      NewHelpOverlayModel(collectionsHelp),
	}
}

// waitForState blocks on the subscription until the next state arrives.
func waitForState(ch <-chan model.CollectionsState) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-ch
		if !ok {
			return streamClosedMsg{}
		}
		return CollectionsStateMsg(st)
	}
}

// Init implements tea.Model
func (m CollectionsModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForState(m.ch))
}

// Update implements tea.Model
func (m CollectionsModel) Update(msg tea.Msg) (CollectionsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetSize(msg.Width, msg.Height)
		return m, nil

	case CollectionsStateMsg:
		m = m.applyState(model.CollectionsState(msg))
		return m, waitForState(m.ch)

	case streamClosedMsg:
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// applyState folds one service emission into the view state.
func (m CollectionsModel) applyState(st model.CollectionsState) CollectionsModel {
	switch st.Kind {
	case model.StateLoading:
		m.loading = true
	case model.StateData:
		m.loading = false
		m.errMsg = ""
		m.items = remapPreserveExpanded(m.items, st.Collections)
		m.refilter()
		m.clampCursor()
	case model.StateError:
		// Previous items are retained; only the message changes.
		m.loading = false
		if st.Err != nil {
			m.errMsg = st.Err.Error()
		}
	}
	return m
}

func (m CollectionsModel) handleKey(msg tea.KeyMsg) (CollectionsModel, tea.Cmd) {
	if m.help.IsVisible() {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.Reset()
			m.filtered = nil
			return m, nil
		case "enter":
			m.searching = false
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.refilter()
		m.clampCursor()
		return m, cmd
	}

	m.statusMsg = ""
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "j", "down":
		m.cursor++
		m.clampCursor()
	case "k", "up":
		m.cursor--
		m.clampCursor()
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = len(m.visible()) - 1
		m.clampCursor()

	case "enter", " ":
		if uid, ok := m.selectedUID(); ok {
			m.items = toggleByUID(m.items, uid)
		}

	case "r":
		m.loading = true
		m.svc.Refresh()
		return m, m.spinner.Tick

	case "p":
		next := m.priceMode.Next()
		if err := m.svc.SetPriceMode(next); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.priceMode = next

	case "c":
		if uid, ok := m.selectedUID(); ok {
			if err := clipboard.WriteAll(uid); err != nil {
				m.errMsg = fmt.Sprintf("clipboard: %v", err)
			} else {
				m.statusMsg = "copied " + uid
			}
		}

	case "/":
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink

	case "s":
		m.showStats = !m.showStats

	case "?":
		m.help.Show()
	}
	return m, nil
}

// visible returns the items currently shown, honoring the search filter.
func (m CollectionsModel) visible() []CollectionViewItem {
	if m.filtered == nil {
		return m.items
	}
	out := make([]CollectionViewItem, len(m.filtered))
	for i, idx := range m.filtered {
		out[i] = m.items[idx]
	}
	return out
}

// refilter recomputes the fuzzy search filter against name and UID.
func (m *CollectionsModel) refilter() {
	query := strings.TrimSpace(m.search.Value())
	if query == "" {
		m.filtered = nil
		return
	}
	haystack := make([]string, len(m.items))
	for i, it := range m.items {
		haystack[i] = it.Collection.Name + " " + it.Collection.UID
	}
	matches := fuzzy.Find(query, haystack)
	m.filtered = make([]int, len(matches))
	for i, match := range matches {
		m.filtered[i] = match.Index
	}
}

func (m *CollectionsModel) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m CollectionsModel) selectedUID() (string, bool) {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return "", false
	}
	return visible[m.cursor].Collection.UID, true
}

// Items exposes the current view items for composition and tests.
func (m CollectionsModel) Items() []CollectionViewItem {
	return m.items
}

// Loading reports whether a load is in flight.
func (m CollectionsModel) Loading() bool {
	return m.loading
}

// View implements tea.Model
func (m CollectionsModel) View() string {
	if m.help.IsVisible() {
		return m.help.View()
	}

	var b strings.Builder

	title := TitleStyle.Render("Collections")
	badge := RenderPriceBadge(m.priceMode)
	head := title + "  " + badge
	if m.loading {
		head += "  " + m.spinner.View() + " loading"
	}
	b.WriteString(head + "\n")
	b.WriteString(RenderDivider(max(m.width-2, 20)) + "\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString("/" + m.search.View() + "\n")
	}

	if m.errMsg != "" {
		b.WriteString(ErrorStyle.Render("✗ "+m.errMsg) + "\n")
	}

	visible := m.visible()
	if len(visible) == 0 && !m.loading {
		b.WriteString(lipgloss.NewStyle().Foreground(ColorMuted).Render("no collections") + "\n")
	}

	width := m.width
	if width <= 0 {
		width = BreakpointNarrow
	}
	for i, it := range visible {
		b.WriteString(renderCollectionRow(it, i == m.cursor, m.priceMode, width) + "\n")
		if it.Expanded {
			for _, row := range renderAssetRows(it.Collection, m.priceMode, width) {
				b.WriteString(row + "\n")
			}
		}
	}

	if m.showStats {
		b.WriteString("\n" + m.statsPanel(width))
	}

	hints := "[enter] expand  [r] refresh  [p] price  [/] search  [c] copy  [s] stats  [?] help  [q] quit"
	if m.statusMsg != "" {
		hints = m.statusMsg
	}
	b.WriteString("\n" + StatusBarStyle.Render(" "+hints+" "))

	return b.String()
}

func (m CollectionsModel) statsPanel(width int) string {
	collections := make([]model.Collection, len(m.items))
	for i, it := range m.items {
		collections[i] = it.Collection
	}
	s := stats.Summarize(collections)

	lines := []string{
		TitleStyle.Render("Portfolio"),
		fmt.Sprintf("collections  %d", s.Collections),
		fmt.Sprintf("assets       %d", s.Assets),
		fmt.Sprintf("total floor  %.2f", s.TotalFloor),
		fmt.Sprintf("mean floor   %.2f", s.MeanFloor),
		fmt.Sprintf("median floor %.2f", s.MedianFloor),
		fmt.Sprintf("max floor    %.2f", s.MaxFloor),
	}
	return renderStatsPanel(lines, width)
}
