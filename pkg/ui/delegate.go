package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/nvalla/walletview/pkg/model"
)

var (
	rowStyle         = lipgloss.NewStyle().PaddingLeft(2)
	selectedRowStyle = lipgloss.NewStyle().PaddingLeft(0).Foreground(ColorPrimary).Bold(true)
	assetRowStyle    = lipgloss.NewStyle().PaddingLeft(6).Foreground(ColorSubtext)
	countStyle       = lipgloss.NewStyle().Foreground(ColorMuted)
)

// renderCollectionRow renders one collection line: expansion marker, name,
// asset count and the price figure for the active mode.
func renderCollectionRow(it CollectionViewItem, selected bool, mode model.PriceMode, width int) string {
	marker := "▸"
	if it.Expanded {
		marker = "▾"
	}

	count := countStyle.Render(fmt.Sprintf("(%d)", len(it.Collection.Assets)))
	price := FormatPrice(mode, lastSaleTotal(it.Collection), it.Collection.FloorPrice)

	// Budget: marker(2) + count(6) + price(10) + gaps
	nameWidth := width - 24
	if nameWidth < 10 {
		nameWidth = 10
	}
	name := runewidth.Truncate(it.Collection.Name, nameWidth, "…")
	name = runewidth.FillRight(name, nameWidth)

	row := fmt.Sprintf("%s %s %s %s", marker, name, count, price)
	if selected {
		return selectedRowStyle.Render("▍ " + row)
	}
	return rowStyle.Render(row)
}

// renderAssetRows renders the indented asset lines beneath an expanded
// collection.
func renderAssetRows(c model.Collection, mode model.PriceMode, width int) []string {
	if len(c.Assets) == 0 {
		return []string{assetRowStyle.Render("(no assets)")}
	}

	rows := make([]string, 0, len(c.Assets))
	for _, a := range c.Assets {
		nameWidth := width - 28
		if nameWidth < 10 {
			nameWidth = 10
		}
		name := runewidth.Truncate(a.Name, nameWidth, "…")
		name = runewidth.FillRight(name, nameWidth)
		price := FormatPrice(mode, a.LastSale, a.LastSale)
		rows = append(rows, assetRowStyle.Render(fmt.Sprintf("#%s %s %s", shortToken(a.TokenID), name, price)))
	}
	return rows
}

// lastSaleTotal sums the collection's asset last-sale figures; the
// collection row shows the aggregate in last-sale mode.
func lastSaleTotal(c model.Collection) float64 {
	var total float64
	for _, a := range c.Assets {
		total += a.LastSale
	}
	return total
}

func shortToken(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[:6] + "…"
}

// renderStatsPanel renders the floor-price summary box.
func renderStatsPanel(lines []string, width int) string {
	inner := width - StatsPanelPadding
	if inner < 20 {
		inner = 20
	}
	return PanelStyle.Width(inner).Render(strings.Join(lines, "\n"))
}
