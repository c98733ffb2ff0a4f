package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"QuoteBoard/internal/domain/models"
)

// Styles.
var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	colHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	gainStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lossStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	errorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	spinnerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func (m Model) View() string {
	s := m.engine.State()

	if s.Loading {
		return "\n  " + spinnerStyle.Render("loading quotes...") + "\n"
	}

	var b strings.Builder

	title := "QuoteBoard"
	if s.Refreshing {
		title += "  " + spinnerStyle.Render("refreshing...")
	}
	b.WriteString("  " + titleStyle.Render(title) + "\n\n")

	if s.Failed() {
		b.WriteString("  " + errorStyle.Render(s.Err) + "\n\n")
		b.WriteString("  " + dimStyle.Render("press r or enter to retry, q to quit") + "\n")
		return b.String()
	}

	b.WriteString("  " + m.search.View() + "\n\n")
	b.WriteString("  " + colHeaderStyle.Render(headerText(s.Sort)) + "\n")

	rows := m.engine.Projection()
	if len(rows) == 0 {
		b.WriteString("  " + dimStyle.Render("no quotes match the current search") + "\n")
	}
	for _, q := range rows {
		style := gainStyle
		if q.Change < 0 {
			style = lossStyle
		}
		b.WriteString("  " + style.Render(rowText(q)) + "\n")
	}

	b.WriteString("\n  " + dimStyle.Render("/ search · 1-5 sort · r refresh · q quit") + "\n")
	return b.String()
}

// headerText renders the column header with the active sort indicator.
func headerText(cfg models.SortConfig) string {
	cols := []struct {
		key   models.SortKey
		label string
		width int
	}{
		{models.SortSymbol, "[1]Symbol", -10},
		{models.SortName, "[2]Name", -24},
		{models.SortPrice, "[3]Price", 12},
		{models.SortChange, "[4]Change", 12},
		{models.SortChangePercent, "[5]Change%", 12},
	}

	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		label := c.label + sortIndicator(cfg, c.key)
		parts = append(parts, fmt.Sprintf("%*s", c.width, label))
	}
	return strings.Join(parts, " ")
}

func sortIndicator(cfg models.SortConfig, key models.SortKey) string {
	if cfg.Key != key {
		return ""
	}
	if cfg.Direction == models.Descending {
		return " ▼"
	}
	return " ▲"
}

// rowText renders one quote as a fixed-width table row.
func rowText(q models.QuoteRecord) string {
	return fmt.Sprintf("%-10s %-24.24s %12.2f %+12.2f %+11.2f%%",
		q.Symbol, q.Name, q.Price, q.Change, q.ChangePercent)
}
