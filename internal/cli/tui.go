package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/colorbars/pkg/freq"
	"github.com/matzehuels/colorbars/pkg/palette"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// swatchWidth is the number of cells a colour swatch occupies.
const swatchWidth = 4

// =============================================================================
// Ranked table rendering
// =============================================================================

// rankRows returns one table row per entry in [from, to).
func rankRows(entries []freq.Entry, total float64, from, to int, cursor int) [][]string {
	rows := make([][]string, 0, to-from)
	for i := from; i < to; i++ {
		e := entries[i]
		marker := "  "
		if i == cursor {
			marker = "▸ "
		}
		rows = append(rows, []string{
			marker,
			strconv.Itoa(i + 1),
			strings.Repeat(" ", swatchWidth),
			e.Key,
			palette.DeriveFill(e.Key).Hex,
			formatFrequency(e.Value),
			formatShare(e.Value, total),
		})
	}
	return rows
}

// renderRankTable draws entries[from:to] as a bordered table with a colour
// swatch column. cursor < 0 disables the selection marker.
func renderRankTable(entries []freq.Entry, total float64, from, to, cursor int) string {
	const swatchCol = 2

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "", "Key", "Fill", "Frequency", "Share").
		Rows(rankRows(entries, total, from, to, cursor)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			idx := from + row
			if idx >= len(entries) {
				return lipgloss.NewStyle()
			}
			if col == swatchCol {
				fill := palette.DeriveFill(entries[idx].Key)
				return lipgloss.NewStyle().Background(lipgloss.Color(fill.Hex))
			}
			base := lipgloss.NewStyle().Foreground(colorWhite)
			if col == 1 || col == 6 {
				base = base.Foreground(colorGray)
			}
			if idx == cursor {
				return base.Foreground(colorCyan).Bold(true)
			}
			return base
		})

	return t.Render()
}

func formatFrequency(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatShare(v, total float64) string {
	if total <= 0 {
		return "—"
	}
	return fmt.Sprintf("%.1f%%", 100*v/total)
}

// =============================================================================
// RankListModel - Interactive ranked table browser
// =============================================================================

// RankListModel is the bubbletea model for browsing a ranked table.
type RankListModel struct {
	Entries  []freq.Entry
	Total    float64 // Sum over the full table, for shares
	Cursor   int
	Offset   int
	Height   int
	Selected *freq.Entry
}

// NewRankListModel creates a browser over ranked. total is the sum of the
// unranked table so shares reflect everything that was loaded.
func NewRankListModel(ranked *freq.Table, total float64) RankListModel {
	return RankListModel{
		Entries: ranked.Entries(),
		Total:   total,
		Height:  15,
	}
}

func (m RankListModel) Init() tea.Cmd {
	return nil
}

func (m RankListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "pgup":
			m.move(-m.Height)
		case "pgdown", " ":
			m.move(m.Height)
		case "home", "g":
			m.move(-len(m.Entries))
		case "end", "G":
			m.move(len(m.Entries))
		case "enter":
			if len(m.Entries) == 0 {
				return m, nil
			}
			e := m.Entries[m.Cursor]
			m.Selected = &e
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-9, 5)
		m.move(0)
	}
	return m, nil
}

// move shifts the cursor by delta, clamped to the entries, and scrolls the
// window so the cursor stays visible.
func (m *RankListModel) move(delta int) {
	if len(m.Entries) == 0 {
		return
	}
	m.Cursor = min(max(m.Cursor+delta, 0), len(m.Entries)-1)
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m RankListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Ranked Colours"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  pgup/pgdn page  ⏎ select  q quit"))
	b.WriteString("\n\n")

	if len(m.Entries) == 0 {
		b.WriteString(listDimStyle.Render("  (empty table)"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Entries))
	b.WriteString(renderRankTable(m.Entries, m.Total, m.Offset, end, m.Cursor))
	b.WriteString("\n\n")

	cur := m.Entries[m.Cursor]
	fill := palette.DeriveFill(cur.Key)
	preview := lipgloss.NewStyle().
		Background(lipgloss.Color(fill.Hex)).
		Foreground(lipgloss.Color(palette.TextColor(fill))).
		Padding(0, 1).
		Render(fill.Hex)
	b.WriteString("  " + preview + " " + StyleNumber.Render(formatFrequency(cur.Value)))
	if !fill.Valid {
		b.WriteString(" " + StyleWarning.Render("(not a colour)"))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))

	return b.String()
}
