package cli

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/colorbars/pkg/freq"
)

func rankedTable(n int) *freq.Table {
	t := freq.New()
	for i := range n {
		t.Set(fmt.Sprintf("%06x", i+1), float64(n-i))
	}
	return t
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m RankListModel, msgs ...tea.Msg) (RankListModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(RankListModel)
	}
	return m, cmd
}

func TestFormatShare(t *testing.T) {
	tests := []struct {
		v, total float64
		want     string
	}{
		{1, 4, "25.0%"},
		{3, 3, "100.0%"},
		{1, 0, "—"},
	}
	for _, tt := range tests {
		if got := formatShare(tt.v, tt.total); got != tt.want {
			t.Errorf("formatShare(%v, %v) = %q, want %q", tt.v, tt.total, got, tt.want)
		}
	}
}

func TestRankRows(t *testing.T) {
	entries := []freq.Entry{{Key: "ff0000", Value: 3}, {Key: "zz", Value: 1}}
	rows := rankRows(entries, 4, 0, 2, 1)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0][1] != "1" || rows[1][1] != "2" {
		t.Errorf("ranks = %q, %q", rows[0][1], rows[1][1])
	}
	if rows[0][4] != "#ff0000" {
		t.Errorf("fill = %q, want #ff0000", rows[0][4])
	}
	if rows[1][4] != "#999999" {
		t.Errorf("invalid key fill = %q, want fallback", rows[1][4])
	}
	if rows[0][6] != "75.0%" {
		t.Errorf("share = %q, want 75.0%%", rows[0][6])
	}
	if rows[0][0] == rows[1][0] {
		t.Error("cursor row should be marked")
	}
}

func TestRankListModelNavigation(t *testing.T) {
	m := NewRankListModel(rankedTable(30), 0)
	m.Height = 10

	m, _ = update(m, keyMsg("down"), keyMsg("j"))
	if m.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.Cursor)
	}

	m, _ = update(m, keyMsg("up"), keyMsg("up"), keyMsg("up"))
	if m.Cursor != 0 {
		t.Errorf("cursor should clamp at 0, got %d", m.Cursor)
	}

	m, _ = update(m, keyMsg("G"))
	if m.Cursor != 29 {
		t.Errorf("end cursor = %d, want 29", m.Cursor)
	}
	if m.Offset != 20 {
		t.Errorf("end offset = %d, want 20", m.Offset)
	}

	m, _ = update(m, keyMsg("g"))
	if m.Cursor != 0 || m.Offset != 0 {
		t.Errorf("home = (%d, %d), want (0, 0)", m.Cursor, m.Offset)
	}

	m, _ = update(m, tea.WindowSizeMsg{Width: 80, Height: 10})
	if m.Height != 5 {
		t.Errorf("height = %d, want minimum 5", m.Height)
	}
}

func TestRankListModelSelect(t *testing.T) {
	m := NewRankListModel(rankedTable(3), 6)

	m, cmd := update(m, keyMsg("down"), keyMsg("enter"))
	if m.Selected == nil || m.Selected.Key != "000002" {
		t.Fatalf("selected = %+v, want 000002", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit")
	}
}

func TestRankListModelQuit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		m := NewRankListModel(rankedTable(3), 6)
		m, cmd := update(m, keyMsg(k))
		if cmd == nil {
			t.Errorf("%s should quit", k)
		}
		if m.Selected != nil {
			t.Errorf("%s should not select", k)
		}
	}
}

func TestRankListModelEmpty(t *testing.T) {
	m := NewRankListModel(freq.New(), 0)

	m, cmd := update(m, keyMsg("down"), keyMsg("enter"))
	if cmd != nil || m.Selected != nil {
		t.Error("enter on an empty table should do nothing")
	}
	if !strings.Contains(m.View(), "empty table") {
		t.Error("view should mention the empty table")
	}
}

func TestRankListModelView(t *testing.T) {
	m := NewRankListModel(rankedTable(3), 6)
	m, _ = update(m, keyMsg("down"))

	view := m.View()
	for _, want := range []string{"Ranked Colours", "000002", "#000002", "[2/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
