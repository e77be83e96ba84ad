package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestMenuLookup(t *testing.T) {
	m := NewMenu("Menu", []MenuItem{{Key: "1", Label: "Start"}, {Key: "q", Label: "Quit"}})

	item, ok := m.Lookup(" Q ")
	assert.True(t, ok)
	assert.Equal(t, "Quit", item.Label)

	_, ok = m.Lookup("9")
	assert.False(t, ok)
}

func TestMenuView(t *testing.T) {
	m := NewMenu("Menu", []MenuItem{{Key: "1", Label: "Start"}, {Key: "q", Label: "Quit"}})
	assert.Equal(t, "Menu\n  1  Start\n  q  Quit\n", ansi.Strip(m.View()))
}

func TestTableAlignment(t *testing.T) {
	tbl := Table{
		Headers: []string{"Item", "Asked"},
		Rows: [][]string{
			{"receive", "12"},
			{"give up", "3"},
		},
		Right: map[int]bool{1: true},
	}
	lines := strings.Split(strings.TrimSuffix(ansi.Strip(tbl.View()), "\n"), "\n")
	assert.Equal(t, []string{
		"Item     Asked",
		"receive     12",
		"give up      3",
	}, lines)
}

func TestTableShortRow(t *testing.T) {
	tbl := Table{Headers: []string{"A", "B"}, Rows: [][]string{{"x"}}}
	assert.Equal(t, "A  B\nx\n", ansi.Strip(tbl.View()))
}

func TestGaugeWidth(t *testing.T) {
	for _, ratio := range []float64{-1, 0, 0.5, 1, 2} {
		g := Gauge{Label: "acc", Ratio: ratio, Width: 20}
		assert.Equal(t, 20, ansi.StringWidth(ansi.Strip(g.View())), "ratio %v", ratio)
	}

	view := ansi.Strip(Gauge{Ratio: 0.5, Width: 20, Percent: true}.View())
	assert.True(t, strings.HasSuffix(view, "50%"))
	assert.Equal(t, 7, strings.Count(view, "█"))
	assert.Equal(t, 20, ansi.StringWidth(view))

	narrow := ansi.Strip(Gauge{Label: "a long label", Ratio: 1, Width: 5}.View())
	assert.Equal(t, minGauge, strings.Count(narrow, "█"))
}
