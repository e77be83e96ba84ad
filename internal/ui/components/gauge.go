package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/spellz/internal/ui/theme"
)

// Gauge is a one-line bar showing Ratio, a fraction in [0, 1], within
// Width cells including the label and the optional percentage.
type Gauge struct {
	Label   string
	Ratio   float64
	Width   int
	Percent bool
}

const minGauge = 4

func (g Gauge) View() string {
	var head, tail string
	if g.Label != "" {
		head = theme.Body.Render(g.Label) + "  "
	}
	ratio := min(max(g.Ratio, 0), 1)
	if g.Percent {
		tail = theme.Subtitle.Render(fmt.Sprintf("%5s", fmt.Sprintf("%d%%", int(ratio*100))))
		tail = " " + tail
	}

	cells := max(g.Width-lipgloss.Width(head)-lipgloss.Width(tail), minGauge)
	full := int(float64(cells) * ratio)
	return head +
		theme.GaugeFill.Render(strings.Repeat("█", full)) +
		theme.GaugeTrack.Render(strings.Repeat("░", cells-full)) +
		tail
}
