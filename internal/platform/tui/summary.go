package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/platformgen/internal/layout"
	"github.com/vovakirdan/platformgen/internal/session"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(12)
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))
	loseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// SummaryOptions controls plain summary output.
type SummaryOptions struct {
	Title   string
	Seed    uint64
	Styled  bool // Apply colors; off when stdout is not a terminal
	Verbose bool // Also list every platform
}

// RenderSummary renders a generated layout as aligned key/value lines.
func RenderSummary(res *layout.Result, opts SummaryOptions) string {
	s := res.Summary()
	var b strings.Builder

	b.WriteString(styled(opts.Styled, titleStyle, opts.Title))
	b.WriteString("\n")

	rows := [][2]string{
		{"seed", fmt.Sprintf("%d", opts.Seed)},
		{"platforms", fmt.Sprintf("%d", s.Platforms)},
		{"hazards", fmt.Sprintf("%d", s.Hazards)},
		{"gems", fmt.Sprintf("%d (worth %d)", s.Gems, s.GemValue)},
		{"height", fmt.Sprintf("%.1f .. %.1f", s.LowestY, s.HighestY)},
		{"goal", res.Goal.Position.String()},
		{"boundary", fmt.Sprintf("%s size %s", res.Boundary.Box.Center, res.Boundary.Box.Size)},
		{"attempts", fmt.Sprintf("%d", s.Attempts)},
	}
	for _, r := range rows {
		b.WriteString(kv(opts.Styled, r[0], r[1]))
		b.WriteString("\n")
	}

	if opts.Verbose {
		b.WriteString("\n")
		for _, p := range res.Platforms {
			line := fmt.Sprintf("%4d  %-10s %-24s hazards=%d gems=%d",
				p.Index, p.Prototype.ID, p.Position, len(res.HazardsOn(p.Index)), len(res.GemsOn(p.Index)))
			b.WriteString(styled(opts.Styled, valueStyle, line))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderOutcome renders a simulated run result on one line.
func RenderOutcome(out session.Outcome, styledOut bool) string {
	if out.Won {
		return styled(styledOut, winStyle, "REACHED GOAL") +
			fmt.Sprintf("  score %d, %d gems, %d platforms", out.Score, out.GemsCollected, out.PlatformsVisited)
	}
	return styled(styledOut, loseStyle, fmt.Sprintf("DIED (%s)", out.Cause)) +
		fmt.Sprintf("  score %d, %d gems, platform %d", out.Score, out.GemsCollected, out.PlatformsVisited)
}

func kv(styledOut bool, label, value string) string {
	if !styledOut {
		return fmt.Sprintf("%-12s%s", label, value)
	}
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func styled(on bool, s lipgloss.Style, text string) string {
	if !on {
		return text
	}
	return s.Render(text)
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + text
}
