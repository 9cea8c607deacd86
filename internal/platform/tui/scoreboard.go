package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/platformgen/internal/registry"
	"github.com/vovakirdan/platformgen/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show preset list sidebar
	sidebarWidth       = 20  // Width of preset list sidebar
	maxRuns            = 100 // Max runs to load
)

// ScoreboardModel is the Bubble Tea model for the run history screen.
type ScoreboardModel struct {
	presets      []registry.PresetInfo
	presetCursor int
	store        *storage.Store
	runs         []storage.RunRecord
	stats        *storage.PresetStats
	table        table.Model
	help         help.Model
	keys         ScoreboardKeyMap
	width        int
	height       int
	quitting     bool
	showSidebar  bool
}

// NewScoreboardModel creates a new scoreboard model focused on preset, or
// on the first registered preset if preset is empty or unknown.
func NewScoreboardModel(store *storage.Store, preset string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		presets:     registry.List(),
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	for i, p := range m.presets {
		if p.ID == preset {
			m.presetCursor = i
		}
	}

	m.table = m.createTable()
	if len(m.presets) > 0 {
		m.loadRuns(m.presets[m.presetCursor].ID)
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Seed", Width: 20},
		{Title: "Result", Width: 10},
		{Title: "Date", Width: 14},
	}

	height := m.height - 10
	if height < minTableHeight {
		height = minTableHeight
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the best runs and stats for the given preset.
func (m *ScoreboardModel) loadRuns(preset string) {
	m.runs, m.stats = nil, nil
	if m.store != nil {
		if runs, err := m.store.TopRuns(preset, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.Stats(preset); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		result := "won"
		if !r.Won {
			result = r.Cause
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Seed),
			result,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPreset):
			if len(m.presets) > 0 {
				m.presetCursor = (m.presetCursor + 1) % len(m.presets)
				m.loadRuns(m.presets[m.presetCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevPreset):
			if len(m.presets) > 0 {
				m.presetCursor--
				if m.presetCursor < 0 {
					m.presetCursor = len(m.presets) - 1
				}
				m.loadRuns(m.presets[m.presetCursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "RUN HISTORY"
	if p, ok := m.Preset(); ok {
		title = fmt.Sprintf("RUN HISTORY - %s", p.Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.stats != nil && m.stats.Runs > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d runs  %d wins  best %d  avg %.0f",
			m.stats.Runs, m.stats.Wins, m.stats.BestScore, m.stats.AvgScore)))
		b.WriteString("\n")
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderSidebar(), "  ", boxStyle.Render(m.renderTableContent())))
	} else {
		b.WriteString(boxStyle.Render(m.renderTableContent()))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the preset list.
func (m ScoreboardModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Presets\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, p := range m.presets {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.presetCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := p.Title
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nUse play to simulate one!")
	}

	return m.table.View()
}

// Preset returns the preset currently shown.
func (m ScoreboardModel) Preset() (registry.PresetInfo, bool) {
	if len(m.presets) == 0 {
		return registry.PresetInfo{}, false
	}
	return m.presets[m.presetCursor], true
}

// Runs returns the runs currently listed.
func (m ScoreboardModel) Runs() []storage.RunRecord {
	return m.runs
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(store *storage.Store, preset string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, preset, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
