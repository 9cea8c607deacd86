package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/platformgen/internal/core"
	"github.com/vovakirdan/platformgen/internal/layout"
	"github.com/vovakirdan/platformgen/internal/runner"
	"github.com/vovakirdan/platformgen/internal/storage"
)

// Inspector layout constants
const (
	inspectorChrome = 9 // Title, summary, status, help and borders
	minTableHeight  = 5
)

// InspectorModel is the Bubble Tea model for browsing generated layouts.
// Each seed is regenerated on demand; nothing is cached between seeds.
type InspectorModel struct {
	runner   *runner.Runner
	store    *storage.Store // Optional; simulated runs are saved when set
	config   core.RuntimeConfig
	result   *layout.Result
	err      error
	report   *runner.Report
	step     int // Platforms revealed so far during playback
	playing  bool
	saved    bool
	table    table.Model
	help     help.Model
	keys     InspectorKeyMap
	quitting bool
}

// NewInspectorModel creates an inspector starting at cfg.Seed.
func NewInspectorModel(r *runner.Runner, store *storage.Store, cfg core.RuntimeConfig) InspectorModel {
	m := InspectorModel{
		runner: r,
		store:  store,
		config: cfg,
		help:   help.New(),
		keys:   DefaultInspectorKeyMap(),
	}
	m.table = m.createTable()
	m.regenerate()
	return m
}

// createTable creates the platform table sized to the screen.
func (m *InspectorModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Prototype", Width: 12},
		{Title: "Position", Width: 26},
		{Title: "Hazards", Width: 8},
		{Title: "Gems", Width: 6},
		{Title: "", Width: 6},
	}

	height := m.config.ScreenH - inspectorChrome
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

// regenerate rebuilds the layout for the current seed.
func (m *InspectorModel) regenerate() {
	m.report = nil
	m.playing = false
	m.saved = false
	m.step = 0
	m.result, m.err = m.runner.Generate(m.config.Seed)
	m.updateTableRows()
}

// updateTableRows fills the table from the current result.
func (m *InspectorModel) updateTableRows() {
	if m.result == nil {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, len(m.result.Platforms))
	for i, p := range m.result.Platforms {
		mark := ""
		switch {
		case i == m.result.Goal.PlatformIndex:
			mark = "goal"
		case i == 0:
			mark = "start"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", p.Index),
			p.Prototype.ID,
			p.Position.String(),
			fmt.Sprintf("%d", len(m.result.HazardsOn(i))),
			fmt.Sprintf("%d", len(m.result.GemsOn(i))),
			mark,
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the inspector.
func (m InspectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the inspector.
func (m InspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Next):
			m.config.Seed++
			m.regenerate()
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.config.Seed--
			m.regenerate()
			return m, nil

		case key.Matches(msg, m.keys.Play):
			return m.startPlayback()

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			if m.playing {
				return m, nil
			}
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case PlaybackTickMsg:
		return m.advancePlayback()

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// startPlayback simulates a run on the current seed and starts revealing
// it one platform per tick.
func (m InspectorModel) startPlayback() (tea.Model, tea.Cmd) {
	if m.result == nil || m.playing {
		return m, nil
	}

	rep, err := m.runner.Play(m.config.Seed)
	if err != nil {
		m.err = err
		return m, nil
	}

	m.report = rep
	m.playing = true
	m.saved = false
	m.step = 0
	m.table.GotoTop()
	return m, playbackCmd(defaultPlaybackRate)
}

// advancePlayback moves the replay cursor and records the run when done.
func (m InspectorModel) advancePlayback() (tea.Model, tea.Cmd) {
	if !m.playing || m.report == nil {
		return m, nil
	}

	m.step++
	m.table.SetCursor(m.step - 1)

	if m.step < m.report.Outcome.PlatformsVisited {
		return m, playbackCmd(defaultPlaybackRate)
	}

	m.playing = false
	if m.store != nil && !m.saved {
		//nolint:errcheck // Best-effort save
		m.store.SaveRun(m.report.Record())
	}
	m.saved = true
	return m, nil
}

// View renders the inspector.
func (m InspectorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	lvl := m.runner.Level()
	title := fmt.Sprintf("%s - seed %d", strings.ToUpper(lvl.Title), m.config.Seed)
	b.WriteString(titleStyle.Render(centerText(title, m.config.ScreenW)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n\n")
	}

	if m.result != nil {
		s := m.result.Summary()
		b.WriteString(dimStyle.Render(fmt.Sprintf(
			"%d platforms  %d hazards  %d gems (%d)  height %.1f..%.1f  attempts %d",
			s.Platforms, s.Hazards, s.Gems, s.GemValue, s.LowestY, s.HighestY, s.Attempts,
		)))
		b.WriteString("\n")

		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m InspectorModel) statusLine() string {
	switch {
	case m.report == nil:
		return dimStyle.Render("press p to simulate a run")
	case m.playing:
		return fmt.Sprintf("agent on platform %d of %d", m.step, len(m.report.Result.Platforms))
	default:
		return RenderOutcome(m.report.Outcome, true)
	}
}

// Seed returns the seed currently displayed.
func (m InspectorModel) Seed() uint64 {
	return m.config.Seed
}

// Result returns the layout currently displayed, or nil after a failure.
func (m InspectorModel) Result() *layout.Result {
	return m.result
}

// Report returns the last simulated run, or nil.
func (m InspectorModel) Report() *runner.Report {
	return m.report
}

// Playing reports whether a replay is in progress.
func (m InspectorModel) Playing() bool {
	return m.playing
}

// Err returns the last generation or simulation error.
func (m InspectorModel) Err() error {
	return m.err
}

// RunInspector runs the inspector until the user quits.
func RunInspector(r *runner.Runner, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewInspectorModel(r, store, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
