package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/platformgen/internal/config"
	"github.com/vovakirdan/platformgen/internal/core"
	_ "github.com/vovakirdan/platformgen/internal/presets"
	"github.com/vovakirdan/platformgen/internal/runner"
	"github.com/vovakirdan/platformgen/internal/session"
	"github.com/vovakirdan/platformgen/internal/storage"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestRunner(t *testing.T) *runner.Runner {
	t.Helper()
	r, err := runner.New(config.DefaultLevel(), nil)
	if err != nil {
		t.Fatalf("runner.New() failed: %v", err)
	}
	return r
}

func testConfig(seed uint64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 100, ScreenH: 40, Seed: seed}
}

func TestInspectorNextAndPrevSeed(t *testing.T) {
	r := newTestRunner(t)
	m := NewInspectorModel(r, nil, testConfig(42))

	if m.Seed() != 42 || m.Result() == nil {
		t.Fatalf("expected seed 42 with a layout, got %d / %v", m.Seed(), m.Err())
	}

	updated, _ := m.Update(keyMsg("n"))
	m = updated.(InspectorModel)
	if m.Seed() != 43 {
		t.Errorf("n should advance the seed, got %d", m.Seed())
	}

	want, err := r.Generate(43)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Result().Platforms) != len(want.Platforms) {
		t.Error("inspector result should match a fresh generation for the seed")
	}

	updated, _ = m.Update(keyMsg("N"))
	m = updated.(InspectorModel)
	if m.Seed() != 42 {
		t.Errorf("N should step back, got %d", m.Seed())
	}
}

func TestInspectorPlayback(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	r := newTestRunner(t)
	m := NewInspectorModel(r, store, testConfig(7))

	updated, cmd := m.Update(keyMsg("p"))
	m = updated.(InspectorModel)
	if !m.Playing() || cmd == nil {
		t.Fatal("p should start playback")
	}

	for i := 0; i < 1000 && m.Playing(); i++ {
		updated, _ = m.Update(PlaybackTickMsg{})
		m = updated.(InspectorModel)
	}
	if m.Playing() {
		t.Fatal("playback should finish")
	}

	want, err := r.Play(7)
	if err != nil {
		t.Fatal(err)
	}
	if m.Report().Outcome != want.Outcome {
		t.Errorf("outcome = %+v, expected %+v", m.Report().Outcome, want.Outcome)
	}

	runs, err := store.AllRuns("classic")
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Seed != 7 {
		t.Errorf("expected one saved run for seed 7, got %+v", runs)
	}

	// Stray ticks after the run do nothing.
	updated, cmd = m.Update(PlaybackTickMsg{})
	if cmd != nil || updated.(InspectorModel).Playing() {
		t.Error("tick after playback should be ignored")
	}
}

func TestInspectorQuit(t *testing.T) {
	m := NewInspectorModel(newTestRunner(t), nil, testConfig(1))

	updated, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if updated.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestInspectorView(t *testing.T) {
	m := NewInspectorModel(newTestRunner(t), nil, testConfig(42))
	view := m.View()

	if !strings.Contains(view, "seed 42") {
		t.Error("view should show the seed")
	}
	if !strings.Contains(view, m.Result().Start().Prototype.ID) {
		t.Error("view should list the start platform's prototype")
	}
}

func TestInspectorResize(t *testing.T) {
	m := NewInspectorModel(newTestRunner(t), nil, testConfig(3))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
	m = updated.(InspectorModel)
	if m.Result() == nil {
		t.Error("resize should keep the layout")
	}
}

func TestScoreboard(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	store.SaveRun(storage.RunRecord{Preset: "gauntlet", Seed: 5, Score: 700, Won: true})
	store.SaveRun(storage.RunRecord{Preset: "gauntlet", Seed: 6, Score: 900, Cause: "hazard"})

	m := NewScoreboardModel(store, "gauntlet", 100, 30)
	p, ok := m.Preset()
	if !ok || p.ID != "gauntlet" {
		t.Fatalf("expected gauntlet preset, got %+v", p)
	}
	if runs := m.Runs(); len(runs) != 2 || runs[0].Score != 900 {
		t.Errorf("unexpected runs: %+v", runs)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(ScoreboardModel)
	if p, _ := m.Preset(); p.ID == "gauntlet" {
		t.Error("tab should move to the next preset")
	}
	if len(m.Runs()) != 0 {
		t.Error("other presets have no runs")
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty preset should show the placeholder")
	}
}

func TestRenderSummary(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.Generate(42)
	if err != nil {
		t.Fatal(err)
	}

	out := RenderSummary(res, SummaryOptions{Title: "Classic", Seed: 42, Verbose: true})
	if !strings.HasPrefix(out, "Classic\n") {
		t.Errorf("summary should start with the title, got %q", out)
	}
	if !strings.Contains(out, "seed        42") {
		t.Error("unstyled summary should align labels")
	}
	if strings.Count(out, "hazards=") != len(res.Platforms) {
		t.Error("verbose summary should list every platform")
	}
}

func TestRenderOutcome(t *testing.T) {
	won := RenderOutcome(session.Outcome{Won: true, Score: 300}, false)
	if !strings.HasPrefix(won, "REACHED GOAL") {
		t.Errorf("unexpected win line %q", won)
	}
	died := RenderOutcome(session.Outcome{Died: true, Cause: "boundary"}, false)
	if !strings.HasPrefix(died, "DIED (boundary)") {
		t.Errorf("unexpected death line %q", died)
	}
}

func TestSessionPreset(t *testing.T) {
	s := &SSHServer{config: DefaultSSHServerConfig()}

	if got := s.sessionPreset([]string{"gauntlet"}); got != "gauntlet" {
		t.Errorf("command preset = %q, expected gauntlet", got)
	}
	if got := s.sessionPreset([]string{"nonsense"}); got != "classic" {
		t.Errorf("unknown command should fall back, got %q", got)
	}
	if got := s.sessionPreset(nil); got != "classic" {
		t.Errorf("empty command should fall back, got %q", got)
	}
}
