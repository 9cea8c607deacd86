package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/platformgen/internal/storage"
)

// withFlags restores the global flags after a test.
func withFlags(t *testing.T) {
	t.Helper()
	seed, preset, cfg, diff, logLevel := flagSeed, flagPreset, flagConfig, flagDifficulty, flagLogLevel
	t.Cleanup(func() {
		flagSeed, flagPreset, flagConfig, flagDifficulty, flagLogLevel = seed, preset, cfg, diff, logLevel
	})
	t.Setenv("HOME", t.TempDir())
}

func TestPresetArg(t *testing.T) {
	withFlags(t)
	flagPreset = "tutorial"

	if got := presetArg(nil); got != "tutorial" {
		t.Errorf("presetArg(nil) = %q, expected the --preset value", got)
	}
	if got := presetArg([]string{"gauntlet"}); got != "gauntlet" {
		t.Errorf("positional preset should win, got %q", got)
	}
}

func TestLoadLevelPreset(t *testing.T) {
	withFlags(t)
	flagPreset = "gauntlet"
	flagConfig = ""
	flagDifficulty = ""

	lvl, err := loadLevel(nil)
	if err != nil {
		t.Fatalf("loadLevel() failed: %v", err)
	}
	if lvl.ID != "gauntlet" {
		t.Errorf("ID = %q, expected gauntlet", lvl.ID)
	}
}

func TestLoadLevelDifficulty(t *testing.T) {
	withFlags(t)
	flagPreset = "classic"
	flagConfig = ""

	flagDifficulty = ""
	base, err := loadLevel(nil)
	if err != nil {
		t.Fatal(err)
	}

	flagDifficulty = "hard"
	hard, err := loadLevel(nil)
	if err != nil {
		t.Fatal(err)
	}
	if hard.Generation.HazardRisk <= base.Generation.HazardRisk {
		t.Error("--difficulty hard should raise hazard risk")
	}

	flagDifficulty = "brutal"
	if _, err := loadLevel(nil); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestLoadLevelConfigOverridesPreset(t *testing.T) {
	withFlags(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("id: custom\ntitle: Custom\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	flagPreset = "no-such-preset"
	flagConfig = path
	flagDifficulty = ""

	lvl, err := loadLevel(nil)
	if err != nil {
		t.Fatalf("loadLevel() failed: %v", err)
	}
	if lvl.ID != "custom" {
		t.Errorf("ID = %q, expected custom", lvl.ID)
	}
}

func TestLoadLevelUnknownPreset(t *testing.T) {
	withFlags(t)
	flagConfig = ""
	flagDifficulty = ""

	if _, err := loadLevel([]string{"nope"}); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestSetupAndSeed(t *testing.T) {
	withFlags(t)
	flagPreset = "tutorial"
	flagConfig = ""
	flagDifficulty = ""
	flagLogLevel = "error"

	r, logger, err := setup(nil)
	if err != nil || r == nil || logger == nil {
		t.Fatalf("setup() = %v, %v, %v", r, logger, err)
	}

	flagSeed = 42
	if resolveSeed() != 42 {
		t.Error("explicit --seed should be used")
	}

	flagLogLevel = "loud"
	if _, _, err := setup(nil); err == nil {
		t.Error("invalid log level should fail")
	}
}

func TestPort(t *testing.T) {
	tests := map[string]string{
		":23235":         "23235",
		"localhost:2222": "2222",
		"nonsense":       "nonsense",
	}
	for addr, want := range tests {
		if got := port(addr); got != want {
			t.Errorf("port(%q) = %q, expected %q", addr, got, want)
		}
	}
}

func TestShowRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	id, err := store.SaveRun(storage.RunRecord{Preset: "gauntlet", Seed: 99, Cause: "hazard", Score: 300, Gems: 4, GemsCollected: 3})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := showRun(&buf, store, id); err != nil {
		t.Fatalf("showRun() failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"gauntlet", "result      hazard", "gems        3/4", "play gauntlet --seed 99"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if err := showRun(&buf, store, id+1); err == nil || !strings.Contains(err.Error(), "no run with ID") {
		t.Errorf("missing run: err = %v", err)
	}
}

func TestPrintHistory(t *testing.T) {
	runs := []storage.RunRecord{
		{ID: 7, Seed: 1, Score: 50, Won: true},
		{ID: 9, Seed: 2, Score: 10, Cause: "fell"},
	}

	var ranked, chrono bytes.Buffer
	printHistory(&ranked, "Classic", "classic", runs, false)
	printHistory(&chrono, "Classic", "classic", runs, true)

	if !strings.Contains(ranked.String(), "Rank") || !strings.Contains(ranked.String(), "  2     10") {
		t.Errorf("ranked table should number rows:\n%s", ranked.String())
	}
	if !strings.Contains(chrono.String(), "ID") || !strings.Contains(chrono.String(), "  9     10") {
		t.Errorf("chronological table should show run IDs:\n%s", chrono.String())
	}
	if !strings.Contains(chrono.String(), "fell") {
		t.Errorf("loss cause missing:\n%s", chrono.String())
	}

	var empty bytes.Buffer
	printHistory(&empty, "Classic", "classic", nil, true)
	if !strings.Contains(empty.String(), "No runs recorded yet.") {
		t.Errorf("empty history: %q", empty.String())
	}
}
