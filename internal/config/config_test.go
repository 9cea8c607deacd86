package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/platformgen/internal/core"
)

func TestBuiltinLevelsLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	for _, id := range BuiltinIDs() {
		t.Run(id, func(t *testing.T) {
			lvl, err := Load(id, "")
			if err != nil {
				t.Fatalf("Load(%q) failed: %v", id, err)
			}
			if lvl.ID != id {
				t.Errorf("ID = %q, expected %q", lvl.ID, id)
			}
			if lvl.Title == "" {
				t.Error("builtin level should have a title")
			}
			if _, err := lvl.Generator(); err != nil {
				t.Errorf("builtin level %s is not a valid generator config: %v", id, err)
			}
		})
	}
}

func TestClassicMatchesDefaultLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	lvl, err := Load("", "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	want := DefaultLevel()
	if lvl.Generation != want.Generation {
		t.Errorf("classic generation = %+v, expected %+v", lvl.Generation, want.Generation)
	}
	if len(lvl.Catalog.Platforms) != len(want.Catalog.Platforms) {
		t.Errorf("classic has %d platforms, expected %d", len(lvl.Catalog.Platforms), len(want.Catalog.Platforms))
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
generation:
  min_platforms: 3
  max_platforms: 4
catalog:
  platforms:
    - id: disc
      footprint: [9, 2, 9]
  gems:
    - id: coin
`)
	lvl, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if lvl.Generation.MinPlatforms != 3 || lvl.Generation.MaxPlatforms != 4 {
		t.Errorf("platform bounds not overridden: %+v", lvl.Generation)
	}
	if lvl.Generation.MaxOffset != DefaultLevel().Generation.MaxOffset {
		t.Error("omitted max_offset should keep its default")
	}

	cat, err := lvl.ToCatalog()
	if err != nil {
		t.Fatalf("ToCatalog() failed: %v", err)
	}
	if len(cat.Platforms) != 1 || cat.Platforms[0].Footprint != core.V(9, 2, 9) {
		t.Errorf("platforms = %+v", cat.Platforms)
	}
	if cat.Gems[0].Value != 100 {
		t.Errorf("gem without value should default to 100, got %d", cat.Gems[0].Value)
	}
	if len(cat.Hazards) != 1 {
		t.Errorf("omitted hazards should keep the default list, got %d", len(cat.Hazards))
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("generation:\n  hazard_rsk: 0.3\n"))
	if err == nil {
		t.Error("misspelled field should be rejected")
	}
}

func TestParseEmptyDocument(t *testing.T) {
	lvl, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) failed: %v", err)
	}
	if lvl.Generation != DefaultLevel().Generation {
		t.Error("empty document should yield the default level")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.yaml")
	content := "id: mine\ntitle: Mine\nstart: [1, 2, 3]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	lvl, err := Load("ignored", path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if lvl.ID != "mine" {
		t.Errorf("ID = %q, expected mine", lvl.ID)
	}

	cfg, err := lvl.ToLayout()
	if err != nil {
		t.Fatalf("ToLayout() failed: %v", err)
	}
	if cfg.StartPosition != core.V(1, 2, 3) {
		t.Errorf("StartPosition = %v", cfg.StartPosition)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load("", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("generation: [not, a, map]\n"), 0o644)
	if _, err := Load("", path); err == nil {
		t.Error("malformed custom file should fail")
	}
}

func TestLoadUserDirectoryOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".platformgen", "levels")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "generation:\n  min_platforms: 2\n  max_platforms: 2\n"
	if err := os.WriteFile(filepath.Join(dir, "tutorial.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	lvl, err := Load("tutorial", "")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if lvl.ID != "tutorial" {
		t.Errorf("ID = %q, expected tutorial", lvl.ID)
	}
	if lvl.Generation.MaxPlatforms != 2 {
		t.Errorf("user override not applied: %+v", lvl.Generation)
	}
}

func TestLoadUnknownLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := Load("no-such-level", ""); err == nil {
		t.Error("unknown level should fail")
	}
}

func TestTripleLength(t *testing.T) {
	if _, err := (Triple{1, 2}).Vec(); err == nil {
		t.Error("two-component triple should fail")
	}
	v, err := Triple(nil).Vec()
	if err != nil || v != (core.Vec3{}) {
		t.Errorf("empty triple = %v, %v", v, err)
	}

	lvl := DefaultLevel()
	lvl.Catalog.Platforms[0].Footprint = Triple{1}
	if _, err := lvl.ToCatalog(); err == nil {
		t.Error("bad footprint should fail ToCatalog()")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultLevel())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	lvl, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if lvl.Generation != DefaultLevel().Generation {
		t.Error("generation section changed across marshal")
	}
}

func TestDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
		want    DifficultyPreset
	}{
		{"", false, DifficultyNormal},
		{"normal", false, DifficultyNormal},
		{"easy", false, DifficultyEasy},
		{"hard", false, DifficultyHard},
		{"nightmare", true, ""},
	}
	for _, tc := range tests {
		got, err := ParseDifficulty(tc.name)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.name, got, tc.want)
		}
	}
}

func TestApplyDifficulty(t *testing.T) {
	base := DefaultLevel()

	easy := DefaultLevel()
	ApplyDifficulty(&easy, DifficultyEasy)
	if easy.Generation.HazardRisk >= base.Generation.HazardRisk {
		t.Error("easy should lower hazard risk")
	}
	if easy.Generation.GemOdds <= base.Generation.GemOdds {
		t.Error("easy should raise gem odds")
	}

	hard := DefaultLevel()
	ApplyDifficulty(&hard, DifficultyHard)
	if hard.Generation.HazardRisk <= base.Generation.HazardRisk {
		t.Error("hard should raise hazard risk")
	}
	if hard.Agent.FallOdds <= base.Agent.FallOdds {
		t.Error("hard should make the agent clumsier")
	}

	normal := DefaultLevel()
	ApplyDifficulty(&normal, DifficultyNormal)
	if normal.Generation != base.Generation {
		t.Error("normal should not change the level")
	}

	// Odds stay within [0, 1] after repeated hardening.
	for i := 0; i < 10; i++ {
		ApplyDifficulty(&hard, DifficultyHard)
	}
	if hard.Generation.HazardRisk > 1 || hard.Generation.GemOdds < 0 {
		t.Errorf("odds escaped [0, 1]: %+v", hard.Generation)
	}
}
