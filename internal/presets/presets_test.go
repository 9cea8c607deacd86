package presets

import (
	"testing"

	"github.com/vovakirdan/platformgen/internal/config"
	"github.com/vovakirdan/platformgen/internal/registry"
)

func TestBuiltinsRegistered(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	for _, id := range config.BuiltinIDs() {
		if !registry.Exists(id) {
			t.Errorf("builtin %q not registered", id)
			continue
		}

		p, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if p.ID() != id {
			t.Errorf("ID() = %q, expected %q", p.ID(), id)
		}
		if p.Title() == id {
			t.Errorf("preset %q should carry the title from its YAML", id)
		}

		lvl, err := p.Level()
		if err != nil {
			t.Fatalf("Level(%q) failed: %v", id, err)
		}
		if _, err := lvl.Generator(); err != nil {
			t.Errorf("preset %q does not build a generator: %v", id, err)
		}
	}
}

func TestBuiltinTitles(t *testing.T) {
	want := map[string]string{
		"classic":  "Classic Climb",
		"tutorial": "First Steps",
		"gauntlet": "The Gauntlet",
	}
	for _, info := range registry.List() {
		if title, ok := want[info.ID]; ok && info.Title != title {
			t.Errorf("preset %s title = %q, expected %q", info.ID, info.Title, title)
		}
	}
}
