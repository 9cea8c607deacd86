package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/platformgen/internal/config"
)

type stubPreset struct {
	id    string
	title string
	err   error
}

func (p stubPreset) ID() string    { return p.id }
func (p stubPreset) Title() string { return p.title }

func (p stubPreset) Level() (config.Level, error) {
	if p.err != nil {
		return config.Level{}, p.err
	}
	lvl := config.DefaultLevel()
	lvl.ID = p.id
	lvl.Title = p.title
	return lvl, nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-alpha", func() Preset { return stubPreset{id: "test-alpha", title: "Alpha"} })

	if !Exists("test-alpha") {
		t.Fatal("registered preset should exist")
	}

	p, err := Create("test-alpha")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if p.Title() != "Alpha" {
		t.Errorf("Title() = %q, expected Alpha", p.Title())
	}

	lvl, err := Level("test-alpha")
	if err != nil {
		t.Fatalf("Level() failed: %v", err)
	}
	if lvl.ID != "test-alpha" {
		t.Errorf("level ID = %q", lvl.ID)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func() Preset { return stubPreset{id: "test-dup", title: "Dup"} }
	Register("test-dup", f)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", f)
}

func TestListSorted(t *testing.T) {
	Register("test-zeta", func() Preset { return stubPreset{id: "test-zeta", title: "Zeta"} })
	Register("test-beta", func() Preset { return stubPreset{id: "test-beta", title: "Beta"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	found := false
	for _, info := range list {
		if info.ID == "test-beta" {
			found = info.Title == "Beta"
		}
	}
	if !found {
		t.Error("List() should include test-beta with its title")
	}
}

func TestUnknownPreset(t *testing.T) {
	if Exists("test-missing") {
		t.Error("unregistered preset should not exist")
	}
	if _, err := Create("test-missing"); err == nil {
		t.Error("Create() of unknown preset should fail")
	}
	if _, err := Level("test-missing"); err == nil {
		t.Error("Level() of unknown preset should fail")
	}
}

func TestLevelError(t *testing.T) {
	boom := errors.New("boom")
	Register("test-broken", func() Preset { return stubPreset{id: "test-broken", title: "Broken", err: boom} })

	if _, err := Level("test-broken"); !errors.Is(err, boom) {
		t.Errorf("Level() error = %v, expected boom", err)
	}
}
