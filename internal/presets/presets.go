// Package presets registers the embedded levels with the registry.
// Import it for side effects:
//
//	import _ "github.com/vovakirdan/platformgen/internal/presets"
package presets

import (
	"github.com/vovakirdan/platformgen/internal/config"
	"github.com/vovakirdan/platformgen/internal/registry"
)

// Builtin is a preset backed by an embedded level that users may override
// under ~/.platformgen/levels or ./levels.
type Builtin struct {
	id    string
	title string
}

func (b *Builtin) ID() string    { return b.id }
func (b *Builtin) Title() string { return b.title }

// Level loads the level through the config search path.
func (b *Builtin) Level() (config.Level, error) {
	return config.Load(b.id, "")
}

func init() {
	for _, id := range config.BuiltinIDs() {
		title := id
		if lvl, err := config.Parse(config.GetDefaultYAML(id)); err == nil && lvl.Title != "" {
			title = lvl.Title
		}
		b := &Builtin{id: id, title: title}
		registry.Register(id, func() registry.Preset { return b })
	}
}
