package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads a level by id.
// Search order: customPath -> ~/.platformgen/levels/<id>.yaml -> ./levels/<id>.yaml -> embedded default
func Load(id, customPath string) (Level, error) {
	if id == "" {
		id = DefaultLevelID
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Level{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		lvl, err := Parse(data)
		if err != nil {
			return Level{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return lvl, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(id + ".yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if lvl, err := Parse(data); err == nil {
				return withID(lvl, id), nil
			}
		}
	}

	// Try local levels directory
	if data, err := os.ReadFile(filepath.Join("levels", id+".yaml")); err == nil {
		if lvl, err := Parse(data); err == nil {
			return withID(lvl, id), nil
		}
	}

	// Use embedded default YAML
	data := GetDefaultYAML(id)
	if data == nil {
		return Level{}, fmt.Errorf("config: unknown level %q", id)
	}
	lvl, err := Parse(data)
	if err != nil {
		if id == DefaultLevelID {
			return DefaultLevel(), nil // Fallback to hardcoded if embed fails
		}
		return Level{}, fmt.Errorf("config: embedded level %s: %w", id, err)
	}
	return withID(lvl, id), nil
}

// Parse decodes level YAML over DefaultLevel so omitted fields keep their
// defaults. Unknown fields are rejected.
func Parse(data []byte) (Level, error) {
	lvl := DefaultLevel()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&lvl); err != nil && !errors.Is(err, io.EOF) {
		return Level{}, err
	}
	return lvl, nil
}

// Marshal encodes a level as YAML.
func Marshal(l Level) ([]byte, error) {
	return yaml.Marshal(l)
}

// withID names a level decoded without an id of its own.
func withID(l Level, id string) Level {
	if l.ID == "" || l.ID == DefaultLevelID {
		l.ID = id
	}
	return l
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformgen", "levels", filename)
}
