package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is a stage layout: a list of typed entities positioned in world space.
type Level struct {
	Name     string   `json:"name"`
	Entities []Entity `json:"entities"`
}

// Entity is one placed object. X/Y is the anchor the entity type interprets
// (centre for boxes, top edge of the base for spike blocks).
type Entity struct {
	Type  string                 `json:"type"`
	X     float64                `json:"x"`
	Y     float64                `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// Float returns a numeric prop or fallback when missing or not a number.
func (e Entity) Float(key string, fallback float64) float64 {
	v, ok := e.Props[key]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return fallback
}

// Text returns a string prop or fallback.
func (e Entity) Text(key, fallback string) string {
	if s, ok := e.Props[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// Load reads a level by name, preferring levels/<name> on disk over the
// embedded copy so edits can be picked up without rebuilding.
func Load(name string) (*Level, error) {
	clean := cleanLevelName(name)
	data, err := os.ReadFile(filepath.Join("levels", clean))
	if err != nil {
		data, err = LevelsFS.ReadFile(clean)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", clean, err)
		}
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", clean, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(clean, ".json")
	}
	return &lvl, nil
}

// Default is the built-in stage used when no level file can be read.
func Default() *Level {
	return &Level{
		Name: "default",
		Entities: []Entity{
			{Type: "block", X: 400, Y: 500, Props: map[string]interface{}{"width": 20.0, "height": 20.0}},
			{Type: "ground", X: 155, Y: 600, Props: map[string]interface{}{"width": 1000.0, "height": 30.0}},
			{Type: "spikeBlock", X: 600, Y: 500, Props: map[string]interface{}{"width": 40.0, "height": 40.0}},
		},
	}
}

func cleanLevelName(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	if !strings.HasSuffix(s, ".json") {
		s += ".json"
	}
	return s
}
