package game

import (
	"fmt"
	"image/color"

	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/ecs/entity"
	"github.com/milk9111/hopper/levels"
	"github.com/milk9111/hopper/prefabs"
)

var (
	defaultBlockColor  = color.RGBA{R: 0x8d, G: 0x99, B: 0xae, A: 0xff}
	defaultGroundColor = color.RGBA{R: 0x4f, G: 0x6d, B: 0x7a, A: 0xff}
	defaultSpikeBase   = color.RGBA{R: 0x5c, G: 0x63, B: 0x70, A: 0xff}
	defaultSpikeTip    = color.RGBA{R: 0xc9, G: 0xcc, B: 0xd1, A: 0xff}
)

// Stage holds the static obstacle layout for one level.
type Stage struct {
	level *levels.Level
}

// NewStage uses the built-in layout when lvl is nil.
func NewStage(lvl *levels.Level) *Stage {
	if lvl == nil {
		lvl = levels.Default()
	}
	return &Stage{level: lvl}
}

func (s *Stage) Name() string {
	return s.level.Name
}

// Populate adds a fresh copy of every obstacle to w. Calling it twice adds a
// second independent set.
func (s *Stage) Populate(w *ecs.World) ([]ecs.Entity, error) {
	out := make([]ecs.Entity, 0, len(s.level.Entities))
	for i, spec := range s.level.Entities {
		e, err := buildObstacle(w, spec)
		if err != nil {
			return out, fmt.Errorf("stage: entity %d (%s): %w", i, spec.Type, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func buildObstacle(w *ecs.World, spec levels.Entity) (ecs.Entity, error) {
	label, err := component.ParseLabel(spec.Type)
	if err != nil {
		return 0, err
	}

	box := entity.Box{X: spec.X, Y: spec.Y}
	switch label {
	case component.LabelBlock:
		box.Width = spec.Float("width", 20)
		box.Height = spec.Float("height", 20)
		box.Fill = propColor(spec, "color", defaultBlockColor)
		return entity.NewBlock(w, box)
	case component.LabelGround:
		box.Width = spec.Float("width", 1000)
		box.Height = spec.Float("height", 30)
		box.Fill = propColor(spec, "color", defaultGroundColor)
		return entity.NewGround(w, box)
	case component.LabelSpikeBlock:
		box.Width = spec.Float("width", 40)
		box.Height = spec.Float("height", 40)
		box.Fill = propColor(spec, "color", defaultSpikeBase)
		box.Accent = propColor(spec, "spike_color", defaultSpikeTip)
		return entity.NewSpikeBlock(w, box)
	case component.LabelPlayer, component.LabelSpike, component.LabelNone:
		return 0, fmt.Errorf("%s is not a stage obstacle", label)
	}
	return 0, fmt.Errorf("unhandled label %s", label)
}

func propColor(spec levels.Entity, key string, fallback color.RGBA) color.RGBA {
	hex := spec.Text(key, "")
	if hex == "" {
		return fallback
	}
	c, err := prefabs.ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
