package entity

import (
	"math"

	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

// SpikeBlockParts splits a width x height spike block into a box base filling
// the lower half and a triangular tip pointing up out of it. Offsets are
// relative to the anchor, which sits on the top edge of the base.
func SpikeBlockParts(width, height float64) []component.BodyPart {
	half := height / 2
	return []component.BodyPart{
		{
			Label:   component.LabelSpikeBlock,
			Shape:   component.PartBox,
			OffsetY: half / 2,
			Width:   width,
			Height:  half,
		},
		{
			Label:   component.LabelSpike,
			Shape:   component.PartPolygon,
			OffsetY: -half / 2,
			Sides:   3,
			Radius:  half,
			Angle:   math.Pi / 2,
		},
	}
}

// NewSpikeBlock creates the composite hazard anchored at (x, y). Only the tip
// is lethal; the base behaves like an inert wall.
func NewSpikeBlock(w *ecs.World, b Box) (ecs.Entity, error) {
	return newObstacle(w, "spike block", b, &component.PhysicsBody{
		Label:  component.LabelSpikeBlock,
		Parts:  SpikeBlockParts(b.Width, b.Height),
		Width:  b.Width,
		Height: b.Height,
		Static: true,
	})
}
