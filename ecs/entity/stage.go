package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

// Box describes a static rectangular obstacle centred on X, Y.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Fill   color.RGBA
	Accent color.RGBA
}

func NewBlock(w *ecs.World, b Box) (ecs.Entity, error) {
	return newObstacle(w, "block", b, &component.PhysicsBody{
		Label:  component.LabelBlock,
		Width:  b.Width,
		Height: b.Height,
		Static: true,
	})
}

func NewGround(w *ecs.World, b Box) (ecs.Entity, error) {
	return newObstacle(w, "ground", b, &component.PhysicsBody{
		Label:  component.LabelGround,
		Width:  b.Width,
		Height: b.Height,
		Static: true,
	})
}

// ObstacleFriction is the friction of stage geometry. cp multiplies the two
// shapes' coefficients, so the player's own friction sets the grip.
const ObstacleFriction = 1.0

func newObstacle(w *ecs.World, name string, b Box, body *component.PhysicsBody) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("%s: world is nil", name)
	}
	if body.Width <= 0 || body.Height <= 0 {
		if len(body.Parts) == 0 {
			return 0, fmt.Errorf("%s: invalid size %.0fx%.0f", name, body.Width, body.Height)
		}
	}

	body.Friction = ObstacleFriction

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ObstacleTagComponent.Kind(), &component.ObstacleTag{}); err != nil {
		return 0, fmt.Errorf("%s: add obstacle tag: %w", name, err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: b.X, Y: b.Y}); err != nil {
		return 0, fmt.Errorf("%s: add transform: %w", name, err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), body); err != nil {
		return 0, fmt.Errorf("%s: add physics body: %w", name, err)
	}
	if err := ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{Fill: b.Fill, Accent: b.Accent}); err != nil {
		return 0, fmt.Errorf("%s: add appearance: %w", name, err)
	}
	return e, nil
}
