package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/prefabs"
)

var defaultPlayerColor = color.RGBA{R: 0xf2, G: 0xa5, B: 0x41, A: 0xff}

// DefaultPlayerSpec is used when player.yaml cannot be loaded.
func DefaultPlayerSpec() prefabs.PlayerSpec {
	return prefabs.PlayerSpec{
		Name:  "player",
		Spawn: prefabs.PointSpec{X: 300, Y: 400},
		Collider: prefabs.ColliderSpec{
			Width:         40,
			Height:        80,
			Density:       0.001,
			Friction:      0.1,
			FixedRotation: true,
		},
		MoveForce: 0.03,
		JumpForce: 0.09,
		MaxJumps:  2,
	}
}

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerFromSpec(w, *spec)
}

// NewPlayerFromSpec creates the player at its spawn point with a spent jump
// budget, so it has to land before the first jump.
func NewPlayerFromSpec(w *ecs.World, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("player: world is nil")
	}
	def := DefaultPlayerSpec()
	if spec.Collider.Width <= 0 || spec.Collider.Height <= 0 {
		spec.Collider = def.Collider
	}
	if spec.MaxJumps <= 0 {
		spec.MaxJumps = def.MaxJumps
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.Spawn.X, Y: spec.Spawn.Y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Label:         component.LabelPlayer,
		Width:         spec.Collider.Width,
		Height:        spec.Collider.Height,
		Density:       spec.Collider.Density,
		Friction:      spec.Collider.Friction,
		Elasticity:    spec.Collider.Elasticity,
		FixedRotation: spec.Collider.FixedRotation,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.ForceComponent.Kind(), &component.Force{}); err != nil {
		return 0, fmt.Errorf("player: add force: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveForce: spec.MoveForce,
		JumpForce: spec.JumpForce,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.JumpComponent.Kind(), &component.Jump{
		Used: spec.MaxJumps,
		Max:  spec.MaxJumps,
	}); err != nil {
		return 0, fmt.Errorf("player: add jump: %w", err)
	}
	if err := ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{
		Fill:        spec.Color.RGBA(defaultPlayerColor),
		RenderLayer: 10,
	}); err != nil {
		return 0, fmt.Errorf("player: add appearance: %w", err)
	}

	return e, nil
}
