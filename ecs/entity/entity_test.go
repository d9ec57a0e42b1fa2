package entity

import (
	"math"
	"testing"

	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
	"github.com/milk9111/hopper/ecs/system"
)

func TestNewPlayerFromEmbeddedSpec(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayer(w)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || tr.X != 300 || tr.Y != 400 {
		t.Fatalf("unexpected spawn %+v", tr)
	}
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || body.Label != component.LabelPlayer || body.Width != 40 || body.Height != 80 || body.Friction != 0.1 {
		t.Fatalf("unexpected body %+v", body)
	}
	jump, ok := ecs.Get(w, e, component.JumpComponent.Kind())
	if !ok || jump.Used != 2 || jump.Max != 2 {
		t.Fatalf("expected spent budget of 2, got %+v", jump)
	}
	if !ecs.Has(w, e, component.ForceComponent.Kind()) || !ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
		t.Fatal("player missing force or tag")
	}
}

func TestNewPlayerFromSpecDefaults(t *testing.T) {
	w := ecs.NewWorld()
	spec := DefaultPlayerSpec()
	spec.Collider.Width = 0
	spec.MaxJumps = 0

	e, err := NewPlayerFromSpec(w, spec)
	if err != nil {
		t.Fatalf("new player: %v", err)
	}
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if body.Width != 40 || body.Height != 80 {
		t.Fatalf("expected default collider, got %vx%v", body.Width, body.Height)
	}
	jump, _ := ecs.Get(w, e, component.JumpComponent.Kind())
	if jump.Max != 2 {
		t.Fatalf("expected default max jumps, got %d", jump.Max)
	}
}

func TestObstacles(t *testing.T) {
	tests := []struct {
		name  string
		build func(*ecs.World, Box) (ecs.Entity, error)
		box   Box
		label component.Label
	}{
		{"block", NewBlock, Box{X: 400, Y: 500, Width: 20, Height: 20}, component.LabelBlock},
		{"ground", NewGround, Box{X: 155, Y: 600, Width: 1000, Height: 30}, component.LabelGround},
		{"spike block", NewSpikeBlock, Box{X: 600, Y: 500, Width: 40, Height: 40}, component.LabelSpikeBlock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e, err := tt.build(w, tt.box)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
			if !ok || !body.Static || body.Label != tt.label || body.Friction != ObstacleFriction {
				t.Fatalf("unexpected body %+v", body)
			}
			if !ecs.Has(w, e, component.ObstacleTagComponent.Kind()) {
				t.Fatal("missing obstacle tag")
			}
			if ecs.Has(w, e, component.ForceComponent.Kind()) {
				t.Fatal("static obstacle should not take forces")
			}
		})
	}
}

func TestObstacleRejectsEmptyBox(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := NewBlock(w, Box{X: 1, Y: 1}); err == nil {
		t.Fatal("expected error for zero-size block")
	}
	if ecs.Count(w, component.ObstacleTagComponent.Kind()) != 0 {
		t.Fatal("no obstacle should be created on error")
	}
}

func TestSpikeBlockGeometry(t *testing.T) {
	parts := SpikeBlockParts(40, 40)
	if len(parts) != 2 {
		t.Fatalf("expected base and tip, got %d parts", len(parts))
	}
	base, tip := parts[0], parts[1]
	if base.Label != component.LabelSpikeBlock || tip.Label != component.LabelSpike {
		t.Fatalf("unexpected labels %s/%s", base.Label, tip.Label)
	}
	// Base top edge sits on the anchor.
	if top := base.OffsetY - base.Height/2; top != 0 {
		t.Fatalf("base top = %v, want 0", top)
	}
	if tip.OffsetY != -10 {
		t.Fatalf("tip centre = %v, want -10", tip.OffsetY)
	}

	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, v := range system.PolygonVertices(tip) {
		minY = math.Min(minY, v.Y)
		maxY = math.Max(maxY, v.Y)
	}
	if math.Abs(minY-(-30)) > 1e-9 {
		t.Fatalf("apex at %v, want -30", minY)
	}
	if math.Abs(maxY) > 1e-9 {
		t.Fatalf("tip base at %v, want 0", maxY)
	}
}

func TestNewCamera(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewCamera(w, 300, 1200)
	if err != nil {
		t.Fatalf("new camera: %v", err)
	}
	cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
	if !ok || cam.MinX != 0 || cam.MaxX != 1200 || cam.CenterOffset != 300 {
		t.Fatalf("unexpected camera %+v", cam)
	}
}
