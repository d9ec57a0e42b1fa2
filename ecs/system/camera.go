package system

import (
	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

type CameraSystem struct {
	camEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update scrolls the view so the player stays at the camera's centre offset
// once it has walked past it, and pins the view to the origin otherwise.
func (cs *CameraSystem) Update(w *ecs.World) {
	if !ecs.IsAlive(w, cs.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraTagComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	cam.MinX = FollowX(target.X, cam.CenterOffset)
	cam.MaxX = cam.MinX + cam.ViewWidth

	if t, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind()); ok {
		t.X = cam.MinX
	}
}

// FollowX returns the left edge of the view for a target at x.
func FollowX(x, centerOffset float64) float64 {
	if x > centerOffset {
		return x - centerOffset
	}
	return 0
}
