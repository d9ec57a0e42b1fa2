package entity

import (
	"fmt"

	"github.com/milk9111/hopper/ecs"
	"github.com/milk9111/hopper/ecs/component"
)

func NewCamera(w *ecs.World, centerOffset, viewWidth float64) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("camera: world is nil")
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		CenterOffset: centerOffset,
		ViewWidth:    viewWidth,
		MaxX:         viewWidth,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
