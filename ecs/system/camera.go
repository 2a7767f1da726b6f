package system

import (
	"github.com/milk9111/ldtkscene/common"
	"github.com/milk9111/ldtkscene/ecs"
	"github.com/milk9111/ldtkscene/ecs/component"
)

const (
	DefaultCameraSmoothness float64 = 0.2
	MinCameraZoom           float64 = 0.1
	MaxCameraZoom           float64 = 16
)

// SpawnCamera creates the camera entity, following the spawned level.
func SpawnCamera(w *ecs.World) (ecs.Entity, error) {
	return ecs.Spawn(w, ecs.With(component.CameraComponent.Kind(), component.Camera{
		Zoom:       1,
		Smoothness: DefaultCameraSmoothness,
		Follow:     true,
	}))
}

// CameraSystem eases a following camera toward the center of the spawned
// level. A newly spawned level turns following back on.
type CameraSystem struct {
	level ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam.Zoom = common.Clamp(cam.Zoom, MinCameraZoom, MaxCameraZoom)

	level, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		cs.level = 0
		return
	}
	if level != cs.level {
		cs.level = level
		cam.Follow = true
	}
	if !cam.Follow {
		return
	}

	x, y, ok := LevelCenter(w, level)
	if !ok {
		return
	}
	t := common.Clamp(cam.Smoothness, 0, 1)
	if t == 0 {
		t = 1
	}
	cam.X = common.Lerp(cam.X, x, t)
	cam.Y = common.Lerp(cam.Y, y, t)
}

// LevelCenter returns the world-space middle of a spawned level.
func LevelCenter(w *ecs.World, level ecs.Entity) (float64, float64, bool) {
	bounds, ok := ecs.Get(w, level, component.LevelBoundsComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	t, ok := ecs.Get(w, level, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	return t.X + bounds.Width/2, t.Y - bounds.Height/2, true
}
