package system

import (
	"sort"

	"github.com/milk9111/ldtkscene/ecs"
	"github.com/milk9111/ldtkscene/ecs/component"
)

// Drawable is a sprite with its transform resolved to world space.
type Drawable struct {
	Entity ecs.Entity
	X, Y   float64
	Z      float64
	Sprite component.Sprite
}

// CollectDrawables returns every visible sprite in draw order: ascending
// world z, then entity. Transforms are summed along the parent chain and an
// entity is skipped when it or any ancestor is hidden.
func CollectDrawables(w *ecs.World) []Drawable {
	if w == nil {
		return nil
	}
	var out []Drawable
	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, s *component.Sprite, t *component.Transform) {
		x, y, z := t.X, t.Y, t.Z
		if hidden(w, e) {
			return
		}
		for p, ok := ecs.Parent(w, e); ok; p, ok = ecs.Parent(w, p) {
			if hidden(w, p) {
				return
			}
			if pt, ok := ecs.Get(w, p, component.TransformComponent.Kind()); ok {
				x += pt.X
				y += pt.Y
				z += pt.Z
			}
		}
		out = append(out, Drawable{Entity: e, X: x, Y: y, Z: z, Sprite: *s})
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Z != out[j].Z {
			return out[i].Z < out[j].Z
		}
		return uint64(out[i].Entity) < uint64(out[j].Entity)
	})
	return out
}

func hidden(w *ecs.World, e ecs.Entity) bool {
	v, ok := ecs.Get(w, e, component.VisibilityComponent.Kind())
	return ok && v.Hidden
}

// Background returns the clear color of the first spawned level that has one.
func Background(w *ecs.World) (component.LevelBackground, bool) {
	e, ok := ecs.First(w, component.LevelBackgroundComponent.Kind())
	if !ok {
		return component.LevelBackground{}, false
	}
	bg, ok := ecs.Get(w, e, component.LevelBackgroundComponent.Kind())
	if !ok {
		return component.LevelBackground{}, false
	}
	return *bg, true
}
