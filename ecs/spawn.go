package ecs

import "github.com/milk9111/ldtkscene/ecs/component"

// Bundle attaches one component to an entity.
type Bundle func(w *World, e Entity) error

// With builds a Bundle adding value under kind.
func With[T any](kind component.ComponentKind[T], value T) Bundle {
	return func(w *World, e Entity) error {
		return Add(w, e, kind, &value)
	}
}

// Spawn creates an entity carrying every bundle. If any bundle fails the
// entity is destroyed again and the error returned.
func Spawn(w *World, bundles ...Bundle) (Entity, error) {
	e := w.CreateEntity()
	for _, b := range bundles {
		if b == nil {
			continue
		}
		if err := b(w, e); err != nil {
			DestroyEntity(w, e)
			return 0, err
		}
	}
	return e, nil
}

// SpawnChild spawns an entity and attaches it under parent.
func SpawnChild(w *World, parent Entity, bundles ...Bundle) (Entity, error) {
	e, err := Spawn(w, bundles...)
	if err != nil {
		return 0, err
	}
	if err := AddChild(w, parent, e); err != nil {
		DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}
