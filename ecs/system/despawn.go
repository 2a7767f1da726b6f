package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/ldtkscene/ecs"
	"github.com/milk9111/ldtkscene/ecs/component"
)

// DespawnAllWorlds destroys every pending or spawned world together with
// its levels, layers and tiles. It returns how many entities were destroyed.
func DespawnAllWorlds(w *ecs.World) int {
	if w == nil {
		return 0
	}
	n := 0
	for _, e := range ecs.Query(w, component.LDtkWorldComponent.Kind()) {
		n += ecs.DestroyRecursive(w, e)
	}
	return n
}

// RequestDespawnAll queues a despawn of every world for the next
// DespawnSystem run.
func RequestDespawnAll(w *ecs.World) error {
	_, err := ecs.Spawn(w, ecs.With(component.DespawnAllRequestComponent.Kind(), component.DespawnAllRequest{}))
	return err
}

// DespawnSystem consumes DespawnAllRequest entities.
type DespawnSystem struct {
	log *zap.Logger
}

func NewDespawnSystem(log *zap.Logger) *DespawnSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &DespawnSystem{log: log}
}

func (s *DespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	requests := ecs.Query(w, component.DespawnAllRequestComponent.Kind())
	if len(requests) == 0 {
		return
	}
	for _, e := range requests {
		ecs.DestroyEntity(w, e)
	}

	n := DespawnAllWorlds(w)
	s.log.Info("despawned all worlds", zap.Int("entities", n))
	w.Events().Push(ecs.Event{Type: EventWorldsDespawned, Data: n})
}
