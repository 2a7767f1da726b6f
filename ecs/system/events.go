package system

import (
	"github.com/milk9111/ldtkscene/asset"
	"github.com/milk9111/ldtkscene/ecs"
	"github.com/milk9111/ldtkscene/ldtk"
)

// Event types pushed on the world's event queue.
const (
	EventLevelSelectionApplied = "ldtk.level_selection_applied"
	EventLevelSpawned          = "ldtk.level_spawned"
	EventWorldAbandoned        = "ldtk.world_abandoned"
	EventWorldsDespawned       = "ldtk.worlds_despawned"
)

// LevelSelectionApplied is the data of EventLevelSelectionApplied.
type LevelSelectionApplied struct {
	Project   ecs.Entity
	World     ecs.Entity
	Selection ldtk.Selection
	Tilesets  int
}

// LevelSpawnedEvent is the data of EventLevelSpawned.
type LevelSpawnedEvent struct {
	Project asset.ProjectHandle
	World   ecs.Entity
	Level   ecs.Entity
	IID     string
	Layers  int
	Tiles   int
}

// WorldAbandoned is the data of EventWorldAbandoned.
type WorldAbandoned struct {
	World ecs.Entity
	Image string
	Err   error
}
