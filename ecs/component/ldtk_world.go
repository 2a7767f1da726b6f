package component

import (
	"github.com/milk9111/ldtkscene/asset"
	"github.com/milk9111/ldtkscene/ldtk"
)

// WorldState tracks a pending world from selection to spawned scene.
type WorldState int

const (
	WorldAwaitingAssets WorldState = iota
	WorldReady
	WorldSpawned
	// WorldAbandoned is terminal: a tileset image failed to load.
	WorldAbandoned
)

func (s WorldState) String() string {
	switch s {
	case WorldAwaitingAssets:
		return "awaiting_assets"
	case WorldReady:
		return "ready"
	case WorldSpawned:
		return "spawned"
	case WorldAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// TilesetAssets are the resolved assets of one tileset.
type TilesetAssets struct {
	TileSize int
	Image    asset.ImageHandle
	Layout   asset.LayoutHandle
}

// LDtkWorld is the pending world created when a selection applies. The
// document it points into is read-only and shared.
type LDtkWorld struct {
	Project   asset.ProjectHandle
	Selection ldtk.Selection
	World     *ldtk.World
	Level     *ldtk.Level
	Tilesets  map[int]TilesetAssets
	State     WorldState
}

var LDtkWorldComponent = NewComponent[LDtkWorld]()
