package component

import "github.com/milk9111/ldtkscene/ldtk"

// LDtkTile marks a spawned tile.
type LDtkTile struct{}

var LDtkTileComponent = NewComponent[LDtkTile]()

// LDtkGridCoord is a tile's cell with y growing downward, as stored in the
// document.
type LDtkGridCoord struct {
	ldtk.GridCoord
}

var LDtkGridCoordComponent = NewComponent[LDtkGridCoord]()

// RenderGridCoord is a tile's cell with y growing upward.
type RenderGridCoord struct {
	ldtk.GridCoord
}

var RenderGridCoordComponent = NewComponent[RenderGridCoord]()
