package ldtk

// PlacedTile is a tile paired with its document-convention grid cell.
type PlacedTile struct {
	Coord GridCoord
	Tile  *TileInstance
}

// TilePool collects the layer's grid tiles followed by its auto-layer tiles,
// dropping any tile whose cell falls outside the layer grid.
func TilePool(layer *LayerInstance) []PlacedTile {
	if layer == nil || layer.GridSize <= 0 {
		return nil
	}
	pool := make([]PlacedTile, 0, len(layer.GridTiles)+len(layer.AutoLayerTiles))
	add := func(tiles []TileInstance) {
		for i := range tiles {
			tile := &tiles[i]
			if tile.Px[0] < 0 || tile.Px[1] < 0 {
				continue
			}
			coord := GridCoordOf(tile.Px, layer.GridSize)
			if !coord.InBounds(layer.CWid, layer.CHei) {
				continue
			}
			pool = append(pool, PlacedTile{Coord: coord, Tile: tile})
		}
	}
	add(layer.GridTiles)
	add(layer.AutoLayerTiles)
	return pool
}

// StackTiles splits a pool into sub-layers holding at most one tile per grid
// cell. The first occurrence of a cell lands in sub-layer 0, the second in
// sub-layer 1 and so on, so the number of sub-layers equals the highest
// multiplicity of any cell. Pool order is kept inside each sub-layer.
func StackTiles(pool []PlacedTile) [][]PlacedTile {
	var layers [][]PlacedTile
	seen := make(map[GridCoord]int, len(pool))
	for _, placed := range pool {
		depth := seen[placed.Coord]
		seen[placed.Coord] = depth + 1
		if depth == len(layers) {
			layers = append(layers, nil)
		}
		layers[depth] = append(layers[depth], placed)
	}
	return layers
}

// TilePlacement is where and how one stacked tile is drawn.
type TilePlacement struct {
	X, Y, Z     float64
	Index       int
	Alpha       float64
	FlipX       bool
	FlipY       bool
	Coord       GridCoord
	RenderCoord GridCoord
}

// PlaceTile positions a stacked tile of layer at depth z. The pixel y is
// negated so rows grow upward in world space; the layer's total pixel
// offset is added unchanged.
func PlaceTile(layer *LayerInstance, placed PlacedTile, z int) TilePlacement {
	tile := placed.Tile
	return TilePlacement{
		X:           float64(tile.Px[0] + layer.PxTotalOffsetX),
		Y:           float64(-tile.Px[1] + layer.PxTotalOffsetY),
		Z:           float64(z),
		Index:       tile.T,
		Alpha:       tile.A * layer.Opacity,
		FlipX:       tile.FlipX(),
		FlipY:       tile.FlipY(),
		Coord:       placed.Coord,
		RenderCoord: placed.Coord.RenderCoord(layer.CHei),
	}
}
