package ldtk

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intGridLayer(gridSize, cWid, cHei int, tiles ...TileInstance) *LayerInstance {
	return &LayerInstance{
		Identifier: "Ground",
		Type:       LayerIntGrid,
		GridSize:   gridSize,
		CWid:       cWid,
		CHei:       cHei,
		Opacity:    1,
		Visible:    true,
		GridTiles:  tiles,
	}
}

func tileAt(x, y, t int) TileInstance {
	return TileInstance{Px: [2]int{x, y}, T: t, A: 1}
}

func TestStackTilesWorkedExample(t *testing.T) {
	layer := intGridLayer(16, 4, 4, tileAt(0, 0, 1), tileAt(0, 0, 2), tileAt(16, 16, 3))

	sub := StackTiles(TilePool(layer))
	require.Len(t, sub, 2)

	require.Len(t, sub[0], 2)
	assert.Equal(t, 1, sub[0][0].Tile.T)
	assert.Equal(t, GridCoord{0, 0}, sub[0][0].Coord)
	assert.Equal(t, 3, sub[0][1].Tile.T)
	assert.Equal(t, GridCoord{1, 1}, sub[0][1].Coord)

	require.Len(t, sub[1], 1)
	assert.Equal(t, 2, sub[1][0].Tile.T)

	assert.Equal(t, GridCoord{0, 3}, sub[0][0].Coord.RenderCoord(layer.CHei))
	assert.Equal(t, GridCoord{1, 2}, sub[0][1].Coord.RenderCoord(layer.CHei))
	assert.Equal(t, GridCoord{0, 3}, sub[1][0].Coord.RenderCoord(layer.CHei))
}

func TestStackTilesNoDuplicatesKeepsOrder(t *testing.T) {
	layer := intGridLayer(8, 4, 4, tileAt(24, 0, 0), tileAt(0, 8, 1), tileAt(8, 8, 2), tileAt(16, 24, 3))

	pool := TilePool(layer)
	sub := StackTiles(pool)
	require.Len(t, sub, 1)
	assert.Equal(t, pool, sub[0])
}

func TestStackTilesEmptyPool(t *testing.T) {
	assert.Empty(t, StackTiles(nil))
	assert.Empty(t, StackTiles(TilePool(intGridLayer(16, 4, 4))))
}

func TestStackTilesProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		const grid, w, h = 16, 5, 4
		n := rng.Intn(40)
		tiles := make([]TileInstance, n)
		for j := range tiles {
			tiles[j] = tileAt(rng.Intn(w)*grid, rng.Intn(h)*grid, j)
		}
		pool := TilePool(intGridLayer(grid, w, h, tiles...))

		multiplicity := make(map[GridCoord]int)
		maxMult := 0
		for _, p := range pool {
			multiplicity[p.Coord]++
			maxMult = max(maxMult, multiplicity[p.Coord])
		}

		sub := StackTiles(pool)
		require.Len(t, sub, maxMult)

		total := 0
		for k, layer := range sub {
			total += len(layer)
			seen := make(map[GridCoord]bool)
			lastIndex := -1
			for _, p := range layer {
				require.False(t, seen[p.Coord], "sub-layer %d repeats %v", k, p.Coord)
				seen[p.Coord] = true
				require.Greater(t, p.Tile.T, lastIndex, "sub-layer %d out of pool order", k)
				lastIndex = p.Tile.T
			}
		}
		require.Equal(t, len(pool), total)
	}
}

func TestStackTilesDeepCollision(t *testing.T) {
	tiles := make([]TileInstance, 20000)
	for i := range tiles {
		tiles[i] = tileAt(0, 0, i)
	}
	sub := StackTiles(TilePool(intGridLayer(16, 1, 1, tiles...)))
	require.Len(t, sub, len(tiles))
	for i, layer := range sub {
		require.Len(t, layer, 1)
		require.Equal(t, i, layer[0].Tile.T)
		require.LessOrEqual(t, cap(layer), 2, "sub-layer %d over-allocated", i)
	}
}

func TestStackTilesMixedDepths(t *testing.T) {
	pool := TilePool(intGridLayer(16, 3, 1,
		tileAt(0, 0, 0), tileAt(16, 0, 1), tileAt(0, 0, 2), tileAt(32, 0, 3), tileAt(0, 0, 4), tileAt(16, 0, 5),
	))
	sub := StackTiles(pool)
	require.Len(t, sub, 3)
	indices := func(layer []PlacedTile) []int {
		var out []int
		for _, p := range layer {
			out = append(out, p.Tile.T)
		}
		return out
	}
	assert.Equal(t, []int{0, 1, 3}, indices(sub[0]))
	assert.Equal(t, []int{2, 5}, indices(sub[1]))
	assert.Equal(t, []int{4}, indices(sub[2]))
}

func TestTilePoolFiltersOutOfBounds(t *testing.T) {
	layer := intGridLayer(16, 2, 2, tileAt(0, 0, 0), tileAt(32, 0, 1), tileAt(0, 32, 2), tileAt(-16, 0, 3))
	layer.AutoLayerTiles = []TileInstance{tileAt(16, 16, 4), tileAt(0, 0, 5)}

	pool := TilePool(layer)
	var got []int
	for _, p := range pool {
		got = append(got, p.Tile.T)
	}
	assert.Equal(t, []int{0, 4, 5}, got, "grid tiles come before auto-layer tiles")
}

func TestTilePoolZeroGridSize(t *testing.T) {
	assert.Nil(t, TilePool(intGridLayer(0, 2, 2, tileAt(0, 0, 0))))
	assert.Nil(t, TilePool(nil))
}

func TestPlaceTile(t *testing.T) {
	layer := intGridLayer(16, 4, 3)
	layer.PxTotalOffsetX = 4
	layer.PxTotalOffsetY = -2
	layer.Opacity = 0.5
	tile := TileInstance{Px: [2]int{32, 16}, T: 9, A: 0.8, F: FlipXBit | FlipYBit}

	got := PlaceTile(layer, PlacedTile{Coord: GridCoordOf(tile.Px, 16), Tile: &tile}, 3)
	assert.Equal(t, 36.0, got.X)
	assert.Equal(t, -18.0, got.Y)
	assert.Equal(t, 3.0, got.Z)
	assert.Equal(t, 9, got.Index)
	assert.InDelta(t, 0.4, got.Alpha, 1e-9)
	assert.True(t, got.FlipX)
	assert.True(t, got.FlipY)
	assert.Equal(t, GridCoord{2, 1}, got.Coord)
	assert.Equal(t, GridCoord{2, 1}, got.RenderCoord)
}

func TestRenderCoordRoundTrip(t *testing.T) {
	for h := 1; h <= 6; h++ {
		for r := 0; r < h; r++ {
			c := GridCoord{X: 2, Y: r}
			flipped := c.RenderCoord(h)
			assert.Equal(t, h-r-1, flipped.Y)
			assert.Equal(t, c, flipped.RenderCoord(h))
		}
	}
}

func TestGridCoordOf(t *testing.T) {
	tests := []struct {
		name string
		px   [2]int
		grid int
		want GridCoord
	}{
		{"origin", [2]int{0, 0}, 16, GridCoord{0, 0}},
		{"cell aligned", [2]int{32, 48}, 16, GridCoord{2, 3}},
		{"inside cell", [2]int{31, 47}, 16, GridCoord{1, 2}},
		{"zero grid", [2]int{32, 48}, 0, GridCoord{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GridCoordOf(tt.px, tt.grid))
		})
	}
}
