package ldtk

// Document is the root of a parsed LDtk project file. It is read-only once
// decoded; every system that needs it shares the same pointer.
type Document struct {
	IID         string `json:"iid"`
	JSONVersion string `json:"jsonVersion"`
	BgColor     string `json:"bgColor"`

	// Levels holds the root levels of single-world projects. Multi-world
	// projects leave it empty and use Worlds instead.
	Levels []Level `json:"levels"`
	Worlds []World `json:"worlds"`
	Defs   Defs    `json:"defs"`
}

// Defs holds the project-wide definitions.
type Defs struct {
	Tilesets []TilesetDefinition `json:"tilesets"`
}

// World is a named, ordered collection of levels.
type World struct {
	IID             string  `json:"iid"`
	Identifier      string  `json:"identifier"`
	WorldGridWidth  int     `json:"worldGridWidth"`
	WorldGridHeight int     `json:"worldGridHeight"`
	WorldLayout     *string `json:"worldLayout"`
	Levels          []Level `json:"levels"`
}

// UnsetWorldCoord marks a level world coordinate that was never placed.
const UnsetWorldCoord = -1

// Level is one level of a world. LayerInstances is stored back-to-front and
// is nil when the level's layers live in a separate file.
type Level struct {
	IID            string          `json:"iid"`
	Identifier     string          `json:"identifier"`
	UID            int             `json:"uid"`
	WorldX         int             `json:"worldX"`
	WorldY         int             `json:"worldY"`
	WorldDepth     int             `json:"worldDepth"`
	PxWid          int             `json:"pxWid"`
	PxHei          int             `json:"pxHei"`
	BgColor        string          `json:"__bgColor"`
	LevelBgColor   *string         `json:"bgColor"`
	LayerInstances []LayerInstance `json:"layerInstances"`
}

// LayerInstance is one layer of a level.
type LayerInstance struct {
	IID                string         `json:"iid"`
	Identifier         string         `json:"__identifier"`
	Type               LayerType      `json:"__type"`
	CWid               int            `json:"__cWid"`
	CHei               int            `json:"__cHei"`
	GridSize           int            `json:"__gridSize"`
	Opacity            float64        `json:"__opacity"`
	PxTotalOffsetX     int            `json:"__pxTotalOffsetX"`
	PxTotalOffsetY     int            `json:"__pxTotalOffsetY"`
	TilesetDefUID      *int           `json:"__tilesetDefUid"`
	TilesetRelPath     *string        `json:"__tilesetRelPath"`
	LayerDefUID        int            `json:"layerDefUid"`
	LevelID            int            `json:"levelId"`
	OverrideTilesetUID *int           `json:"overrideTilesetUid"`
	PxOffsetX          int            `json:"pxOffsetX"`
	PxOffsetY          int            `json:"pxOffsetY"`
	Visible            bool           `json:"visible"`
	GridTiles          []TileInstance `json:"gridTiles"`
	AutoLayerTiles     []TileInstance `json:"autoLayerTiles"`
	IntGridCsv         []int          `json:"intGridCsv"`
}

// TilesetUID returns the tileset the layer draws from. A per-layer override
// takes priority over the layer definition's tileset.
func (l *LayerInstance) TilesetUID() (int, bool) {
	if l == nil {
		return 0, false
	}
	if l.OverrideTilesetUID != nil {
		return *l.OverrideTilesetUID, true
	}
	if l.TilesetDefUID != nil {
		return *l.TilesetDefUID, true
	}
	return 0, false
}

// Flip bits stored in TileInstance.F.
const (
	FlipXBit = 1 << 0
	FlipYBit = 1 << 1
)

// TileInstance is one placed tile. Px is in layer pixels, not grid cells.
type TileInstance struct {
	Px  [2]int  `json:"px"`
	Src [2]int  `json:"src"`
	F   int     `json:"f"`
	T   int     `json:"t"`
	A   float64 `json:"a"`
	D   []int   `json:"d"`
}

// FlipX reports whether the tile is mirrored horizontally.
func (t *TileInstance) FlipX() bool { return t.F&FlipXBit != 0 }

// FlipY reports whether the tile is mirrored vertically.
func (t *TileInstance) FlipY() bool { return t.F&FlipYBit != 0 }

// TilesetDefinition describes a tileset image and how it is cut into tiles.
type TilesetDefinition struct {
	UID          int      `json:"uid"`
	Identifier   string   `json:"identifier"`
	RelPath      *string  `json:"relPath"`
	TileGridSize int      `json:"tileGridSize"`
	Spacing      int      `json:"spacing"`
	Padding      int      `json:"padding"`
	CWid         int      `json:"__cWid"`
	CHei         int      `json:"__cHei"`
	PxWid        int      `json:"pxWid"`
	PxHei        int      `json:"pxHei"`
	Tags         []string `json:"tags"`
}
