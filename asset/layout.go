package asset

import (
	"image"

	"github.com/milk9111/ldtkscene/ldtk"
)

// GridLayout describes a uniform grid of tiles inside an atlas image.
// Padding is the gap between neighbouring tiles and Offset the outer margin;
// the zero point means none.
type GridLayout struct {
	TileSize image.Point
	Columns  int
	Rows     int
	Padding  image.Point
	Offset   image.Point
}

// TilesetLayout derives the grid layout of an LDtk tileset. Spacing becomes
// inter-tile padding and the tileset padding becomes the atlas offset.
func TilesetLayout(def *ldtk.TilesetDefinition) GridLayout {
	g := GridLayout{
		TileSize: image.Pt(def.TileGridSize, def.TileGridSize),
		Columns:  def.CWid,
		Rows:     def.CHei,
	}
	if def.Spacing != 0 {
		g.Padding = image.Pt(def.Spacing, def.Spacing)
	}
	if def.Padding != 0 {
		g.Offset = image.Pt(def.Padding, def.Padding)
	}
	return g
}

// AtlasLayout is the list of tile regions of an atlas, indexed row-major.
type AtlasLayout struct {
	Size     image.Point
	Textures []image.Rectangle
}

// NewAtlasLayout cuts g into one rectangle per cell.
func NewAtlasLayout(g GridLayout) *AtlasLayout {
	l := &AtlasLayout{}
	if g.Columns <= 0 || g.Rows <= 0 {
		return l
	}
	l.Textures = make([]image.Rectangle, 0, g.Columns*g.Rows)
	step := g.TileSize.Add(g.Padding)
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Columns; x++ {
			origin := g.Offset.Add(image.Pt(x*step.X, y*step.Y))
			r := image.Rectangle{Min: origin, Max: origin.Add(g.TileSize)}
			l.Textures = append(l.Textures, r)
			l.Size.X = max(l.Size.X, r.Max.X)
			l.Size.Y = max(l.Size.Y, r.Max.Y)
		}
	}
	l.Size = l.Size.Add(g.Offset)
	return l
}

// Rect returns the region of tile index.
func (l *AtlasLayout) Rect(index int) (image.Rectangle, bool) {
	if l == nil || index < 0 || index >= len(l.Textures) {
		return image.Rectangle{}, false
	}
	return l.Textures[index], true
}

// Len returns the number of tiles in the layout.
func (l *AtlasLayout) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Textures)
}
