package ldtk

// GridCoord is a cell position in whole grid units.
type GridCoord struct {
	X int
	Y int
}

// GridCoordOf converts a tile's pixel position to a grid cell in document
// convention: origin top-left, y growing downward.
func GridCoordOf(px [2]int, gridSize int) GridCoord {
	if gridSize <= 0 {
		return GridCoord{}
	}
	return GridCoord{X: px[0] / gridSize, Y: px[1] / gridSize}
}

// RenderCoord flips the row so y grows upward in a grid height rows tall.
// Applying it twice returns the original coordinate.
func (c GridCoord) RenderCoord(height int) GridCoord {
	return GridCoord{X: c.X, Y: height - c.Y - 1}
}

// InBounds reports whether c lies within [0,width) x [0,height).
func (c GridCoord) InBounds(width, height int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < width && c.Y < height
}
