package component

// Transform is an entity's translation relative to its parent. Z orders
// drawing: higher values are drawn later.
type Transform struct {
	X float64
	Y float64
	Z float64
}

var TransformComponent = NewComponent[Transform]()
