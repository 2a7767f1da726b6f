package component

// Camera is the world point drawn at the screen center. While Follow is set
// the camera eases toward the middle of the spawned level; Smoothness is the
// fraction of the remaining distance covered each tick.
type Camera struct {
	X          float64
	Y          float64
	Zoom       float64
	Smoothness float64
	Follow     bool
}

var CameraComponent = NewComponent[Camera]()
