package component

// Camera is the singleton view offset in world pixel space. X/Y are the
// top-left corner of the visible region.
type Camera struct {
	X float64
	Y float64

	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
