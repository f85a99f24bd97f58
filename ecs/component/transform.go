package component

// Transform is an entity's position in world pixel space (y grows downward,
// matching the render space).
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
