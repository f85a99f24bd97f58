package component

// Animation plays a contiguous frame range from a single-row sprite sheet.
type Animation struct {
	FrameW int
	FrameH int

	First int
	Last  int

	Frame         int
	Timer         int
	TicksPerFrame int
	Playing       bool
}

var AnimationComponent = NewComponent[Animation]()

// FrameRange is a [First, Last] span of sheet frames.
type FrameRange struct {
	First int
	Last  int
}

// WalkFrames maps facings to their walk cycle frame ranges.
type WalkFrames struct {
	Ranges map[Direction]FrameRange
}

var WalkFramesComponent = NewComponent[WalkFrames]()
