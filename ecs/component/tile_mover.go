package component

// TileMover drives grid-locked movement. Want is the direction requested
// this tick (input or script); Moving is the step in progress. The logical
// grid position commits the moment a step is accepted, then the transform
// interpolates from From's tile to the destination tile over StepTicks.
type TileMover struct {
	Want   Direction
	Moving Direction
	Facing Direction

	StepTicks int
	Timer     int

	// From is the tile the current step started on. Steps always start on
	// a tile corner, so the visual start position is From.PixelTopLeft().
	From WorldGridCoords
}

var TileMoverComponent = NewComponent[TileMover]()
