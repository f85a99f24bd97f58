package component

// WarpPhase sequences a warp from trigger to arrival.
type WarpPhase int

const (
	// WarpFadeOut darkens the screen before relocating.
	WarpFadeOut WarpPhase = iota
	// WarpAwaitLoad holds the screen dark until the destination level has
	// streamed in.
	WarpAwaitLoad
	// WarpFadeIn reveals the destination.
	WarpFadeIn
)

// WarpPending is the in-flight warp state machine. Its presence on an entity
// suppresses movement intake and guards against re-triggering.
type WarpPending struct {
	TargetEntityIID string
	TargetLevelIID  string

	Phase     WarpPhase
	Timer     int
	FadeTicks int
}

var WarpPendingComponent = NewComponent[WarpPending]()
