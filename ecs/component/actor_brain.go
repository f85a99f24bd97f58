package component

// ActorBrain attaches a movement script to an actor. Every ThinkTicks the
// brain system runs the script to pick the actor's next direction.
type ActorBrain struct {
	Script     string
	ThinkTicks int
	Timer      int
}

var ActorBrainComponent = NewComponent[ActorBrain]()
