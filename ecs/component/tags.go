package component

// Player tags the player entity.
type Player struct{}

var PlayerComponent = NewComponent[Player]()

// Actor tags a scripted non-player character.
type Actor struct{}

var ActorComponent = NewComponent[Actor]()

// Blocking marks an entity whose tile is impassable to movers.
type Blocking struct{}

var BlockingComponent = NewComponent[Blocking]()
