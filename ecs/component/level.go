package component

// CurrentLevel records which level an entity is standing in. Only the player
// carries it today, but nothing assumes that.
type CurrentLevel struct {
	LevelIID string
}

var CurrentLevelComponent = NewComponent[CurrentLevel]()

// CurrentLevelLoading marks that the entity's current level has changed but
// its content has not streamed in yet.
type CurrentLevelLoading struct{}

var CurrentLevelLoadingComponent = NewComponent[CurrentLevelLoading]()

// LevelMember ties a spawned entity to the level that owns it, so the
// entity is torn down when the level streams out.
type LevelMember struct {
	LevelIID string
}

var LevelMemberComponent = NewComponent[LevelMember]()
