package component

// MusicRequest is a one-shot entity asking the music system to switch
// tracks. The music system destroys the entity once handled. An empty Track
// stops playback.
type MusicRequest struct {
	Track string
}

var MusicRequestComponent = NewComponent[MusicRequest]()
