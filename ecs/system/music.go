package system

import (
	"go.uber.org/zap"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/overworld/assets"
	"github.com/milk9111/overworld/ecs"
	"github.com/milk9111/overworld/ecs/component"
	"github.com/milk9111/overworld/worlds"
)

// MusicSystem plays each level's background track. Level changes queue a
// track switch; one-shot MusicRequest entities let anything else (the pause
// menu, scripts) override playback. Players are decoded once and cached.
type MusicSystem struct {
	project *worlds.Project
	logger  *zap.Logger

	players map[string]*audio.Player
	current string
}

func NewMusicSystem(project *worlds.Project, logger *zap.Logger) *MusicSystem {
	return &MusicSystem{project: project, logger: logger, players: make(map[string]*audio.Player)}
}

func (s *MusicSystem) Update(w *ecs.World) {
	if s == nil {
		return
	}

	for _, evt := range w.Events().Items() {
		if evt.Type != EventLevelChanged {
			continue
		}
		changed, ok := evt.Data.(LevelChangedEvent)
		if !ok || !ecs.Has(w, changed.Entity, component.PlayerComponent) {
			continue
		}
		if lvl := s.project.LevelByIID(changed.LevelIID); lvl != nil {
			s.play(lvl.Fields.String("bgm"))
		}
	}

	var handled []ecs.Entity
	ecs.ForEach(w, component.MusicRequestComponent, func(e ecs.Entity, req *component.MusicRequest) {
		s.play(req.Track)
		handled = append(handled, e)
	})
	for _, e := range handled {
		w.DestroyEntity(e)
	}
}

func (s *MusicSystem) play(track string) {
	if track == s.current {
		return
	}
	if p := s.players[s.current]; p != nil {
		p.Pause()
	}
	s.current = track
	if track == "" {
		return
	}

	p, ok := s.players[track]
	if !ok {
		var err error
		p, err = assets.LoadAudioPlayer(track)
		if err != nil {
			s.logger.Error("music: load track", zap.String("track", track), zap.Error(err))
			s.players[track] = nil
			return
		}
		s.players[track] = p
	}
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		s.logger.Warn("music: rewind", zap.String("track", track), zap.Error(err))
	}
	p.Play()
}
