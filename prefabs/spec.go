package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec reads and unmarshals a prefab file into the given spec type.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type GameSpec struct {
	Title     string `yaml:"title"`
	World     string `yaml:"world"`
	Scale     int    `yaml:"scale"`
	FadeTicks int    `yaml:"fade_ticks"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PlayerSpec struct {
	Name      string        `yaml:"name"`
	StepTicks int           `yaml:"step_ticks"`
	Sprite    SpriteSpec    `yaml:"sprite"`
	Animation AnimationSpec `yaml:"animation"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ActorSpec struct {
	Name       string        `yaml:"name"`
	StepTicks  int           `yaml:"step_ticks"`
	ThinkTicks int           `yaml:"think_ticks"`
	Script     string        `yaml:"script"`
	Sprite     SpriteSpec    `yaml:"sprite"`
	Animation  AnimationSpec `yaml:"animation"`
}

func LoadActorSpec() (*ActorSpec, error) {
	spec, err := LoadSpec[ActorSpec]("actor.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type SpriteSpec struct {
	Image  string `yaml:"image"`
	FrameW int    `yaml:"frame_w"`
	FrameH int    `yaml:"frame_h"`
}

type AnimationSpec struct {
	TicksPerFrame int                       `yaml:"ticks_per_frame"`
	Walk          map[string]FrameRangeSpec `yaml:"walk"`
}

type FrameRangeSpec struct {
	First int `yaml:"first"`
	Last  int `yaml:"last"`
}
