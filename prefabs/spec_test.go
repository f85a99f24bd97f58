package prefabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGameSpec(t *testing.T) {
	spec, err := LoadGameSpec()
	require.NoError(t, err)
	assert.NotEmpty(t, spec.Title)
	assert.NotEmpty(t, spec.World)
	assert.Greater(t, spec.Scale, 0)
	assert.Greater(t, spec.FadeTicks, 0)
}

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	require.NoError(t, err)
	assert.Greater(t, spec.StepTicks, 0)
	assert.NotEmpty(t, spec.Sprite.Image)
	assert.Equal(t, 16, spec.Sprite.FrameW)

	require.Len(t, spec.Animation.Walk, 4)
	for _, facing := range []string{"down", "up", "right", "left"} {
		r, ok := spec.Animation.Walk[facing]
		require.True(t, ok, "missing walk range for %s", facing)
		assert.LessOrEqual(t, r.First, r.Last)
	}
}

func TestLoadActorSpec(t *testing.T) {
	spec, err := LoadActorSpec()
	require.NoError(t, err)
	assert.Greater(t, spec.ThinkTicks, 0)
	assert.NotEmpty(t, spec.Script)
}

func TestLoadSpecMissingFile(t *testing.T) {
	_, err := LoadSpec[GameSpec]("no_such.yaml")
	assert.Error(t, err)
}

func TestLoadScript(t *testing.T) {
	// Path prefixes normalize to the embedded scripts directory.
	for _, name := range []string{"wander.tengo", "scripts/wander.tengo", "prefabs/scripts/wander.tengo"} {
		data, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, data)
	}

	_, err := LoadScript("missing.tengo")
	assert.Error(t, err)
}
