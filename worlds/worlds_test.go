package worlds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalWorld = `{
	"tile_size": 16,
	"levels": [
		{
			"iid": "lvl_a", "identifier": "A",
			"world_x": 0, "world_y": 0, "px_wid": 160, "px_hei": 144, "world_depth": 0,
			"neighbours": ["lvl_b"],
			"fields": {"bgm": "a.wav", "palette": ["#000000", "#333333", "#aaaaaa", "#ffffff"]},
			"collision": [
				1,1,1,1,1,1,1,1,1,1,
				1,0,0,0,0,0,0,0,0,1,
				1,0,0,0,0,0,0,0,0,1,
				1,0,0,0,0,0,0,0,0,1,
				1,0,0,0,0,0,0,0,0,1,
				1,0,0,0,0,0,0,0,0,1,
				1,0,0,0,0,0,0,0,0,1,
				1,0,0,0,0,0,0,0,0,1,
				1,1,1,1,1,1,1,1,1,1
			],
			"entities": [
				{"iid": "ent_player", "type": "Player", "px": [64, 64], "width": 16, "height": 16},
				{"iid": "warp_a", "type": "Warp", "px": [80, 80], "width": 16, "height": 16,
				 "fields": {"target": {"entity_iid": "tgt_b", "level_iid": "lvl_b"}}}
			]
		},
		{
			"iid": "lvl_b", "identifier": "B",
			"world_x": 160, "world_y": 0, "px_wid": 160, "px_hei": 144, "world_depth": 0,
			"neighbours": ["lvl_a"],
			"entities": [
				{"iid": "tgt_b", "type": "WarpTarget", "px": [32, 96], "width": 16, "height": 16}
			]
		}
	]
}`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(minimalWorld))
	require.NoError(t, err)
	require.Len(t, p.Levels, 2)

	a := p.LevelByIID("lvl_a")
	require.NotNil(t, a)
	assert.Equal(t, "A", a.Identifier)
	assert.Equal(t, 10, a.GridWidth())
	assert.Equal(t, 9, a.GridHeight())
	assert.Nil(t, p.LevelByIID("lvl_missing"))
}

func TestParseRejectsCorruptContent(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"wrong_tile_size", `{"tile_size": 8, "levels": []}`},
		{"missing_iid", `{"tile_size": 16, "levels": [{"identifier": "A", "px_wid": 16, "px_hei": 16}]}`},
		{"duplicate_iid", `{"tile_size": 16, "levels": [
			{"iid": "x", "identifier": "A", "px_wid": 16, "px_hei": 16},
			{"iid": "x", "identifier": "B", "px_wid": 16, "px_hei": 16}]}`},
		{"zero_dimensions", `{"tile_size": 16, "levels": [{"iid": "x", "identifier": "A", "px_wid": 0, "px_hei": 16}]}`},
		{"collision_cell_count", `{"tile_size": 16, "levels": [
			{"iid": "x", "identifier": "A", "px_wid": 32, "px_hei": 32, "collision": [1, 0, 1]}]}`},
		{"palette_arity", `{"tile_size": 16, "levels": [
			{"iid": "x", "identifier": "A", "px_wid": 16, "px_hei": 16,
			 "fields": {"palette": ["#000000", "#ffffff"]}}]}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.json))
			assert.Error(t, err)
		})
	}
}

func TestGridOrigin(t *testing.T) {
	cases := []struct {
		name           string
		worldX, worldY int
		pxHei          int
		wantX, wantY   int
	}{
		{"at_origin", 0, 0, 144, 0, -9},
		{"east_neighbour", 160, 0, 144, 10, -9},
		{"negative_x", -160, 0, 144, -10, -9},
		{"above_origin", 0, -144, 144, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl := &Level{WorldX: c.worldX, WorldY: c.worldY, PxWid: 160, PxHei: c.pxHei}
			x, y := lvl.GridOrigin()
			assert.Equal(t, c.wantX, x)
			assert.Equal(t, c.wantY, y)
		})
	}
}

func TestLocalGrid(t *testing.T) {
	lvl := &Level{PxWid: 160, PxHei: 144}

	// Authored rows count down from the top; local grid rows count up.
	lx, ly := lvl.LocalGrid(64, 64, 16, 16)
	assert.Equal(t, 4, lx)
	assert.Equal(t, 4, ly)

	lx, ly = lvl.LocalGrid(0, 0, 16, 16)
	assert.Equal(t, 0, lx)
	assert.Equal(t, 8, ly, "top-left authored tile is the top local row")

	lx, ly = lvl.LocalGrid(144, 128, 16, 16)
	assert.Equal(t, 9, lx)
	assert.Equal(t, 0, ly, "bottom authored row is local row zero")
}

func TestBlockedAt(t *testing.T) {
	p, err := Parse([]byte(minimalWorld))
	require.NoError(t, err)
	a := p.LevelByIID("lvl_a")

	assert.True(t, a.BlockedAt(0, 0), "border wall")
	assert.True(t, a.BlockedAt(0, 8))
	assert.True(t, a.BlockedAt(9, 4))
	assert.False(t, a.BlockedAt(4, 4), "interior is open")
	assert.False(t, a.BlockedAt(-1, 4), "out of bounds is not blocked")
	assert.False(t, a.BlockedAt(4, 99))

	b := p.LevelByIID("lvl_b")
	assert.False(t, b.BlockedAt(0, 0), "no collision grid means nothing blocks")
}

func TestTOC(t *testing.T) {
	p, err := Parse([]byte(minimalWorld))
	require.NoError(t, err)

	warps := p.TOC("Warp")
	require.Len(t, warps, 1)
	assert.Equal(t, "warp_a", warps[0].IID)
	assert.Equal(t, "lvl_a", warps[0].Level().IID)

	entityIID, levelIID, ok := warps[0].Fields.Ref("target")
	require.True(t, ok)
	assert.Equal(t, "tgt_b", entityIID)
	assert.Equal(t, "lvl_b", levelIID)

	targets := p.TOC("WarpTarget")
	require.Len(t, targets, 1)
	assert.Equal(t, "tgt_b", targets[0].IID)

	assert.Empty(t, p.TOC("Nothing"))
}

func TestValidate(t *testing.T) {
	t.Run("clean_world", func(t *testing.T) {
		p, err := Parse([]byte(minimalWorld))
		require.NoError(t, err)
		assert.Empty(t, p.Validate())
	})

	t.Run("dangling_and_overlapping", func(t *testing.T) {
		p, err := Parse([]byte(`{
			"tile_size": 16,
			"levels": [
				{"iid": "lvl_a", "identifier": "A", "world_x": 0, "world_y": 0,
				 "px_wid": 160, "px_hei": 144, "world_depth": 0,
				 "neighbours": ["lvl_gone", "lvl_deep"],
				 "entities": [
					{"iid": "warp_a", "type": "Warp", "px": [16, 16], "width": 16, "height": 16,
					 "fields": {"target": {"entity_iid": "tgt_gone", "level_iid": "lvl_gone"}}},
					{"iid": "warp_b", "type": "Warp", "px": [32, 16], "width": 16, "height": 16}
				 ]},
				{"iid": "lvl_b", "identifier": "B", "world_x": 80, "world_y": 0,
				 "px_wid": 160, "px_hei": 144, "world_depth": 0},
				{"iid": "lvl_deep", "identifier": "Deep", "world_x": 0, "world_y": 0,
				 "px_wid": 160, "px_hei": 144, "world_depth": -1}
			]
		}`))
		require.NoError(t, err)

		problems := p.Validate()
		msgs := make([]string, 0, len(problems))
		for _, pr := range problems {
			msgs = append(msgs, pr.String())
		}

		assert.Len(t, problems, 6)
		assert.Contains(t, msgs, `A: neighbour "lvl_gone" does not exist`)
		assert.Contains(t, msgs, `A: bounds overlap level "B" at the same depth; membership will be first-match-wins`)
	})
}

func TestLoadEmbedded(t *testing.T) {
	p, err := LoadEmbedded("overworld")
	require.NoError(t, err)
	require.Len(t, p.Levels, 3)

	require.Len(t, p.TOC("Player"), 1)
	require.Len(t, p.TOC("Warp"), 2)
	require.Len(t, p.TOC("WarpTarget"), 2)

	// The meadow-cellar neighbour edge crosses depths on purpose; that is
	// the only authoring lint the shipped world trips.
	for _, problem := range p.Validate() {
		assert.Contains(t, problem.Msg, "streaming will ignore it")
	}

	_, err = LoadEmbedded("no_such_world")
	assert.Error(t, err)
}
