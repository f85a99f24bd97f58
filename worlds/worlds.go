package worlds

import (
	"encoding/json"
	"fmt"

	"github.com/milk9111/overworld/common"
)

// Project is one authored world file: every level, its placement in world
// space, and a global table of contents of entity instances. It is immutable
// once parsed; gameplay only reads it.
type Project struct {
	TileSize int      `json:"tile_size"`
	Levels   []*Level `json:"levels"`

	byIID map[string]*Level
	toc   map[string][]*Instance
}

// Level is one authored map region. WorldX/WorldY are the pixel offset of
// the level's top-left corner in world space (y grows downward, as authored).
type Level struct {
	IID        string   `json:"iid"`
	Identifier string   `json:"identifier"`
	WorldX     int      `json:"world_x"`
	WorldY     int      `json:"world_y"`
	PxWid      int      `json:"px_wid"`
	PxHei      int      `json:"px_hei"`
	WorldDepth int      `json:"world_depth"`
	Neighbours []string `json:"neighbours,omitempty"`
	Fields     Fields   `json:"fields,omitempty"`

	// Collision is a row-major int grid (top row first); value 1 marks an
	// impassable tile.
	Collision []int `json:"collision,omitempty"`

	Entities []*Instance `json:"entities,omitempty"`
}

// Instance is one authored entity placement. Px is the top-left pixel
// position local to the owning level (y-down).
type Instance struct {
	IID    string `json:"iid"`
	Type   string `json:"type"`
	Px     [2]int `json:"px"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Fields Fields `json:"fields,omitempty"`

	level *Level
}

// Level returns the level this instance was authored in.
func (i *Instance) Level() *Level {
	if i == nil {
		return nil
	}
	return i.level
}

// Fields is the free-form per-level / per-instance field bag.
type Fields map[string]any

// String returns a string field, or "".
func (f Fields) String(key string) string {
	if f == nil {
		return ""
	}
	s, _ := f[key].(string)
	return s
}

// Ref returns an entity reference field: {"entity_iid": ..., "level_iid": ...}.
func (f Fields) Ref(key string) (entityIID, levelIID string, ok bool) {
	if f == nil {
		return "", "", false
	}
	m, isMap := f[key].(map[string]any)
	if !isMap {
		return "", "", false
	}
	entityIID, _ = m["entity_iid"].(string)
	levelIID, _ = m["level_iid"].(string)
	return entityIID, levelIID, entityIID != "" && levelIID != ""
}

// Strings returns a string-list field, or nil.
func (f Fields) Strings(key string) []string {
	if f == nil {
		return nil
	}
	raw, isList := f[key].([]any)
	if !isList {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, isStr := v.(string); isStr {
			out = append(out, s)
		}
	}
	return out
}

// Parse decodes a world file and builds the lookup tables. Parse is strict
// about invariants that indicate corrupt authored content (wrong tile size,
// wrong palette arity); softer authoring defects are reported by Validate.
func Parse(data []byte) (*Project, error) {
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("worlds: unmarshal project: %w", err)
	}
	if p.TileSize != common.TileSize {
		return nil, fmt.Errorf("worlds: project tile size %d, engine expects %d", p.TileSize, common.TileSize)
	}

	p.byIID = make(map[string]*Level, len(p.Levels))
	p.toc = make(map[string][]*Instance)
	for _, lvl := range p.Levels {
		if lvl.IID == "" {
			return nil, fmt.Errorf("worlds: level %q has no iid", lvl.Identifier)
		}
		if _, dup := p.byIID[lvl.IID]; dup {
			return nil, fmt.Errorf("worlds: duplicate level iid %q", lvl.IID)
		}
		if lvl.PxWid <= 0 || lvl.PxHei <= 0 {
			return nil, fmt.Errorf("worlds: level %q has invalid dimensions %dx%d", lvl.Identifier, lvl.PxWid, lvl.PxHei)
		}
		if n := lvl.GridWidth() * lvl.GridHeight(); len(lvl.Collision) != 0 && len(lvl.Collision) != n {
			return nil, fmt.Errorf("worlds: level %q collision grid has %d cells, want %d", lvl.Identifier, len(lvl.Collision), n)
		}
		if colours := lvl.Fields.Strings("palette"); colours != nil && len(colours) != 4 {
			return nil, fmt.Errorf("worlds: level %q palette has %d colours, want exactly 4", lvl.Identifier, len(colours))
		}
		p.byIID[lvl.IID] = lvl

		for _, inst := range lvl.Entities {
			inst.level = lvl
			p.toc[inst.Type] = append(p.toc[inst.Type], inst)
		}
	}
	return &p, nil
}

// LevelByIID returns the level with the given iid, or nil.
func (p *Project) LevelByIID(iid string) *Level {
	if p == nil {
		return nil
	}
	return p.byIID[iid]
}

// TOC returns every instance of the given entity type across the whole
// world, regardless of which levels are streamed in. This is what lets warp
// destinations resolve before their owning level loads.
func (p *Project) TOC(entityType string) []*Instance {
	if p == nil {
		return nil
	}
	return p.toc[entityType]
}

// GridWidth returns the level width in tiles.
func (l *Level) GridWidth() int { return l.PxWid / common.TileSize }

// GridHeight returns the level height in tiles.
func (l *Level) GridHeight() int { return l.PxHei / common.TileSize }

// GridOrigin returns the world-grid coordinate of the level's local (0,0)
// tile. World grid y grows upward while authored pixel y grows downward, so
// the origin row is derived from the level's bottom edge.
func (l *Level) GridOrigin() (x, y int) {
	return l.WorldX / common.TileSize, -(l.WorldY + l.PxHei) / common.TileSize
}

// LocalGrid converts an authored local pixel box to y-up local tile coords.
func (l *Level) LocalGrid(px, py, w, h int) (lx, ly int) {
	if w <= 0 {
		w = common.TileSize
	}
	if h <= 0 {
		h = common.TileSize
	}
	lx = (px + w/2) / common.TileSize
	rowFromTop := (py + h/2) / common.TileSize
	ly = l.GridHeight() - 1 - rowFromTop
	return lx, ly
}

// BlockedAt reports whether the collision grid marks the y-up local tile
// (lx, ly) as impassable.
func (l *Level) BlockedAt(lx, ly int) bool {
	if l == nil || len(l.Collision) == 0 {
		return false
	}
	if lx < 0 || lx >= l.GridWidth() || ly < 0 || ly >= l.GridHeight() {
		return false
	}
	rowFromTop := l.GridHeight() - 1 - ly
	return l.Collision[rowFromTop*l.GridWidth()+lx] == 1
}

// ContainsPx reports whether a world pixel position (y-down, as rendered)
// falls inside the level's bounds.
func (l *Level) ContainsPx(x, y float64) bool {
	if l == nil {
		return false
	}
	return x >= float64(l.WorldX) && x < float64(l.WorldX+l.PxWid) &&
		y >= float64(l.WorldY) && y < float64(l.WorldY+l.PxHei)
}
