package system

import "github.com/milk9111/overworld/worlds"

// NeighbourCache maps each level to its authored neighbours on the same
// world depth. Cross-depth neighbour edges are legal to author (worldlint
// flags them) but streaming never follows them; depth transitions go through
// warps.
type NeighbourCache struct {
	byLevel map[string][]string
}

func BuildNeighbourCache(p *worlds.Project) *NeighbourCache {
	cache := &NeighbourCache{byLevel: make(map[string][]string)}
	if p == nil {
		return cache
	}
	for _, lvl := range p.Levels {
		var same []string
		for _, n := range lvl.Neighbours {
			other := p.LevelByIID(n)
			if other == nil || other.WorldDepth != lvl.WorldDepth {
				continue
			}
			same = append(same, n)
		}
		cache.byLevel[lvl.IID] = same
	}
	return cache
}

// Neighbours returns the same-depth neighbour iids of a level.
func (c *NeighbourCache) Neighbours(iid string) []string {
	if c == nil {
		return nil
	}
	return c.byLevel[iid]
}
