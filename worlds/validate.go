package worlds

import "fmt"

// Problem is one authoring defect found by Validate. Problems are not fatal
// at runtime, but they indicate the world file needs fixing.
type Problem struct {
	Level string
	Msg   string
}

func (p Problem) String() string {
	if p.Level == "" {
		return p.Msg
	}
	return p.Level + ": " + p.Msg
}

// Validate checks the soft authoring invariants:
//   - neighbour iids must reference existing levels,
//   - cross-depth neighbour edges are flagged (legal, but streaming ignores
//     them),
//   - same-depth level bounds must not overlap (runtime falls back to
//     first-match-wins, which is a defect to fix rather than a feature),
//   - warp target references must point at an existing WarpTarget instance.
func (p *Project) Validate() []Problem {
	if p == nil {
		return nil
	}
	var problems []Problem

	targets := make(map[string]bool)
	for _, inst := range p.TOC("WarpTarget") {
		targets[inst.IID] = true
	}

	for _, lvl := range p.Levels {
		for _, n := range lvl.Neighbours {
			other := p.LevelByIID(n)
			if other == nil {
				problems = append(problems, Problem{Level: lvl.Identifier, Msg: fmt.Sprintf("neighbour %q does not exist", n)})
				continue
			}
			if other.WorldDepth != lvl.WorldDepth {
				problems = append(problems, Problem{Level: lvl.Identifier, Msg: fmt.Sprintf("neighbour %q is on depth %d (this level is depth %d); streaming will ignore it", other.Identifier, other.WorldDepth, lvl.WorldDepth)})
			}
		}
	}

	for i, a := range p.Levels {
		for _, b := range p.Levels[i+1:] {
			if a.WorldDepth != b.WorldDepth {
				continue
			}
			if rectsOverlap(a, b) {
				problems = append(problems, Problem{Level: a.Identifier, Msg: fmt.Sprintf("bounds overlap level %q at the same depth; membership will be first-match-wins", b.Identifier)})
			}
		}
	}

	for _, inst := range p.TOC("Warp") {
		entityIID, levelIID, ok := inst.Fields.Ref("target")
		if !ok {
			problems = append(problems, Problem{Level: inst.Level().Identifier, Msg: fmt.Sprintf("warp %q has no target reference", inst.IID)})
			continue
		}
		if !targets[entityIID] {
			problems = append(problems, Problem{Level: inst.Level().Identifier, Msg: fmt.Sprintf("warp %q targets unknown entity %q", inst.IID, entityIID)})
		}
		if p.LevelByIID(levelIID) == nil {
			problems = append(problems, Problem{Level: inst.Level().Identifier, Msg: fmt.Sprintf("warp %q targets unknown level %q", inst.IID, levelIID)})
		}
	}

	return problems
}

func rectsOverlap(a, b *Level) bool {
	return a.WorldX < b.WorldX+b.PxWid &&
		a.WorldX+a.PxWid > b.WorldX &&
		a.WorldY < b.WorldY+b.PxHei &&
		a.WorldY+a.PxHei > b.WorldY
}
