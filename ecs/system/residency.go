package system

import "sort"

// Residency tracks which levels are streamed in. The streaming controller
// writes the target set; the spawner converges the resident set toward it
// and records which levels finished spawning on the current tick so the
// level tracker can emit its deferred loaded event one tick later.
type Residency struct {
	resident  map[string]bool
	target    map[string]bool
	justAdded []string
}

func NewResidency() *Residency {
	return &Residency{
		resident: make(map[string]bool),
		target:   make(map[string]bool),
	}
}

// IsResident reports whether a level's content is currently spawned.
func (r *Residency) IsResident(iid string) bool {
	if r == nil {
		return false
	}
	return r.resident[iid]
}

// Resident returns the resident level iids in stable order.
func (r *Residency) Resident() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.resident))
	for iid := range r.resident {
		out = append(out, iid)
	}
	sort.Strings(out)
	return out
}

// SetTarget replaces the desired resident set.
func (r *Residency) SetTarget(iids []string) {
	if r == nil {
		return
	}
	clear(r.target)
	for _, iid := range iids {
		r.target[iid] = true
	}
}

// Wanted reports whether a level is in the target set.
func (r *Residency) Wanted(iid string) bool {
	if r == nil {
		return false
	}
	return r.target[iid]
}

// Missing returns target levels that are not resident yet, in stable order.
func (r *Residency) Missing() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.target))
	for iid := range r.target {
		if !r.resident[iid] {
			out = append(out, iid)
		}
	}
	sort.Strings(out)
	return out
}

// Stale returns resident levels that left the target set, in stable order.
func (r *Residency) Stale() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.resident))
	for iid := range r.resident {
		if !r.target[iid] {
			out = append(out, iid)
		}
	}
	sort.Strings(out)
	return out
}

func (r *Residency) add(iid string) {
	r.resident[iid] = true
	r.justAdded = append(r.justAdded, iid)
}

func (r *Residency) drop(iid string) {
	delete(r.resident, iid)
}

// JustAdded returns the levels whose content spawned on the previous
// spawner pass.
func (r *Residency) JustAdded() []string {
	if r == nil {
		return nil
	}
	return r.justAdded
}

func (r *Residency) clearJustAdded() {
	r.justAdded = r.justAdded[:0]
}
