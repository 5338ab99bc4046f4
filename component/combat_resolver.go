package component

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/healthhammer/common"
)

// HitSet records which entities a swing has already struck.
type HitSet struct {
	ids map[EntityID]struct{}
}

func NewHitSet() *HitSet {
	return &HitSet{ids: make(map[EntityID]struct{})}
}

// Add records id and reports whether it was new.
func (s *HitSet) Add(id EntityID) bool {
	if s == nil {
		return false
	}
	if s.ids == nil {
		s.ids = make(map[EntityID]struct{})
	}
	if _, ok := s.ids[id]; ok {
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

func (s *HitSet) Has(id EntityID) bool {
	if s == nil {
		return false
	}
	_, ok := s.ids[id]
	return ok
}

func (s *HitSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

func (s *HitSet) Reset() {
	if s == nil {
		return
	}
	clear(s.ids)
}

// IDs returns the recorded entities in ascending order.
func (s *HitSet) IDs() []EntityID {
	if s == nil || len(s.ids) == 0 {
		return nil
	}
	out := make([]EntityID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// WaveParams describes the directional box released on impact.
type WaveParams struct {
	Wielder          cp.Vector
	Head             cp.Vector
	Direction        float64
	LengthMultiplier float64
	Width            float64
	FromWielder      bool
	Damage           float64
	Knockback        float64
	UpBias           float64
	Mask             Category
}

// WaveRegion returns the centre and size of the wave box. The box starts at
// the wielder or at the head and extends along Direction.
func WaveRegion(p WaveParams) (center, size cp.Vector) {
	length := p.Wielder.Distance(p.Head) * p.LengthMultiplier
	start := p.Head
	if p.FromWielder {
		start = p.Wielder
	}
	center = start.Add(cp.Vector{X: common.Sign(p.Direction) * length / 2})
	size = cp.Vector{X: length, Y: p.Width}
	return center, size
}

// WaveKnockback is the impulse direction for wave hits: along the swing with
// an upward bias. Up is negative Y.
func WaveKnockback(direction, upBias, force float64) cp.Vector {
	return cp.Vector{X: common.Sign(direction), Y: -upBias}.Normalize().Mult(force)
}

// ShockwaveParams describes the radial burst released on ground contact.
type ShockwaveParams struct {
	Center    cp.Vector
	Radius    float64
	Damage    float64
	Knockback float64
	MinUp     float64
	Mask      Category
}

// ShockwaveKnockback pushes away from center with at least minUp of upward
// component. Targets sitting on the centre are pushed straight up.
func ShockwaveKnockback(center, target cp.Vector, minUp, force float64) cp.Vector {
	d := target.Sub(center)
	if d.Length() < 1e-9 {
		d = cp.Vector{X: 0, Y: -1}
	}
	d = d.Normalize()
	d.Y = math.Min(d.Y, -minUp)
	return d.Mult(force)
}

// AreaResolver turns region queries into damage and knockback. All paths
// share the caller's HitSet so a target is struck at most once per swing.
type AreaResolver struct {
	Spatial   SpatialQuery
	Caps      Capabilities
	Knockback KnockbackRequester
	Emitter   *CombatEventEmitter
	// Owner is never treated as a target.
	Owner EntityID
}

// Wave resolves the directional wave and returns how many new targets it struck.
func (r *AreaResolver) Wave(hits *HitSet, p WaveParams) int {
	if r == nil || r.Spatial == nil {
		return 0
	}
	center, size := WaveRegion(p)
	force := WaveKnockback(p.Direction, p.UpBias, p.Knockback)
	n := 0
	for _, id := range r.Spatial.OverlapBox(center, size.Mult(0.5), p.Mask) {
		if r.strike(hits, id, p.Damage, SourceWave, func(cp.Vector) cp.Vector { return force }) {
			n++
		}
	}
	return n
}

// Shockwave resolves the radial burst and returns how many new targets it struck.
func (r *AreaResolver) Shockwave(hits *HitSet, p ShockwaveParams) int {
	if r == nil || r.Spatial == nil {
		return 0
	}
	n := 0
	for _, id := range r.Spatial.OverlapCircle(p.Center, p.Radius, p.Mask) {
		if r.strike(hits, id, p.Damage, SourceShockwave, func(pos cp.Vector) cp.Vector {
			return ShockwaveKnockback(p.Center, pos, p.MinUp, p.Knockback)
		}) {
			n++
		}
	}
	return n
}

// Contact strikes a single touched target. A zero force skips knockback.
func (r *AreaResolver) Contact(hits *HitSet, target EntityID, damage float64, force cp.Vector) bool {
	if r == nil {
		return false
	}
	var knock func(cp.Vector) cp.Vector
	if force != (cp.Vector{}) {
		knock = func(cp.Vector) cp.Vector { return force }
	}
	return r.strike(hits, target, damage, SourceContact, knock)
}

func (r *AreaResolver) strike(hits *HitSet, id EntityID, damage float64, src DamageSource, knock func(pos cp.Vector) cp.Vector) bool {
	if id == NoEntity || id == r.Owner {
		return false
	}
	if !hits.Add(id) {
		return false
	}

	var pos cp.Vector
	var body PhysicsBody
	if r.Caps != nil {
		if b, ok := r.Caps.Body(id); ok && b != nil {
			body = b
			pos = b.Position()
		}
	}

	evt := CombatEvent{
		Type:       EventHit,
		Source:     src,
		AttackerID: r.Owner,
		TargetID:   id,
		Damage:     damage,
		Pos:        pos,
	}
	if body != nil && knock != nil {
		evt.Knockback = knock(pos)
	}
	r.Emitter.Emit(evt)

	if r.Caps != nil {
		if h, ok := r.Caps.Health(id); ok && h != nil {
			wasAlive := h.IsAlive()
			if h.ApplyDamage(damage, evt) {
				evt.Type = EventDamageApplied
				r.Emitter.Emit(evt)
				if wasAlive && !h.IsAlive() {
					evt.Type = EventDeath
					r.Emitter.Emit(evt)
				}
			}
		}
	}

	if body != nil && knock != nil && r.Knockback != nil {
		r.Knockback.ApplyKnockback(id, evt.Knockback)
	}
	return true
}
