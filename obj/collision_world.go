package obj

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/healthhammer/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeEnemy
	collisionTypeSolid
	collisionTypeWeapon
	collisionTypeHandle
)

// Draw layers decide which entity a point query reports as topmost.
const (
	layerGround = iota
	layerActor
	layerWeapon
)

// ContactKind distinguishes the contact pairs the world reports.
type ContactKind int

const (
	// ContactWeapon is a weapon footprint touching a target.
	ContactWeapon ContactKind = iota
	// ContactAttacker is an enemy body touching the player.
	ContactAttacker
)

// Contact is a begin-contact recorded during Step.
type Contact struct {
	Kind   ContactKind
	Source component.EntityID
	Target component.EntityID
}

type shapeInfo struct {
	id    component.EntityID
	layer int
}

// CollisionWorld wraps the chipmunk space and answers spatial queries for
// combat. Shapes are tagged with the entity that owns them.
type CollisionWorld struct {
	space *cp.Space

	shapes map[*cp.Shape]shapeInfo
	owned  map[component.EntityID][]*cp.Shape
	bodies map[component.EntityID]*cp.Body

	// moved holds shapes teleported since the last step. The space index
	// still has their old bounds until it is rebuilt in Step.
	moved map[*cp.Shape]struct{}

	contacts      []Contact
	handlersReady bool
}

func NewCollisionWorld(gravity float64) *CollisionWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	cw := &CollisionWorld{
		space:  space,
		shapes: make(map[*cp.Shape]shapeInfo),
		owned:  make(map[component.EntityID][]*cp.Shape),
		bodies: make(map[component.EntityID]*cp.Body),
		moved:  make(map[*cp.Shape]struct{}),
	}
	cw.setupHandlers()
	return cw
}

func filterFor(category, mask component.Category) cp.ShapeFilter {
	return cp.NewShapeFilter(cp.NO_GROUP, uint(category), uint(mask))
}

func (cw *CollisionWorld) track(id component.EntityID, shape *cp.Shape, layer int) {
	cw.shapes[shape] = shapeInfo{id: id, layer: layer}
	cw.owned[id] = append(cw.owned[id], shape)
}

// AddGround adds a static solid box covering bb.
func (cw *CollisionWorld) AddGround(id component.EntityID, bb cp.BB) {
	if cw == nil || cw.space == nil {
		return
	}
	shape := cp.NewBox2(cw.space.StaticBody, bb, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(collisionTypeSolid)
	shape.SetFilter(filterFor(component.CategoryGround, component.CategoryAll))
	cw.space.AddShape(shape)
	cw.track(id, shape, layerGround)
}

// AddActor adds a dynamic, rotation-locked box for a player or enemy.
func (cw *CollisionWorld) AddActor(id component.EntityID, center cp.Vector, width, height, mass float64, category component.Category) *Body {
	if cw == nil || cw.space == nil {
		return nil
	}
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, math.Inf(1))
	body.SetAngle(0)
	body.SetPosition(center)
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0.0)
	switch category {
	case component.CategoryPlayer:
		shape.SetCollisionType(collisionTypePlayer)
	case component.CategoryEnemy:
		shape.SetCollisionType(collisionTypeEnemy)
	}
	shape.SetFilter(filterFor(category, component.CategoryAll&^component.CategoryHandle))

	cw.space.AddBody(body)
	cw.space.AddShape(shape)
	cw.bodies[id] = body
	cw.track(id, shape, layerActor)
	return &Body{body: body, world: cw}
}

// WeaponRig is the kinematic body carrying a weapon's drag handle and its
// damage footprint.
type WeaponRig struct {
	body      *Body
	footprint *cp.Shape
	targets   component.Category
	enabled   bool
}

// AddWeapon registers a weapon entity. The drag handle is always queryable;
// the footprint only collides with targets while enabled.
func (cw *CollisionWorld) AddWeapon(id component.EntityID, handleRadius, footprintRadius float64, targets component.Category) *WeaponRig {
	if cw == nil || cw.space == nil {
		return nil
	}
	body := cp.NewKinematicBody()
	cw.space.AddBody(body)

	handle := cp.NewCircle(body, handleRadius, cp.Vector{})
	handle.SetSensor(true)
	handle.SetCollisionType(collisionTypeHandle)
	handle.SetFilter(filterFor(component.CategoryHandle, component.CategoryAll))
	cw.space.AddShape(handle)
	cw.track(id, handle, layerWeapon)

	footprint := cp.NewCircle(body, footprintRadius, cp.Vector{})
	footprint.SetSensor(true)
	footprint.SetCollisionType(collisionTypeWeapon)
	footprint.SetFilter(filterFor(component.CategoryWeapon, component.CategoryNone))
	cw.space.AddShape(footprint)
	cw.track(id, footprint, layerWeapon)

	cw.bodies[id] = body
	return &WeaponRig{
		body:      &Body{body: body, world: cw},
		footprint: footprint,
		targets:   targets,
	}
}

// MoveTo places the rig at p.
func (r *WeaponRig) MoveTo(p cp.Vector) {
	if r == nil {
		return
	}
	r.body.SetPosition(p)
}

// SetFootprintEnabled switches target collisions for the footprint.
func (r *WeaponRig) SetFootprintEnabled(on bool) {
	if r == nil || r.footprint == nil || r.enabled == on {
		return
	}
	r.enabled = on
	mask := component.CategoryNone
	if on {
		mask = r.targets
	}
	r.footprint.SetFilter(filterFor(component.CategoryWeapon, mask))
}

func (r *WeaponRig) FootprintEnabled() bool {
	return r != nil && r.enabled
}

// Remove drops every shape and body owned by id.
func (cw *CollisionWorld) Remove(id component.EntityID) {
	if cw == nil || cw.space == nil {
		return
	}
	for _, shape := range cw.owned[id] {
		cw.space.RemoveShape(shape)
		delete(cw.shapes, shape)
		delete(cw.moved, shape)
	}
	delete(cw.owned, id)
	if body, ok := cw.bodies[id]; ok {
		cw.space.RemoveBody(body)
		delete(cw.bodies, id)
	}
}

func (cw *CollisionWorld) setupHandlers() {
	if cw.handlersReady || cw.space == nil {
		return
	}
	weaponHandler := cw.space.NewCollisionHandler(collisionTypeWeapon, collisionTypeEnemy)
	weaponHandler.UserData = cw
	weaponHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*CollisionWorld)
		if ok && world != nil {
			a, b := arb.Shapes()
			world.record(ContactWeapon, a, b)
		}
		return true
	}

	attackerHandler := cw.space.NewCollisionHandler(collisionTypeEnemy, collisionTypePlayer)
	attackerHandler.UserData = cw
	attackerHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*CollisionWorld)
		if ok && world != nil {
			a, b := arb.Shapes()
			world.record(ContactAttacker, a, b)
		}
		return true
	}

	cw.handlersReady = true
}

func (cw *CollisionWorld) record(kind ContactKind, a, b *cp.Shape) {
	src, okA := cw.shapes[a]
	dst, okB := cw.shapes[b]
	if !okA || !okB {
		return
	}
	cw.contacts = append(cw.contacts, Contact{Kind: kind, Source: src.id, Target: dst.id})
}

// BeginStep clears contacts left from the previous step.
func (cw *CollisionWorld) BeginStep() {
	if cw == nil {
		return
	}
	cw.contacts = cw.contacts[:0]
}

func (cw *CollisionWorld) Step(dt float64) {
	if cw == nil || cw.space == nil || dt <= 0 {
		return
	}
	cw.space.Step(dt)
	clear(cw.moved)
}

func (cw *CollisionWorld) markMoved(body *cp.Body) {
	if cw == nil || body == nil {
		return
	}
	body.EachShape(func(shape *cp.Shape) {
		shape.CacheBB()
		if _, ok := cw.shapes[shape]; ok {
			cw.moved[shape] = struct{}{}
		}
	})
}

// candidates returns the tracked shapes passing filter whose bounds touch
// bb. Moved shapes are checked directly since the index lags behind them.
func (cw *CollisionWorld) candidates(bb cp.BB, filter cp.ShapeFilter) []*cp.Shape {
	var out []*cp.Shape
	seen := make(map[*cp.Shape]struct{})
	consider := func(shape *cp.Shape) {
		if _, ok := seen[shape]; ok {
			return
		}
		seen[shape] = struct{}{}
		if _, ok := cw.shapes[shape]; !ok {
			return
		}
		if shape.Filter.Reject(filter) || !shape.BB().Intersects(bb) {
			return
		}
		out = append(out, shape)
	}
	for shape := range cw.moved {
		consider(shape)
	}
	cw.space.BBQuery(bb, filter, func(shape *cp.Shape, data interface{}) {
		consider(shape)
	}, nil)
	return out
}

// Contacts returns the begin-contacts recorded by the last Step.
func (cw *CollisionWorld) Contacts() []Contact {
	if cw == nil || len(cw.contacts) == 0 {
		return nil
	}
	out := make([]Contact, len(cw.contacts))
	copy(out, cw.contacts)
	return out
}

// OverlapBox reports entities whose shape bounds overlap the box.
func (cw *CollisionWorld) OverlapBox(center, halfExtents cp.Vector, mask component.Category) []component.EntityID {
	if cw == nil || cw.space == nil {
		return nil
	}
	hw, hh := math.Abs(halfExtents.X), math.Abs(halfExtents.Y)
	bb := cp.NewBBForExtents(center, hw, hh)
	seen := make(map[component.EntityID]struct{})
	for _, shape := range cw.candidates(bb, filterFor(component.CategoryAll, mask)) {
		seen[cw.shapes[shape].id] = struct{}{}
	}
	return sortedIDs(seen)
}

// OverlapCircle reports entities whose shapes come within radius of center.
func (cw *CollisionWorld) OverlapCircle(center cp.Vector, radius float64, mask component.Category) []component.EntityID {
	if cw == nil || cw.space == nil || radius <= 0 {
		return nil
	}
	seen := make(map[component.EntityID]struct{})
	for _, shape := range cw.candidates(cp.NewBBForCircle(center, radius), filterFor(component.CategoryAll, mask)) {
		if shape.PointQuery(center).Distance <= radius {
			seen[cw.shapes[shape].id] = struct{}{}
		}
	}
	return sortedIDs(seen)
}

// OverlapPoint reports the topmost entity whose shape contains p. Weapons
// draw over actors, actors over ground; ties go to the deepest overlap.
func (cw *CollisionWorld) OverlapPoint(p cp.Vector) component.EntityID {
	if cw == nil || cw.space == nil {
		return component.NoEntity
	}
	best := component.NoEntity
	bestLayer := -1
	bestDist := math.Inf(1)
	for _, shape := range cw.candidates(cp.NewBBForCircle(p, 0), filterFor(component.CategoryAll, component.CategoryAll)) {
		distance := shape.PointQuery(p).Distance
		if distance > 0 {
			continue
		}
		info := cw.shapes[shape]
		if info.layer > bestLayer || (info.layer == bestLayer && distance < bestDist) {
			best, bestLayer, bestDist = info.id, info.layer, distance
		}
	}
	return best
}

func sortedIDs(set map[component.EntityID]struct{}) []component.EntityID {
	if len(set) == 0 {
		return nil
	}
	out := make([]component.EntityID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
