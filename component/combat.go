package component

import "github.com/jakecoffman/cp"

// EntityID identifies anything registered with the world.
type EntityID int

// NoEntity is returned by point queries that hit nothing.
const NoEntity EntityID = 0

// Category is a collision category bitmask used to filter spatial queries.
type Category uint

const (
	CategoryGround Category = 1 << iota
	CategoryPlayer
	CategoryEnemy
	CategoryWeapon
	CategoryHandle

	CategoryNone Category = 0
	CategoryAll  Category = ^Category(0)
)

// Has reports whether any bit of o is set in c.
func (c Category) Has(o Category) bool {
	return c&o != 0
}

// DamageSource names what produced a damage application.
type DamageSource string

const (
	SourceWave      DamageSource = "wave"
	SourceShockwave DamageSource = "shockwave"
	SourceContact   DamageSource = "contact"
	SourceSelf      DamageSource = "self"
	SourceFall      DamageSource = "fall"
	SourceAttacker  DamageSource = "attacker"
)

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventHit           CombatEventType = "hit"
	EventDamageApplied CombatEventType = "damage_applied"
	EventDeath         CombatEventType = "death"
	EventKnockback     CombatEventType = "knockback"
)

// CombatEvent is emitted during combat resolution.
type CombatEvent struct {
	Type       CombatEventType
	Source     DamageSource
	AttackerID EntityID
	TargetID   EntityID
	Damage     float64
	Pos        cp.Vector
	Knockback  cp.Vector
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter fans combat events out to handlers.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Subscribe appends a handler.
func (e *CombatEventEmitter) Subscribe(h CombatEventHandler) {
	if e == nil || h == nil {
		return
	}
	e.Handlers = append(e.Handlers, h)
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
