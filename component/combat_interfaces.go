package component

import "github.com/jakecoffman/cp"

//go:generate go tool mockgen -source=combat_interfaces.go -destination=mocks/mock_combat_interfaces.go -package=mocks

// HealthComponent exposes health operations for combat systems.
type HealthComponent interface {
	IsAlive() bool
	ApplyDamage(amount float64, evt CombatEvent) bool
	HealthFraction() float64
	CurrentHP() float64
	MaxHP() float64
}

// PhysicsBody is the slice of a rigid body knockback needs.
type PhysicsBody interface {
	Position() cp.Vector
	Velocity() cp.Vector
	SetVelocity(v cp.Vector)
	ApplyImpulse(j cp.Vector)
}

// MovementAuthority gates an entity's own movement control.
type MovementAuthority interface {
	Enable()
	Disable()
}

// SpatialQuery answers overlap questions against the physics world.
// Empty results are normal and never an error.
type SpatialQuery interface {
	// OverlapBox returns entities whose shapes overlap the axis-aligned box
	// centred on center.
	OverlapBox(center, halfExtents cp.Vector, mask Category) []EntityID
	// OverlapCircle returns entities whose shapes come within radius of center.
	OverlapCircle(center cp.Vector, radius float64, mask Category) []EntityID
	// OverlapPoint returns the topmost entity under p, or NoEntity.
	OverlapPoint(p cp.Vector) EntityID
}

// Capabilities looks up the optional components of an entity.
type Capabilities interface {
	Health(id EntityID) (HealthComponent, bool)
	Body(id EntityID) (PhysicsBody, bool)
	Movement(id EntityID) (MovementAuthority, bool)
}

// KnockbackRequester accepts knockback requests for an entity.
type KnockbackRequester interface {
	ApplyKnockback(id EntityID, force cp.Vector) bool
}

// FlashVisual is switched on while a hit flash is showing.
type FlashVisual interface {
	SetFlash(on bool)
}

// HandleVisual receives the handle length chosen by the scaler.
type HandleVisual interface {
	SetHandleLength(length float64)
}

// HeadVisual receives the head offset chosen by the scaler.
type HeadVisual interface {
	SetHeadOffset(offset float64)
}
