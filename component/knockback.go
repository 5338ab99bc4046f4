package component

import (
	"time"

	"github.com/jakecoffman/cp"
)

// DefaultStunDuration is how long movement control stays disabled after a
// knockback.
const DefaultStunDuration = 200 * time.Millisecond

type knockbackLock struct {
	authority MovementAuthority
	left      time.Duration
}

// Knockback applies impulses and owns the movement locks they cause. Each
// entity has at most one pending restoration; a new knockback replaces the
// remaining time instead of stacking.
type Knockback struct {
	Caps    Capabilities
	Stun    time.Duration
	Emitter *CombatEventEmitter

	locks map[EntityID]*knockbackLock
}

// NewKnockback creates a coordinator with the given stun duration. A
// non-positive stun falls back to DefaultStunDuration.
func NewKnockback(caps Capabilities, stun time.Duration) *Knockback {
	if stun <= 0 {
		stun = DefaultStunDuration
	}
	return &Knockback{
		Caps:  caps,
		Stun:  stun,
		locks: make(map[EntityID]*knockbackLock),
	}
}

// ApplyKnockback zeroes the entity's velocity, applies force as an impulse
// and disables its movement authority for the stun duration. Entities
// without a body are skipped and false is returned.
func (k *Knockback) ApplyKnockback(id EntityID, force cp.Vector) bool {
	if k == nil || k.Caps == nil {
		return false
	}
	body, ok := k.Caps.Body(id)
	if !ok || body == nil {
		return false
	}
	body.SetVelocity(cp.Vector{})
	body.ApplyImpulse(force)

	if auth, ok := k.Caps.Movement(id); ok && auth != nil {
		if k.locks == nil {
			k.locks = make(map[EntityID]*knockbackLock)
		}
		auth.Disable()
		if lock, ok := k.locks[id]; ok {
			lock.authority = auth
			lock.left = k.Stun
		} else {
			k.locks[id] = &knockbackLock{authority: auth, left: k.Stun}
		}
	}

	k.Emitter.Emit(CombatEvent{
		Type:      EventKnockback,
		TargetID:  id,
		Pos:       body.Position(),
		Knockback: force,
	})
	return true
}

// Tick counts down pending locks and restores movement exactly once when a
// lock expires.
func (k *Knockback) Tick(dt time.Duration) {
	if k == nil || len(k.locks) == 0 {
		return
	}
	for id, lock := range k.locks {
		lock.left -= dt
		if lock.left > 0 {
			continue
		}
		delete(k.locks, id)
		if lock.authority != nil {
			lock.authority.Enable()
		}
	}
}

// Release cancels a pending lock and restores movement immediately. Owners
// call it on teardown so authority is never left disabled.
func (k *Knockback) Release(id EntityID) {
	if k == nil {
		return
	}
	lock, ok := k.locks[id]
	if !ok {
		return
	}
	delete(k.locks, id)
	if lock.authority != nil {
		lock.authority.Enable()
	}
}

// Locked reports whether id has a pending restoration.
func (k *Knockback) Locked(id EntityID) bool {
	if k == nil {
		return false
	}
	_, ok := k.locks[id]
	return ok
}

// Remaining returns the time left on id's lock, or zero.
func (k *Knockback) Remaining(id EntityID) time.Duration {
	if k == nil {
		return 0
	}
	if lock, ok := k.locks[id]; ok {
		return lock.left
	}
	return 0
}
