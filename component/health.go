package component

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidMaxHealth = errors.New("health: max must be positive")

// DefaultFlashDuration is how long a hit flash stays on.
const DefaultFlashDuration = 100 * time.Millisecond

// Health is the authoritative health ledger for an entity.
type Health struct {
	Max     float64
	Current float64
	Dead    bool

	// Flash is optional. A nil visual is skipped.
	Flash         FlashVisual
	FlashDuration time.Duration
	flashLeft     time.Duration

	OnDamage func(h *Health, evt CombatEvent)
	OnDeath  func(h *Health, evt CombatEvent)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max float64) (*Health, error) {
	if max <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidMaxHealth, max)
	}
	return &Health{Max: max, Current: max, FlashDuration: DefaultFlashDuration}, nil
}

// IsAlive reports whether the entity is alive.
func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// ApplyDamage subtracts amount, clamping at zero. Damage to a dead ledger and
// non-positive amounts are ignored. Returns true if damage was applied.
func (h *Health) ApplyDamage(amount float64, evt CombatEvent) bool {
	if h == nil || h.Dead || !(amount > 0) {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	h.startFlash()
	if h.OnDamage != nil {
		h.OnDamage(h, evt)
	}
	if h.Current <= 0 {
		h.Dead = true
		if h.OnDeath != nil {
			h.OnDeath(h, evt)
		}
	}
	return true
}

// Heal restores health up to Max. Dead ledgers stay dead.
func (h *Health) Heal(amount float64) {
	if h == nil || h.Dead || amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// HealthFraction returns Current/Max in [0,1].
func (h *Health) HealthFraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	f := h.Current / h.Max
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func (h *Health) startFlash() {
	if h.FlashDuration <= 0 {
		return
	}
	// A new hit restarts the countdown.
	h.flashLeft = h.FlashDuration
	if h.Flash != nil {
		h.Flash.SetFlash(true)
	}
}

// Flashing reports whether a hit flash is showing.
func (h *Health) Flashing() bool {
	return h != nil && h.flashLeft > 0
}

// Tick advances the hit flash timer.
func (h *Health) Tick(dt time.Duration) {
	if h == nil || h.flashLeft <= 0 {
		return
	}
	h.flashLeft -= dt
	if h.flashLeft <= 0 {
		h.flashLeft = 0
		if h.Flash != nil {
			h.Flash.SetFlash(false)
		}
	}
}

// CurrentHP returns the current health value.
func (h *Health) CurrentHP() float64 {
	if h == nil {
		return 0
	}
	return h.Current
}

// MaxHP returns the maximum health value.
func (h *Health) MaxHP() float64 {
	if h == nil {
		return 0
	}
	return h.Max
}

// HealthSnapshot is the persisted part of a ledger.
type HealthSnapshot struct {
	Current float64 `json:"current"`
	Max     float64 `json:"max"`
}

func (h *Health) Snapshot() HealthSnapshot {
	if h == nil {
		return HealthSnapshot{}
	}
	return HealthSnapshot{Current: h.Current, Max: h.Max}
}

// Restore replaces the ledger values, clamping current into [0, max]. A
// restored ledger at zero is dead; anything above zero is alive again.
func (h *Health) Restore(s HealthSnapshot) error {
	if h == nil {
		return nil
	}
	if s.Max <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidMaxHealth, s.Max)
	}
	h.Max = s.Max
	h.Current = s.Current
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
	h.Dead = h.Current <= 0
	return nil
}

// Reset refills the ledger and clears any flash.
func (h *Health) Reset() {
	if h == nil {
		return
	}
	h.Current = h.Max
	h.Dead = false
	if h.flashLeft > 0 {
		h.flashLeft = 0
		if h.Flash != nil {
			h.Flash.SetFlash(false)
		}
	}
}
