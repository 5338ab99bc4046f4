package system

import (
	"fmt"
	"log"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/healthhammer/component"
	"github.com/milk9111/healthhammer/obj"
	"github.com/milk9111/healthhammer/prefabs"
)

const (
	playerID component.EntityID = 1
	hammerID component.EntityID = 2
	firstID  component.EntityID = 10
)

// RespawnDelay is how long the player stays down before respawning.
const RespawnDelay = time.Second

// Specs bundles the prefabs a world is built from.
type Specs struct {
	Arena  *prefabs.ArenaSpec
	Player *prefabs.PlayerSpec
	Enemy  *prefabs.EnemySpec
	Hammer *prefabs.HammerSpec
}

// LoadSpecs reads every prefab the world needs.
func LoadSpecs() (Specs, error) {
	var s Specs
	var err error
	if s.Arena, err = prefabs.LoadArenaSpec(); err != nil {
		return s, err
	}
	if s.Player, err = prefabs.LoadPlayerSpec(); err != nil {
		return s, err
	}
	if s.Enemy, err = prefabs.LoadEnemySpec(); err != nil {
		return s, err
	}
	if s.Hammer, err = prefabs.LoadHammerSpec(); err != nil {
		return s, err
	}
	return s, nil
}

// World owns every entity in the arena and runs the combat tick. It is also
// the capability registry the combat components resolve entities through.
type World struct {
	Specs     Specs
	Collision *obj.CollisionWorld
	Knockback *component.Knockback
	Events    *component.CombatEventEmitter

	Player  *obj.Player
	Enemies []*obj.Enemy

	healths map[component.EntityID]*component.Health
	bodies  map[component.EntityID]*obj.Body
	movers  map[component.EntityID]*obj.Mover

	nextID    component.EntityID
	respawnIn time.Duration
	Stats     Stats
}

// NewWorld builds the arena, the player with its hammer and the enemies.
func NewWorld(specs Specs) (*World, error) {
	if specs.Arena == nil || specs.Player == nil || specs.Enemy == nil || specs.Hammer == nil {
		return nil, fmt.Errorf("%w: world needs arena, player, enemy and hammer specs", prefabs.ErrInvalidSpec)
	}
	w := &World{
		Specs:     specs,
		Collision: obj.NewCollisionWorld(specs.Arena.Gravity),
		Events:    &component.CombatEventEmitter{},
		healths:   make(map[component.EntityID]*component.Health),
		bodies:    make(map[component.EntityID]*obj.Body),
		movers:    make(map[component.EntityID]*obj.Mover),
		nextID:    firstID,
	}
	w.Knockback = component.NewKnockback(w, specs.Player.Stun)
	w.Knockback.Emitter = w.Events
	w.Events.Subscribe(w.onCombatEvent)

	w.spawnGround(specs.Arena.Ground)
	if err := w.spawnPlayer(); err != nil {
		return nil, err
	}
	for i, s := range specs.Arena.Enemies {
		if _, err := w.spawnEnemy(s); err != nil {
			return nil, fmt.Errorf("arena enemy %d: %w", i, err)
		}
	}
	log.Printf("World: arena %q ready with %d enemies", specs.Arena.Name, len(w.Enemies))
	return w, nil
}

func (w *World) newID() component.EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// Health implements component.Capabilities.
func (w *World) Health(id component.EntityID) (component.HealthComponent, bool) {
	h, ok := w.healths[id]
	if !ok || h == nil {
		return nil, false
	}
	return h, true
}

// Body implements component.Capabilities.
func (w *World) Body(id component.EntityID) (component.PhysicsBody, bool) {
	b, ok := w.bodies[id]
	if !ok || b == nil {
		return nil, false
	}
	return b, true
}

// Movement implements component.Capabilities.
func (w *World) Movement(id component.EntityID) (component.MovementAuthority, bool) {
	m, ok := w.movers[id]
	if !ok || m == nil {
		return nil, false
	}
	return m, true
}

func (w *World) register(id component.EntityID, h *component.Health, b *obj.Body, m *obj.Mover) {
	if h != nil {
		w.healths[id] = h
	}
	if b != nil {
		w.bodies[id] = b
	}
	if m != nil {
		w.movers[id] = m
	}
}

func (w *World) unregister(id component.EntityID) {
	delete(w.healths, id)
	delete(w.bodies, id)
	delete(w.movers, id)
}

// Update runs one fixed tick. input may be nil.
func (w *World) Update(input *obj.Input, dt time.Duration) {
	if w == nil || dt <= 0 {
		return
	}
	p := w.Player

	for _, h := range w.healths {
		h.Tick(dt)
	}
	// Locks count down before anything this tick can start one.
	w.Knockback.Tick(dt)

	if p.Equip.Mode() == obj.EquipWorld {
		p.Hammer.Scaler().Update(p.Health)
	} else if p.Equip.Icon != nil {
		p.Equip.Icon.Update(p.Health)
	}
	p.Hammer.SetWielderPosition(p.Body.Position())

	moveX := 0.0
	if input != nil && !p.Dead() {
		if input.ToggleEquip {
			p.Equip.Toggle()
		}
		p.Hammer.Trigger(input.Trigger)
		moveX = input.MoveX
	}

	p.Hammer.Advance(dt)

	p.Drive(moveX)
	w.Collision.BeginStep()
	w.Collision.Step(dt.Seconds())
	w.dispatchContacts(w.Collision.Contacts())
	p.Hammer.SetWielderPosition(p.Body.Position())

	p.OnPhysics(p.Grounded(w.Collision))
	w.reapEnemies()
	w.updateRespawn(dt)
}

func (w *World) updateRespawn(dt time.Duration) {
	p := w.Player
	if !p.Dead() {
		return
	}
	if w.respawnIn <= 0 {
		w.respawnIn = RespawnDelay
		log.Printf("World: player down, respawning in %v", RespawnDelay)
		return
	}
	w.respawnIn -= dt
	if w.respawnIn <= 0 {
		w.Knockback.Release(p.ID)
		p.Respawn()
		w.respawnIn = 0
	}
}

// HurtPlayer applies test damage to the player's ledger.
func (w *World) HurtPlayer(amount float64) bool {
	p := w.Player
	return p.Health.ApplyDamage(amount, component.CombatEvent{
		Type:     component.EventDamageApplied,
		Source:   component.SourceSelf,
		TargetID: p.ID,
		Damage:   amount,
		Pos:      p.Body.Position(),
	})
}

// HealPlayer restores some of the player's health. Dead players stay down.
func (w *World) HealPlayer(amount float64) {
	w.Player.Health.Heal(amount)
}

// ReloadHammer applies new hammer tuning between ticks. Scaler bounds are
// fixed at spawn.
func (w *World) ReloadHammer(spec *prefabs.HammerSpec) error {
	cfg, err := HammerConfig(spec)
	if err != nil {
		return err
	}
	if err := w.Player.Hammer.Reconfigure(cfg); err != nil {
		return err
	}
	w.Specs.Hammer = spec
	log.Printf("World: hammer %q reloaded", spec.Name)
	return nil
}

// Enemy returns the live enemy with id.
func (w *World) Enemy(id component.EntityID) *obj.Enemy {
	for _, e := range w.Enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// PlayerPosition is a convenience for the view.
func (w *World) PlayerPosition() cp.Vector {
	return w.Player.Body.Position()
}
