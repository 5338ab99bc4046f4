package obj

import (
	"fmt"
	"log"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/healthhammer/component"
)

// PlayerConfig is the tuning a player is spawned with.
type PlayerConfig struct {
	MaxHealth     float64
	FlashDuration time.Duration
	Width         float64
	Height        float64
	Mass          float64
	MoveSpeed     float64
	Spawn         cp.Vector
	Fall          FallConfig
}

// playerState is the interface each concrete player state implements.
type playerState interface {
	Enter(p *Player)
	OnPhysics(p *Player, grounded bool)
	Name() string
}

type standingState struct{}

func (standingState) Name() string    { return "standing" }
func (standingState) Enter(p *Player) {}
func (standingState) OnPhysics(p *Player, grounded bool) {
	if !grounded {
		p.setState(stateAirborne)
	}
}

type airborneState struct{}

func (airborneState) Name() string    { return "airborne" }
func (airborneState) Enter(p *Player) {}
func (airborneState) OnPhysics(p *Player, grounded bool) {
	if grounded {
		p.setState(stateStanding)
	}
}

type deadState struct{}

func (deadState) Name() string { return "dead" }
func (deadState) Enter(p *Player) {
	p.Mover.Disable()
	p.Fall.Reset()
	if p.Hammer != nil {
		p.Hammer.Reset()
	}
}
func (deadState) OnPhysics(p *Player, grounded bool) {}

var (
	stateStanding playerState = &standingState{}
	stateAirborne playerState = &airborneState{}
	stateDead     playerState = &deadState{}
)

// Player wields the hammer. Its ledger drives the hammer geometry.
type Player struct {
	ID     component.EntityID
	Health *component.Health
	Body   *Body
	Mover  *Mover
	Fall   *FallTracker
	Hammer *Hammer
	Equip  *Equip

	cfg      PlayerConfig
	state    playerState
	flashing bool
}

func NewPlayer(id component.EntityID, cfg PlayerConfig, cw *CollisionWorld) (*Player, error) {
	health, err := component.NewHealth(cfg.MaxHealth)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}
	if cfg.FlashDuration > 0 {
		health.FlashDuration = cfg.FlashDuration
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("player: collider %vx%v must be positive", cfg.Width, cfg.Height)
	}
	body := cw.AddActor(id, cfg.Spawn, cfg.Width, cfg.Height, cfg.Mass, component.CategoryPlayer)
	p := &Player{
		ID:     id,
		Health: health,
		Body:   body,
		Mover:  NewMover(body, cfg.MoveSpeed),
		Fall:   NewFallTracker(cfg.Fall),
		cfg:    cfg,
		state:  stateStanding,
	}
	health.Flash = p
	return p, nil
}

// AttachHammer hands the hammer to the player in the given mode.
func (p *Player) AttachHammer(h *Hammer, mode EquipMode) {
	p.Hammer = h
	p.Equip = NewEquip(h, p.Health, mode)
	h.SetWielderPosition(p.Body.Position())
}

func (p *Player) setState(s playerState) {
	if p.state == s {
		return
	}
	p.state = s
	p.state.Enter(p)
}

func (p *Player) StateName() string    { return p.state.Name() }
func (p *Player) Config() PlayerConfig { return p.cfg }

// SetFlash implements component.FlashVisual.
func (p *Player) SetFlash(on bool) { p.flashing = on }

func (p *Player) Flashing() bool { return p.flashing }

// FeetBox returns the box under the player used for ground checks.
func (p *Player) FeetBox() (center, halfExtents cp.Vector) {
	pos := p.Body.Position()
	return cp.Vector{X: pos.X, Y: pos.Y + p.cfg.Height/2 + 0.05}, cp.Vector{X: p.cfg.Width * 0.45, Y: 0.05}
}

// Grounded asks the spatial service whether ground sits under the feet.
func (p *Player) Grounded(q component.SpatialQuery) bool {
	if q == nil {
		return false
	}
	c, h := p.FeetBox()
	return len(q.OverlapBox(c, h, component.CategoryGround)) > 0
}

// Drive applies horizontal input unless movement is locked.
func (p *Player) Drive(moveX float64) {
	if p.state == stateDead {
		return
	}
	p.Mover.Drive(moveX)
}

// OnPhysics runs after the physics step: state changes, fall damage and
// the death floor.
func (p *Player) OnPhysics(grounded bool) {
	if p.state == stateDead {
		return
	}
	pos := p.Body.Position()
	dmg, fellOut := p.Fall.Update(pos.Y, grounded)
	switch {
	case fellOut:
		p.Health.ApplyDamage(p.Health.Current, component.CombatEvent{
			Type: component.EventDamageApplied, Source: component.SourceFall, TargetID: p.ID, Damage: p.Health.Current, Pos: pos,
		})
	case dmg > 0:
		log.Printf("Player: fall damage %.0f", dmg)
		p.Health.ApplyDamage(dmg, component.CombatEvent{
			Type: component.EventDamageApplied, Source: component.SourceFall, TargetID: p.ID, Damage: dmg, Pos: pos,
		})
	}
	if !p.Health.IsAlive() {
		p.setState(stateDead)
		return
	}
	p.state.OnPhysics(p, grounded)
}

func (p *Player) Dead() bool { return p.state == stateDead }

// Respawn refills the ledger and puts the player back at the spawn point.
func (p *Player) Respawn() {
	p.Health.Reset()
	p.Body.SetPosition(p.cfg.Spawn)
	p.Body.SetVelocity(cp.Vector{})
	p.Mover.Enable()
	p.Fall.Reset()
	if p.Hammer != nil {
		p.Hammer.Reset()
		p.Hammer.SetWielderPosition(p.cfg.Spawn)
	}
	p.state = stateStanding
	log.Printf("Player: respawned at (%.1f, %.1f)", p.cfg.Spawn.X, p.cfg.Spawn.Y)
}
