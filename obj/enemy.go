package obj

import (
	"fmt"
	"log"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/healthhammer/common"
	"github.com/milk9111/healthhammer/component"
)

// EnemyConfig is the tuning an enemy is spawned with.
type EnemyConfig struct {
	Name          string
	MaxHealth     float64
	FlashDuration time.Duration
	Width         float64
	Height        float64
	Mass          float64
	// ContactDamage is dealt to the player on touch.
	ContactDamage     float64
	KnockbackOnPlayer float64
	KnockbackOnSelf   float64
	// UpBias lifts contact knockback off the floor.
	UpBias float64
}

// Enemy is a contact attacker: touching the player hurts both of them
// apart.
type Enemy struct {
	ID     component.EntityID
	Name   string
	Health *component.Health
	Body   *Body
	Mover  *Mover

	cfg      EnemyConfig
	flashing bool
}

func NewEnemy(id component.EntityID, cfg EnemyConfig, pos cp.Vector, cw *CollisionWorld) (*Enemy, error) {
	health, err := component.NewHealth(cfg.MaxHealth)
	if err != nil {
		return nil, fmt.Errorf("enemy %s: %w", cfg.Name, err)
	}
	if cfg.FlashDuration > 0 {
		health.FlashDuration = cfg.FlashDuration
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("enemy %s: collider %vx%v must be positive", cfg.Name, cfg.Width, cfg.Height)
	}
	body := cw.AddActor(id, pos, cfg.Width, cfg.Height, cfg.Mass, component.CategoryEnemy)
	e := &Enemy{
		ID:     id,
		Name:   cfg.Name,
		Health: health,
		Body:   body,
		Mover:  NewMover(body, 0),
		cfg:    cfg,
	}
	health.Flash = e
	return e, nil
}

// SetFlash implements component.FlashVisual.
func (e *Enemy) SetFlash(on bool) { e.flashing = on }

func (e *Enemy) Flashing() bool { return e.flashing }

func (e *Enemy) Config() EnemyConfig { return e.cfg }

// contactPush points from -> to horizontally with an upward bias.
func contactPush(from, to cp.Vector, upBias, force float64) cp.Vector {
	return cp.Vector{X: common.Sign(to.X - from.X), Y: -upBias}.Normalize().Mult(force)
}

// TouchPlayer resolves a body contact with the player: damage, a push away
// for the player and a recoil for the enemy, both through the knockback
// coordinator so both lose control briefly.
func (e *Enemy) TouchPlayer(p *Player, kb component.KnockbackRequester) {
	if e == nil || p == nil || !e.Health.IsAlive() || !p.Health.IsAlive() {
		return
	}
	ep, pp := e.Body.Position(), p.Body.Position()
	p.Health.ApplyDamage(e.cfg.ContactDamage, component.CombatEvent{
		Type:       component.EventDamageApplied,
		Source:     component.SourceAttacker,
		AttackerID: e.ID,
		TargetID:   p.ID,
		Damage:     e.cfg.ContactDamage,
		Pos:        pp,
	})
	if kb == nil {
		return
	}
	if e.cfg.KnockbackOnPlayer > 0 {
		kb.ApplyKnockback(p.ID, contactPush(ep, pp, e.cfg.UpBias, e.cfg.KnockbackOnPlayer))
	}
	if e.cfg.KnockbackOnSelf > 0 {
		kb.ApplyKnockback(e.ID, contactPush(pp, ep, e.cfg.UpBias, e.cfg.KnockbackOnSelf))
	}
	log.Printf("Enemy %s: hit player for %.0f", e.Name, e.cfg.ContactDamage)
}
