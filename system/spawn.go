package system

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/healthhammer/component"
	"github.com/milk9111/healthhammer/obj"
	"github.com/milk9111/healthhammer/prefabs"
)

// HammerConfig converts a hammer prefab into a validated config.
func HammerConfig(spec *prefabs.HammerSpec) (obj.HammerConfig, error) {
	cfg := obj.DefaultHammerConfig()
	if spec == nil {
		return cfg, nil
	}
	cfg.Scaler = component.ScalerConfig{
		HandleMin: spec.Handle.Min,
		HandleMax: spec.Handle.Max,
		HeadMin:   spec.Head.Min,
		HeadMax:   spec.Head.Max,
	}
	cfg.SwingSpeed = spec.Swing.Speed
	cfg.SwingDuration = spec.Swing.Duration
	cfg.SwingAngle = spec.Swing.AngleDeg * math.Pi / 180
	cfg.Ease = spec.Swing.Ease
	cfg.ImpactPause = spec.Swing.ImpactPause
	if spec.Swing.Watchdog > 0 {
		cfg.WatchdogTimeout = spec.Swing.Watchdog
	}
	cfg.PivotOffset = cp.Vector{X: spec.PivotOffset.X, Y: spec.PivotOffset.Y}
	cfg.HandleRadius = spec.HandleRadius
	cfg.HeadRadius = spec.HeadRadius
	cfg.GroundCheckRadius = spec.GroundCheckRadius
	cfg.Wave = obj.WaveConfig{
		LengthMultiplier: spec.Wave.LengthMultiplier,
		Width:            spec.Wave.Width,
		FromWielder:      spec.Wave.FromWielder,
		Damage:           spec.Wave.Damage,
		Knockback:        spec.Wave.Knockback,
		UpBias:           spec.Wave.UpBias,
	}
	cfg.Shockwave = obj.ShockwaveConfig{
		Radius:    spec.Shockwave.Radius,
		Damage:    spec.Shockwave.Damage,
		Knockback: spec.Shockwave.Knockback,
		MinUp:     spec.Shockwave.MinUp,
	}
	cfg.SelfDamage = spec.SelfDamage
	cfg.DebugLogs = spec.DebugLogs
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("hammer %q: %w", spec.Name, err)
	}
	return cfg, nil
}

func PlayerConfig(spec *prefabs.PlayerSpec, spawn cp.Vector) obj.PlayerConfig {
	return obj.PlayerConfig{
		MaxHealth:     spec.Health,
		FlashDuration: spec.Flash,
		Width:         spec.Collider.Width,
		Height:        spec.Collider.Height,
		Mass:          spec.Collider.Mass,
		MoveSpeed:     spec.MoveSpeed,
		Spawn:         spawn,
		Fall: obj.FallConfig{
			SafeDistance:  spec.Fall.SafeDistance,
			DamagePerUnit: spec.Fall.DamagePerUnit,
			DeathFloorY:   spec.Fall.DeathFloorY,
		},
	}
}

func EnemyConfig(spec prefabs.EnemySpec) obj.EnemyConfig {
	return obj.EnemyConfig{
		Name:              spec.Name,
		MaxHealth:         spec.Health,
		FlashDuration:     spec.Flash,
		Width:             spec.Collider.Width,
		Height:            spec.Collider.Height,
		Mass:              spec.Collider.Mass,
		ContactDamage:     spec.ContactDamage,
		KnockbackOnPlayer: spec.KnockbackOnPlayer,
		KnockbackOnSelf:   spec.KnockbackOnSelf,
		UpBias:            spec.UpBias,
	}
}

func (w *World) spawnGround(boxes []prefabs.BoxSpec) {
	for _, g := range boxes {
		// y grows downward, so the box top is the smaller value
		w.Collision.AddGround(w.newID(), cp.BB{L: g.X, B: g.Y, R: g.X + g.W, T: g.Y + g.H})
	}
}

func (w *World) spawnPlayer() error {
	spawn := cp.Vector{X: w.Specs.Arena.PlayerSpawn.X, Y: w.Specs.Arena.PlayerSpawn.Y}
	p, err := obj.NewPlayer(playerID, PlayerConfig(w.Specs.Player, spawn), w.Collision)
	if err != nil {
		return err
	}

	cfg, err := HammerConfig(w.Specs.Hammer)
	if err != nil {
		return err
	}
	scaler, err := component.NewScaler(cfg.Scaler)
	if err != nil {
		return err
	}
	resolver := &component.AreaResolver{
		Spatial:   w.Collision,
		Caps:      w,
		Knockback: w.Knockback,
		Emitter:   w.Events,
	}
	h, err := obj.NewHammer(hammerID, p.ID, cfg, scaler, w.Collision, resolver, p.Health)
	if err != nil {
		return err
	}
	h.Rig = w.Collision.AddWeapon(hammerID, cfg.HandleRadius, cfg.HeadRadius, cfg.Targets)

	mode := obj.EquipInventory
	if w.Specs.Hammer.StartEquipped {
		mode = obj.EquipWorld
	}
	p.AttachHammer(h, mode)
	if icon := w.Specs.Hammer.Icon; icon.Max > icon.Min {
		ic, err := component.NewScaler(component.ScalerConfig{HandleMin: icon.Min, HandleMax: icon.Max, HeadMin: icon.Min, HeadMax: icon.Max})
		if err != nil {
			return err
		}
		p.Equip.Icon = ic
		ic.Update(p.Health)
	}

	w.Player = p
	w.register(p.ID, p.Health, p.Body, p.Mover)
	return nil
}

func (w *World) spawnEnemy(s prefabs.EnemySpawnSpec) (*obj.Enemy, error) {
	spec, err := s.EnemyFor(*w.Specs.Enemy)
	if err != nil {
		return nil, err
	}
	e, err := obj.NewEnemy(w.newID(), EnemyConfig(spec), cp.Vector{X: s.X, Y: s.Y}, w.Collision)
	if err != nil {
		return nil, err
	}
	w.Enemies = append(w.Enemies, e)
	w.register(e.ID, e.Health, e.Body, e.Mover)
	return e, nil
}

// despawn removes an enemy from every registry and drops its pending
// knockback lock.
func (w *World) despawn(e *obj.Enemy) {
	w.Knockback.Release(e.ID)
	w.Collision.Remove(e.ID)
	w.unregister(e.ID)
	for i, other := range w.Enemies {
		if other == e {
			w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
			break
		}
	}
}

// reapEnemies despawns dead enemies and any that fell out of the arena.
func (w *World) reapEnemies() {
	floor := w.Specs.Player.Fall.DeathFloorY
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := w.Enemies[i]
		if e.Health.IsAlive() && e.Body.Position().Y <= floor {
			continue
		}
		w.despawn(e)
	}
}
