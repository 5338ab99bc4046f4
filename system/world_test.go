package system

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/healthhammer/component"
	"github.com/milk9111/healthhammer/obj"
	"github.com/milk9111/healthhammer/prefabs"
)

// tick divides the 200ms stun and swing duration exactly.
const tick = 50 * time.Millisecond

// testSpecs is a gravity-free arena with no ground so bodies stay put.
func testSpecs(enemies ...prefabs.EnemySpawnSpec) Specs {
	return Specs{
		Arena: &prefabs.ArenaSpec{
			Name:        "test",
			PlayerSpawn: prefabs.VectorSpec{},
			Enemies:     enemies,
		},
		Player: &prefabs.PlayerSpec{
			Name:      "player",
			Health:    100,
			Flash:     100 * time.Millisecond,
			Collider:  prefabs.ColliderSpec{Width: 0.8, Height: 1.6, Mass: 1},
			MoveSpeed: 5,
			Stun:      200 * time.Millisecond,
			Fall:      prefabs.FallSpec{SafeDistance: 4, DamagePerUnit: 5, DeathFloorY: 100},
		},
		Enemy: &prefabs.EnemySpec{
			Name:              "grunt",
			Health:            20,
			Collider:          prefabs.ColliderSpec{Width: 1, Height: 1, Mass: 1},
			ContactDamage:     10,
			KnockbackOnPlayer: 8,
			KnockbackOnSelf:   4,
			UpBias:            0.5,
		},
		Hammer: &prefabs.HammerSpec{
			Name:   "hammer",
			Handle: prefabs.RangeSpec{Min: 0.5, Max: 3},
			Head:   prefabs.RangeSpec{Min: 0.5, Max: 3},
			Swing: prefabs.SwingSpec{
				Speed:       1,
				Duration:    200 * time.Millisecond,
				AngleDeg:    90,
				Ease:        "linear",
				ImpactPause: 100 * time.Millisecond,
				Watchdog:    time.Second,
			},
			HandleRadius:      0.4,
			HeadRadius:        0.5,
			GroundCheckRadius: 0.5,
			Wave:              prefabs.WaveSpec{LengthMultiplier: 1.5, Width: 2, FromWielder: true, Damage: 25, Knockback: 15, UpBias: 0.3},
			Shockwave:         prefabs.ShockwaveSpec{Radius: 3, Damage: 10, Knockback: 10, MinUp: 0.5},
			StartEquipped:     true,
		},
	}
}

func newTestWorld(t *testing.T, enemies ...prefabs.EnemySpawnSpec) *World {
	t.Helper()
	return newTestWorldFrom(t, testSpecs(enemies...))
}

func newTestWorldFrom(t *testing.T, specs Specs) *World {
	t.Helper()
	w, err := NewWorld(specs)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

// stunTicks is how many ticks a knockback lock should last.
func stunTicks(w *World) int {
	return int(w.Knockback.Stun / tick)
}

// ticksUntilRestored updates until id's lock ends and returns the count.
func ticksUntilRestored(t *testing.T, w *World, id component.EntityID) int {
	t.Helper()
	for n := 1; n <= 100; n++ {
		w.Update(nil, tick)
		if !w.Knockback.Locked(id) {
			return n
		}
	}
	t.Fatalf("lock on %d never ended", id)
	return 0
}

func swingAt(x float64) *obj.Input {
	return &obj.Input{Trigger: obj.TriggerSample{Triggered: true, Aim: cp.Vector{X: x}}}
}

type hitRecord struct {
	evt   component.CombatEvent
	phase obj.SwingPhase
}

// recordHits collects hit events on target with the swing phase they
// landed in.
func recordHits(w *World, target component.EntityID) *[]hitRecord {
	hits := &[]hitRecord{}
	w.Events.Subscribe(func(evt component.CombatEvent) {
		if evt.Type == component.EventHit && evt.TargetID == target {
			*hits = append(*hits, hitRecord{evt: evt, phase: w.Player.Hammer.Phase()})
		}
	})
	return hits
}

func TestLoadSpecsBuildsArena(t *testing.T) {
	specs, err := LoadSpecs()
	if err != nil {
		t.Fatalf("LoadSpecs: %v", err)
	}
	w, err := NewWorld(specs)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	if len(w.Enemies) != len(specs.Arena.Enemies) {
		t.Fatalf("expected %d enemies, got %d", len(specs.Arena.Enemies), len(w.Enemies))
	}
	brute := false
	for _, e := range w.Enemies {
		if e.Name == "brute" && e.Health.Max == 120 {
			brute = true
		}
	}
	if !brute {
		t.Fatalf("expected overridden brute enemy")
	}
	if w.Player.Equip.Mode() != obj.EquipWorld {
		t.Fatalf("expected hammer to start equipped")
	}
}

func TestNewWorldRequiresSpecs(t *testing.T) {
	_, err := NewWorld(Specs{})
	if !errors.Is(err, prefabs.ErrInvalidSpec) {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
}

func TestWorldCapabilities(t *testing.T) {
	w := newTestWorld(t, prefabs.EnemySpawnSpec{X: 10})
	enemy := w.Enemies[0]

	if _, ok := w.Health(playerID); !ok {
		t.Fatalf("expected player health")
	}
	if _, ok := w.Movement(enemy.ID); !ok {
		t.Fatalf("expected enemy movement authority")
	}
	if _, ok := w.Body(hammerID); ok {
		t.Fatalf("hammer has no registered body")
	}
	if _, ok := w.Health(999); ok {
		t.Fatalf("unknown entity should have no capabilities")
	}
}

func TestWorldSwingKillsEnemy(t *testing.T) {
	w := newTestWorld(t, prefabs.EnemySpawnSpec{X: 2})
	enemyID := w.Enemies[0].ID

	w.Update(swingAt(5), tick)
	if w.Player.Hammer.Phase() == obj.PhaseIdle {
		t.Fatalf("expected swing to start")
	}
	for i := 0; i < 120 && w.Player.Hammer.Phase() != obj.PhaseIdle; i++ {
		w.Update(nil, tick)
	}

	if len(w.Enemies) != 0 {
		t.Fatalf("expected enemy despawned, %d left", len(w.Enemies))
	}
	if w.Stats.Kills != 1 {
		t.Fatalf("expected one kill, got %d", w.Stats.Kills)
	}
	if w.Knockback.Locked(enemyID) {
		t.Fatalf("despawned enemy should not keep a knockback lock")
	}
	if _, ok := w.Health(enemyID); ok {
		t.Fatalf("despawned enemy still registered")
	}
	if w.Player.Health.Current != 100 {
		t.Fatalf("swing without ground should not hurt the wielder, got %v", w.Player.Health.Current)
	}
}

func TestWorldEnemyContactKnocksPlayer(t *testing.T) {
	w := newTestWorld(t, prefabs.EnemySpawnSpec{X: 0.8})

	w.Update(nil, tick)

	if w.Player.Health.Current != 90 {
		t.Fatalf("expected contact damage, player at %v", w.Player.Health.Current)
	}
	if !w.Knockback.Locked(playerID) || w.Player.Mover.Enabled() {
		t.Fatalf("expected player movement locked after contact")
	}
	if n := ticksUntilRestored(t, w, playerID); n != stunTicks(w) {
		t.Fatalf("expected lock to last %d ticks, got %d", stunTicks(w), n)
	}
	if !w.Player.Mover.Enabled() {
		t.Fatalf("expected movement restored after stun")
	}
}

func TestWorldHammerKnockbackLastsFullStun(t *testing.T) {
	w := newTestWorld(t, prefabs.EnemySpawnSpec{X: 3, Overrides: map[string]any{"health": 1000}})
	enemy := w.Enemies[0]

	w.Update(swingAt(5), tick)
	for i := 0; i < 10 && !w.Knockback.Locked(enemy.ID); i++ {
		w.Update(nil, tick)
	}
	if !w.Knockback.Locked(enemy.ID) || enemy.Mover.Enabled() {
		t.Fatalf("expected the wave to lock the enemy")
	}
	if n := ticksUntilRestored(t, w, enemy.ID); n != stunTicks(w) {
		t.Fatalf("expected hammer lock to last %d ticks like contact locks, got %d", stunTicks(w), n)
	}
	if !enemy.Mover.Enabled() {
		t.Fatalf("expected enemy movement restored")
	}
}

func TestWorldRepeatedKnockbackReplacesLock(t *testing.T) {
	w := newTestWorld(t)
	push := cp.Vector{X: -1}

	w.Knockback.ApplyKnockback(playerID, push)
	w.Update(nil, tick)
	w.Knockback.ApplyKnockback(playerID, push)

	// 0.05s + 0.2s: the first lock alone would have ended at 0.2s
	for i := 0; i < stunTicks(w)-1; i++ {
		w.Update(nil, tick)
		if !w.Knockback.Locked(playerID) || w.Player.Mover.Enabled() {
			t.Fatalf("lock ended early after tick %d", i+2)
		}
	}
	w.Update(nil, tick)
	if w.Knockback.Locked(playerID) || !w.Player.Mover.Enabled() {
		t.Fatalf("expected movement restored 0.25s after the first knockback")
	}
}

func TestWorldContactBeforeImpactGetsWaveKnockback(t *testing.T) {
	w := newTestWorld(t, prefabs.EnemySpawnSpec{X: 3, Overrides: map[string]any{"health": 1000}})
	enemy := w.Enemies[0]
	hits := recordHits(w, enemy.ID)

	// small steps so the head sweeps through the enemy on the way down
	const fine = 10 * time.Millisecond
	w.Update(swingAt(5), fine)
	for i := 0; i < 200 && w.Player.Hammer.Phase() != obj.PhaseIdle; i++ {
		w.Update(nil, fine)
	}

	if len(*hits) != 1 {
		t.Fatalf("expected exactly one hit per swing, got %d", len(*hits))
	}
	first := (*hits)[0]
	if first.evt.Source != component.SourceContact || first.phase != obj.PhaseDescending {
		t.Fatalf("expected a contact hit while descending, got %v during %s", first.evt.Source, first.phase)
	}
	want := component.WaveKnockback(1, w.Specs.Hammer.Wave.UpBias, w.Specs.Hammer.Wave.Knockback)
	if math.Abs(first.evt.Knockback.X-want.X) > 1e-9 || math.Abs(first.evt.Knockback.Y-want.Y) > 1e-9 {
		t.Fatalf("expected wave knockback %v, got %v", want, first.evt.Knockback)
	}
	if enemy.Health.Current != 975 {
		t.Fatalf("expected one wave-sized hit, enemy at %v", enemy.Health.Current)
	}
	if v := enemy.Body.Velocity(); v.X <= 0 || v.Y >= 0 {
		t.Fatalf("expected enemy thrown right and up, velocity %v", v)
	}
}

func TestWorldShockwaveOnGround(t *testing.T) {
	specs := testSpecs(prefabs.EnemySpawnSpec{X: 5.5})
	specs.Arena.Ground = []prefabs.BoxSpec{{X: -10, Y: 0.8, W: 20, H: 1}}
	specs.Hammer.GroundCheckRadius = 1
	specs.Hammer.SelfDamage = 5
	w := newTestWorldFrom(t, specs)
	enemy := w.Enemies[0]
	hits := recordHits(w, enemy.ID)

	w.Update(swingAt(5), tick)
	for i := 0; i < 10 && len(*hits) == 0; i++ {
		w.Update(nil, tick)
	}

	if len(*hits) != 1 || (*hits)[0].evt.Source != component.SourceShockwave {
		t.Fatalf("expected one shockwave hit beyond the wave, got %+v", *hits)
	}
	// straight right from the head, lifted to the minimum upward share
	want := cp.Vector{X: 10, Y: -5}
	if got := (*hits)[0].evt.Knockback; math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Fatalf("expected shockwave knockback %v, got %v", want, got)
	}
	if enemy.Health.Current != 10 {
		t.Fatalf("expected shockwave damage, enemy at %v", enemy.Health.Current)
	}
	if v := enemy.Body.Velocity(); v.X <= 0 || v.Y >= 0 {
		t.Fatalf("expected enemy thrown right and up, velocity %v", v)
	}
	if !w.Knockback.Locked(enemy.ID) {
		t.Fatalf("expected shockwave to lock the enemy")
	}
	if w.Player.Health.Current != 95 {
		t.Fatalf("expected self damage from the ground impact, player at %v", w.Player.Health.Current)
	}

	for i := 0; i < 20 && w.Player.Hammer.Phase() != obj.PhaseIdle; i++ {
		w.Update(nil, tick)
	}
	if w.Player.Health.Current != 95 || len(*hits) != 1 {
		t.Fatalf("shockwave must fire once per swing, player %v hits %d", w.Player.Health.Current, len(*hits))
	}
}

func TestWorldHammerShrinksWithHealth(t *testing.T) {
	w := newTestWorld(t)
	w.HurtPlayer(50)
	w.Update(nil, tick)

	if g := w.Player.Hammer.Geometry(); math.Abs(g.HandleLength-1.75) > 1e-9 {
		t.Fatalf("expected handle 1.75 at half health, got %+v", g)
	}
}

func TestWorldRespawnsPlayer(t *testing.T) {
	w := newTestWorld(t)
	deaths := 0
	w.Player.Health.OnDeath = func(*component.Health, component.CombatEvent) { deaths++ }

	w.HurtPlayer(1000)
	w.Update(nil, tick)
	if !w.Player.Dead() {
		t.Fatalf("expected player dead")
	}
	if w.HurtPlayer(10) {
		t.Fatalf("damage after death should be ignored")
	}

	for i := 0; i < 90 && w.Player.Dead(); i++ {
		w.Update(nil, tick)
	}
	if w.Player.Dead() || w.Player.Health.Current != 100 {
		t.Fatalf("expected respawn at full health, dead=%v hp=%v", w.Player.Dead(), w.Player.Health.Current)
	}
	if deaths != 1 {
		t.Fatalf("expected one death, got %d", deaths)
	}
}

func TestWorldReloadHammer(t *testing.T) {
	w := newTestWorld(t)
	spec := *w.Specs.Hammer
	spec.Wave.Damage = 40

	if err := w.ReloadHammer(&spec); err != nil {
		t.Fatalf("ReloadHammer: %v", err)
	}
	if got := w.Player.Hammer.Config().Wave.Damage; got != 40 {
		t.Fatalf("expected reloaded damage 40, got %v", got)
	}

	bad := spec
	bad.Swing.Speed = 0
	if err := w.ReloadHammer(&bad); !errors.Is(err, obj.ErrInvalidHammerConfig) {
		t.Fatalf("expected ErrInvalidHammerConfig, got %v", err)
	}
	if got := w.Player.Hammer.Config().Wave.Damage; got != 40 {
		t.Fatalf("bad reload must keep previous config, got %v", got)
	}
}

func TestHammerConfigFromSpec(t *testing.T) {
	spec := testSpecs().Hammer
	spec.Swing.AngleDeg = 120
	spec.Swing.Watchdog = 0

	cfg, err := HammerConfig(spec)
	if err != nil {
		t.Fatalf("HammerConfig: %v", err)
	}
	if math.Abs(cfg.SwingAngle-2*math.Pi/3) > 1e-12 {
		t.Fatalf("expected 120 degrees in radians, got %v", cfg.SwingAngle)
	}
	if cfg.WatchdogTimeout != time.Second {
		t.Fatalf("expected default watchdog, got %v", cfg.WatchdogTimeout)
	}
	if cfg.Targets != component.CategoryEnemy {
		t.Fatalf("expected enemy targets, got %v", cfg.Targets)
	}
}
