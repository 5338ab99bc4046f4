package obj

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/healthhammer/common"
	"github.com/milk9111/healthhammer/component"
	"github.com/tanema/gween/ease"
)

var ErrInvalidHammerConfig = errors.New("hammer: invalid config")

// SwingPhase is the hammer's position in its swing cycle.
type SwingPhase int

const (
	PhaseIdle SwingPhase = iota
	PhaseRaisedNeutral
	PhaseDescending
	PhaseImpacted
	PhaseRecovering
)

func (p SwingPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRaisedNeutral:
		return "raised"
	case PhaseDescending:
		return "descending"
	case PhaseImpacted:
		return "impacted"
	case PhaseRecovering:
		return "recovering"
	}
	return fmt.Sprintf("SwingPhase(%d)", int(p))
}

// Direction is the horizontal side a swing lands on.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

type WaveConfig struct {
	LengthMultiplier float64
	Width            float64
	FromWielder      bool
	Damage           float64
	Knockback        float64
	UpBias           float64
}

type ShockwaveConfig struct {
	Radius    float64
	Damage    float64
	Knockback float64
	MinUp     float64
}

// HammerConfig tunes the swing cycle and the areas it releases.
type HammerConfig struct {
	Scaler component.ScalerConfig

	SwingSpeed    float64
	SwingDuration time.Duration
	// SwingAngle is the rotation magnitude at impact, in radians.
	SwingAngle      float64
	Ease            string
	ImpactPause     time.Duration
	WatchdogTimeout time.Duration

	PivotOffset       cp.Vector
	HandleRadius      float64
	HeadRadius        float64
	GroundCheckRadius float64

	Wave       WaveConfig
	Shockwave  ShockwaveConfig
	SelfDamage float64

	Targets component.Category
	Ground  component.Category

	DebugLogs bool
}

func DefaultHammerConfig() HammerConfig {
	return HammerConfig{
		Scaler:            component.ScalerConfig{HandleMin: 0.5, HandleMax: 3, HeadMin: 0.5, HeadMax: 3},
		SwingSpeed:        1,
		SwingDuration:     200 * time.Millisecond,
		SwingAngle:        math.Pi / 2,
		Ease:              "linear",
		ImpactPause:       100 * time.Millisecond,
		WatchdogTimeout:   time.Second,
		HandleRadius:      0.4,
		HeadRadius:        0.5,
		GroundCheckRadius: 0.5,
		Wave: WaveConfig{
			LengthMultiplier: 1.5,
			Width:            2,
			FromWielder:      true,
			Damage:           25,
			Knockback:        15,
			UpBias:           0.3,
		},
		Shockwave: ShockwaveConfig{
			Radius:    3,
			Damage:    10,
			Knockback: 10,
			MinUp:     0.5,
		},
		Targets: component.CategoryEnemy,
		Ground:  component.CategoryGround,
	}
}

func (c HammerConfig) Validate() error {
	if err := c.Scaler.Validate(); err != nil {
		return err
	}
	switch {
	case c.SwingSpeed <= 0:
		return fmt.Errorf("%w: swing speed %v", ErrInvalidHammerConfig, c.SwingSpeed)
	case c.SwingDuration <= 0:
		return fmt.Errorf("%w: swing duration %v", ErrInvalidHammerConfig, c.SwingDuration)
	case c.WatchdogTimeout <= 0:
		return fmt.Errorf("%w: watchdog timeout %v", ErrInvalidHammerConfig, c.WatchdogTimeout)
	case c.ImpactPause < 0:
		return fmt.Errorf("%w: impact pause %v", ErrInvalidHammerConfig, c.ImpactPause)
	case c.Wave.LengthMultiplier < 0 || c.Wave.Width < 0:
		return fmt.Errorf("%w: wave size", ErrInvalidHammerConfig)
	case c.Shockwave.Radius < 0 || c.GroundCheckRadius < 0:
		return fmt.Errorf("%w: negative radius", ErrInvalidHammerConfig)
	}
	if _, ok := easings[strings.ToLower(c.Ease)]; !ok && c.Ease != "" {
		return fmt.Errorf("%w: unknown ease %q", ErrInvalidHammerConfig, c.Ease)
	}
	return nil
}

var easings = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"in_quad":     ease.InQuad,
	"out_quad":    ease.OutQuad,
	"in_out_quad": ease.InOutQuad,
	"in_cubic":    ease.InCubic,
	"out_cubic":   ease.OutCubic,
	"in_sine":     ease.InSine,
	"out_sine":    ease.OutSine,
	"out_back":    ease.OutBack,
	"out_bounce":  ease.OutBounce,
}

func easingFor(name string) ease.TweenFunc {
	if fn, ok := easings[strings.ToLower(name)]; ok {
		return fn
	}
	return ease.Linear
}

// WeaponBody is the physical presence of the hammer head.
type WeaponBody interface {
	MoveTo(p cp.Vector)
	SetFootprintEnabled(on bool)
}

// SoundPlayer plays named one-shot cues. Unknown names are ignored.
type SoundPlayer interface {
	Play(name string)
}

// WaveDebug and ShockwaveDebug remember the last released areas for drawing.
type WaveDebug struct {
	Center, Size cp.Vector
	Hits         int
	Valid        bool
}

type ShockwaveDebug struct {
	Center cp.Vector
	Radius float64
	Hits   int
	Valid  bool
}

// Hammer is the health-linked melee weapon. It swings through a fixed phase
// cycle and releases a directional wave on impact and a radial shockwave
// when the head meets the ground.
type Hammer struct {
	ID    component.EntityID
	Owner component.EntityID

	cfg      HammerConfig
	ease     ease.TweenFunc
	scaler   *component.Scaler
	spatial  component.SpatialQuery
	resolver *component.AreaResolver
	wielder  component.HealthComponent

	Rig   WeaponBody
	Sound SoundPlayer

	wielderPos cp.Vector
	active     bool

	phase     SwingPhase
	dir       Direction
	aim       cp.Vector
	angle     float64
	clock     time.Duration
	startTime time.Duration
	phaseTime time.Duration

	waveFired  bool
	shockFired bool
	hits       *component.HitSet

	LastWave      WaveDebug
	LastShockwave ShockwaveDebug
	// WatchdogResets counts forced recoveries.
	WatchdogResets int
}

// NewHammer builds a hammer owned by the wielder. wielder is the ledger that
// receives self-damage and may be nil.
func NewHammer(id, owner component.EntityID, cfg HammerConfig, scaler *component.Scaler, spatial component.SpatialQuery, resolver *component.AreaResolver, wielder component.HealthComponent) (*Hammer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if scaler == nil {
		return nil, fmt.Errorf("%w: nil scaler", ErrInvalidHammerConfig)
	}
	if resolver != nil {
		resolver.Owner = owner
	}
	return &Hammer{
		ID:       id,
		Owner:    owner,
		cfg:      cfg,
		ease:     easingFor(cfg.Ease),
		scaler:   scaler,
		spatial:  spatial,
		resolver: resolver,
		wielder:  wielder,
		active:   true,
		hits:     component.NewHitSet(),
	}, nil
}

func (h *Hammer) Config() HammerConfig { return h.cfg }

// Reconfigure swaps in new tuning between ticks. Geometry bounds belong to
// the scaler and are not touched.
func (h *Hammer) Reconfigure(cfg HammerConfig) error {
	if h == nil {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	h.cfg = cfg
	h.ease = easingFor(cfg.Ease)
	return nil
}

func (h *Hammer) Phase() SwingPhase            { return h.phase }
func (h *Hammer) Angle() float64               { return h.angle }
func (h *Hammer) SwingDirection() Direction    { return h.dir }
func (h *Hammer) Hits() *component.HitSet      { return h.hits }
func (h *Hammer) Active() bool                 { return h.active }
func (h *Hammer) Scaler() *component.Scaler    { return h.scaler }
func (h *Hammer) Geometry() component.Geometry { return h.scaler.Current() }

// FootprintActive reports whether the damage footprint is live. A stowed
// hammer never deals contact damage.
func (h *Hammer) FootprintActive() bool {
	return h.active && (h.phase == PhaseDescending || h.phase == PhaseImpacted)
}

// SetActive equips the hammer to the world (true) or stows it (false). A
// stowed hammer ignores triggers and freezes mid-swing with its footprint
// off; the watchdog still recovers it.
func (h *Hammer) SetActive(on bool) {
	if h == nil {
		return
	}
	h.active = on
	h.setFootprint(h.FootprintActive())
}

// SetWielderPosition moves the pivot with the wielder.
func (h *Hammer) SetWielderPosition(p cp.Vector) {
	if h == nil {
		return
	}
	h.wielderPos = p
	h.syncRig()
}

func (h *Hammer) Pivot() cp.Vector {
	return h.wielderPos.Add(h.cfg.PivotOffset)
}

// HeadPosition returns the head's world position. Angle 0 points straight
// up; positive angles lean right.
func (h *Hammer) HeadPosition() cp.Vector {
	l := h.scaler.Current().HeadOffset
	return h.Pivot().Add(cp.Vector{X: math.Sin(h.angle) * l, Y: -math.Cos(h.angle) * l})
}

// HandleEnd returns where the visible handle ends.
func (h *Hammer) HandleEnd() cp.Vector {
	l := h.scaler.Current().HandleLength
	return h.Pivot().Add(cp.Vector{X: math.Sin(h.angle) * l, Y: -math.Cos(h.angle) * l})
}

// Trigger requests a swing. Requests while a swing is underway, while the
// hammer is stowed, or aimed at the hammer's own drag handle are ignored.
func (h *Hammer) Trigger(sample TriggerSample) bool {
	if h == nil || !sample.Triggered {
		return false
	}
	if h.phase != PhaseIdle || !h.active {
		return false
	}
	if h.spatial != nil && h.ID != component.NoEntity && h.spatial.OverlapPoint(sample.Aim) == h.ID {
		return false
	}
	h.aim = sample.Aim
	h.phase = PhaseRaisedNeutral
	h.startTime = h.clock
	h.phaseTime = 0
	h.play("swing")
	return true
}

// Advance moves the swing forward by dt.
func (h *Hammer) Advance(dt time.Duration) {
	if h == nil {
		return
	}
	h.clock += dt
	if h.phase != PhaseIdle && h.clock-h.startTime > h.cfg.WatchdogTimeout {
		log.Printf("hammer: swing stuck in %s for %v, resetting", h.phase, h.clock-h.startTime)
		h.WatchdogResets++
		h.reset()
		return
	}
	if !h.active {
		return
	}

	switch h.phase {
	case PhaseRaisedNeutral:
		h.enterDescending()
		h.descend(dt)
	case PhaseDescending:
		h.descend(dt)
	case PhaseImpacted:
		h.impacted(dt)
	case PhaseRecovering:
		h.recover(dt)
	}
	h.syncRig()
}

// HandleContact is the direct-contact fallback for targets the footprint
// touches. Contact shares the swing's hit set with the wave, so a target
// struck on the way down gets the wave's knockback here instead.
func (h *Hammer) HandleContact(target component.EntityID) bool {
	if h == nil || h.resolver == nil || !h.FootprintActive() {
		return false
	}
	force := component.WaveKnockback(float64(h.dir), h.cfg.Wave.UpBias, h.cfg.Wave.Knockback)
	if h.resolver.Contact(h.hits, target, h.cfg.Wave.Damage, force) {
		if h.cfg.DebugLogs {
			log.Printf("hammer: direct contact with %d", target)
		}
		return true
	}
	return false
}

// Reset forces the hammer back to idle.
func (h *Hammer) Reset() {
	if h == nil {
		return
	}
	h.reset()
}

func (h *Hammer) enterDescending() {
	h.dir = Left
	if h.aim.X-h.wielderPos.X > 0 {
		h.dir = Right
	}
	h.hits.Reset()
	h.waveFired = false
	h.shockFired = false
	h.LastWave.Valid = false
	h.LastShockwave.Valid = false
	h.setFootprint(true)
	h.startTime = h.clock
	h.phaseTime = 0
	h.phase = PhaseDescending
	if h.cfg.DebugLogs {
		log.Printf("hammer: swing %s", h.dir)
	}
}

func (h *Hammer) extreme() float64 {
	return float64(h.dir) * h.cfg.SwingAngle
}

func (h *Hammer) eased(p float64) float64 {
	p = common.Clamp01(p)
	return float64(h.ease(float32(p), 0, 1, 1))
}

func (h *Hammer) progress(speed float64) float64 {
	return speed * float64(h.phaseTime) / float64(h.cfg.SwingDuration)
}

func (h *Hammer) descend(dt time.Duration) {
	h.phaseTime += dt
	p := h.progress(h.cfg.SwingSpeed)
	if p >= 1 {
		h.angle = h.extreme()
		h.enterImpacted()
		return
	}
	h.angle = h.extreme() * h.eased(p)
}

func (h *Hammer) enterImpacted() {
	h.phase = PhaseImpacted
	h.phaseTime = 0
	h.syncRig()
	h.play("impact")
	if !h.waveFired {
		h.waveFired = true
		h.releaseWave()
	}
	h.checkGround()
}

func (h *Hammer) impacted(dt time.Duration) {
	h.phaseTime += dt
	h.checkGround()
	if h.phaseTime >= h.cfg.ImpactPause {
		h.phase = PhaseRecovering
		h.phaseTime = 0
		h.setFootprint(false)
	}
}

func (h *Hammer) recover(dt time.Duration) {
	h.phaseTime += dt
	p := h.progress(h.cfg.SwingSpeed * 0.5)
	if p >= 1 {
		if h.cfg.DebugLogs {
			log.Printf("hammer: swing complete, hit %d", h.hits.Len())
		}
		h.reset()
		return
	}
	h.angle = h.extreme() * (1 - h.eased(p))
}

func (h *Hammer) reset() {
	h.phase = PhaseIdle
	h.angle = 0
	h.phaseTime = 0
	h.setFootprint(false)
	h.syncRig()
}

func (h *Hammer) releaseWave() {
	p := component.WaveParams{
		Wielder:          h.Pivot(),
		Head:             h.HeadPosition(),
		Direction:        float64(h.dir),
		LengthMultiplier: h.cfg.Wave.LengthMultiplier,
		Width:            h.cfg.Wave.Width,
		FromWielder:      h.cfg.Wave.FromWielder,
		Damage:           h.cfg.Wave.Damage,
		Knockback:        h.cfg.Wave.Knockback,
		UpBias:           h.cfg.Wave.UpBias,
		Mask:             h.cfg.Targets,
	}
	center, size := component.WaveRegion(p)
	n := 0
	if h.resolver != nil {
		n = h.resolver.Wave(h.hits, p)
	}
	h.LastWave = WaveDebug{Center: center, Size: size, Hits: n, Valid: true}
	if h.cfg.DebugLogs {
		log.Printf("hammer: wave reach=%.2f length=%.2f %s hit %d", p.Wielder.Distance(p.Head), size.X, h.dir, n)
	}
}

func (h *Hammer) checkGround() {
	if h.shockFired || h.spatial == nil {
		return
	}
	head := h.HeadPosition()
	if len(h.spatial.OverlapCircle(head, h.cfg.GroundCheckRadius, h.cfg.Ground)) == 0 {
		return
	}
	h.shockFired = true
	h.play("shockwave")

	p := component.ShockwaveParams{
		Center:    head,
		Radius:    h.cfg.Shockwave.Radius,
		Damage:    h.cfg.Shockwave.Damage,
		Knockback: h.cfg.Shockwave.Knockback,
		MinUp:     h.cfg.Shockwave.MinUp,
		Mask:      h.cfg.Targets,
	}
	n := 0
	if h.resolver != nil {
		n = h.resolver.Shockwave(h.hits, p)
	}
	h.LastShockwave = ShockwaveDebug{Center: head, Radius: p.Radius, Hits: n, Valid: true}
	if h.cfg.DebugLogs {
		log.Printf("hammer: ground impact, shockwave hit %d", n)
	}

	if h.wielder != nil && h.cfg.SelfDamage > 0 {
		h.wielder.ApplyDamage(h.cfg.SelfDamage, component.CombatEvent{
			Type:       component.EventDamageApplied,
			Source:     component.SourceSelf,
			AttackerID: h.Owner,
			TargetID:   h.Owner,
			Damage:     h.cfg.SelfDamage,
			Pos:        head,
		})
	}
}

func (h *Hammer) setFootprint(on bool) {
	if h.Rig != nil {
		h.Rig.SetFootprintEnabled(on)
	}
}

func (h *Hammer) syncRig() {
	if h.Rig != nil {
		h.Rig.MoveTo(h.HeadPosition())
	}
}

func (h *Hammer) play(name string) {
	if h.Sound != nil {
		h.Sound.Play(name)
	}
}
