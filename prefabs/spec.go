package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type RangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Mass   float64 `yaml:"mass"`
}

// AudioSpec describes a synthesized cue: a short tone at Frequency Hz.
type AudioSpec struct {
	Name      string        `yaml:"name"`
	Frequency float64       `yaml:"frequency"`
	Length    time.Duration `yaml:"length"`
	Volume    float64       `yaml:"volume"`
}

type SwingSpec struct {
	Speed       float64       `yaml:"speed"`
	Duration    time.Duration `yaml:"duration"`
	AngleDeg    float64       `yaml:"angle_deg"`
	Ease        string        `yaml:"ease"`
	ImpactPause time.Duration `yaml:"impact_pause"`
	Watchdog    time.Duration `yaml:"watchdog"`
}

type WaveSpec struct {
	LengthMultiplier float64 `yaml:"length_multiplier"`
	Width            float64 `yaml:"width"`
	FromWielder      bool    `yaml:"from_wielder"`
	Damage           float64 `yaml:"damage"`
	Knockback        float64 `yaml:"knockback"`
	UpBias           float64 `yaml:"up_bias"`
}

type ShockwaveSpec struct {
	Radius    float64 `yaml:"radius"`
	Damage    float64 `yaml:"damage"`
	Knockback float64 `yaml:"knockback"`
	MinUp     float64 `yaml:"min_up"`
}

type HammerSpec struct {
	Name              string        `yaml:"name"`
	Handle            RangeSpec     `yaml:"handle"`
	Head              RangeSpec     `yaml:"head"`
	Icon              RangeSpec     `yaml:"icon"`
	Swing             SwingSpec     `yaml:"swing"`
	PivotOffset       VectorSpec    `yaml:"pivot_offset"`
	HandleRadius      float64       `yaml:"handle_radius"`
	HeadRadius        float64       `yaml:"head_radius"`
	GroundCheckRadius float64       `yaml:"ground_check_radius"`
	Wave              WaveSpec      `yaml:"wave"`
	Shockwave         ShockwaveSpec `yaml:"shockwave"`
	SelfDamage        float64       `yaml:"self_damage"`
	StartEquipped     bool          `yaml:"start_equipped"`
	DebugLogs         bool          `yaml:"debug_logs"`
	Audio             []AudioSpec   `yaml:"audio"`
}

func LoadHammerSpec() (*HammerSpec, error) {
	spec, err := LoadSpec[HammerSpec]("hammer.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate catches values that are missing from the file rather than merely
// out of range; range checks belong to the configs built from a HammerSpec.
func (s HammerSpec) Validate() error {
	switch {
	case s.Handle.Max == 0 && s.Handle.Min == 0:
		return fmt.Errorf("%w: hammer %q: handle range missing", ErrInvalidSpec, s.Name)
	case s.Swing.Duration <= 0:
		return fmt.Errorf("%w: hammer %q: swing.duration missing", ErrInvalidSpec, s.Name)
	}
	return nil
}

type FallSpec struct {
	SafeDistance  float64 `yaml:"safe_distance"`
	DamagePerUnit float64 `yaml:"damage_per_unit"`
	DeathFloorY   float64 `yaml:"death_floor_y"`
}

type PlayerSpec struct {
	Name      string        `yaml:"name"`
	Health    float64       `yaml:"health"`
	Flash     time.Duration `yaml:"flash"`
	Collider  ColliderSpec  `yaml:"collider"`
	MoveSpeed float64       `yaml:"move_speed"`
	Stun      time.Duration `yaml:"stun"`
	Fall      FallSpec      `yaml:"fall"`
	SaveKey   string        `yaml:"save_key"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Health <= 0 {
		return nil, fmt.Errorf("%w: player %q: health %v", ErrInvalidSpec, spec.Name, spec.Health)
	}
	return &spec, nil
}

type EnemySpec struct {
	Name              string        `yaml:"name"`
	Health            float64       `yaml:"health"`
	Flash             time.Duration `yaml:"flash"`
	Collider          ColliderSpec  `yaml:"collider"`
	ContactDamage     float64       `yaml:"contact_damage"`
	KnockbackOnPlayer float64       `yaml:"knockback_on_player"`
	KnockbackOnSelf   float64       `yaml:"knockback_on_self"`
	UpBias            float64       `yaml:"up_bias"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Health <= 0 {
		return nil, fmt.Errorf("%w: enemy %q: health %v", ErrInvalidSpec, spec.Name, spec.Health)
	}
	return &spec, nil
}

// BoxSpec is an axis-aligned box given by its top-left corner and size.
type BoxSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type EnemySpawnSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	// Overrides patches fields of enemy.yaml for this spawn only.
	Overrides map[string]any `yaml:"overrides"`
}

type ArenaSpec struct {
	Name          string           `yaml:"name"`
	Gravity       float64          `yaml:"gravity"`
	PixelsPerUnit float64          `yaml:"pixels_per_unit"`
	Background    *YAMLColor       `yaml:"background"`
	Ground        []BoxSpec        `yaml:"ground"`
	PlayerSpawn   VectorSpec       `yaml:"player_spawn"`
	Enemies       []EnemySpawnSpec `yaml:"enemies"`
}

func LoadArenaSpec() (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec]("arena.yaml")
	if err != nil {
		return nil, err
	}
	for i, g := range spec.Ground {
		if g.W <= 0 || g.H <= 0 {
			return nil, fmt.Errorf("%w: arena %q: ground[%d] has size %vx%v", ErrInvalidSpec, spec.Name, i, g.W, g.H)
		}
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
