package prefabs

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLoadEmbeddedPrefabs(t *testing.T) {
	hammer, err := LoadHammerSpec()
	if err != nil {
		t.Fatalf("hammer: %v", err)
	}
	if hammer.Swing.AngleDeg != 120 || hammer.Swing.Ease != "out_quad" {
		t.Fatalf("unexpected swing %+v", hammer.Swing)
	}
	if hammer.Swing.Duration <= 0 {
		t.Fatalf("swing duration should decode from a duration string")
	}

	player, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	if player.Stun != 200*time.Millisecond {
		t.Fatalf("expected 200ms stun, got %v", player.Stun)
	}

	arena, err := LoadArenaSpec()
	if err != nil {
		t.Fatalf("arena: %v", err)
	}
	if len(arena.Ground) == 0 || len(arena.Enemies) == 0 {
		t.Fatalf("arena should have ground and enemies: %+v", arena)
	}
	if arena.Background == nil {
		t.Fatalf("arena background should parse")
	}
}

func TestHammerSpecValidate(t *testing.T) {
	cases := []struct {
		name string
		spec HammerSpec
		ok   bool
	}{
		{"complete", HammerSpec{Handle: RangeSpec{Min: 1, Max: 2}, Swing: SwingSpec{Duration: time.Second}}, true},
		{"missing handle", HammerSpec{Swing: SwingSpec{Duration: time.Second}}, false},
		{"missing duration", HammerSpec{Handle: RangeSpec{Min: 1, Max: 2}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.spec.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("expected ErrInvalidSpec, got %v", err)
			}
		})
	}
}

func TestEnemyForAppliesOverrides(t *testing.T) {
	base := EnemySpec{Name: "grunt", Health: 60, ContactDamage: 10, Flash: 100 * time.Millisecond}
	spawn := EnemySpawnSpec{Overrides: map[string]any{"health": 120, "contact_damage": 20}}

	got, err := spawn.EnemyFor(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Health != 120 || got.ContactDamage != 20 {
		t.Fatalf("overrides not applied: %+v", got)
	}
	if got.Name != "grunt" || got.Flash != base.Flash {
		t.Fatalf("untouched fields should keep base values: %+v", got)
	}
	if base.Health != 60 {
		t.Fatalf("base spec was modified")
	}

	same, err := EnemySpawnSpec{}.EnemyFor(base)
	if err != nil || same != base {
		t.Fatalf("no overrides should return base, got %+v (%v)", same, err)
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{`"#1d2330"`, color.NRGBA{R: 0x1d, G: 0x23, B: 0x30, A: 0xff}, true},
		{`"ff000080"`, color.NRGBA{R: 0xff, A: 0x80}, true},
		{`"#abc"`, color.NRGBA{}, false},
		{`"#zz0000"`, color.NRGBA{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tc.in), &c)
			if !tc.ok {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Color != tc.want {
				t.Fatalf("got %v, want %v", c.Color, tc.want)
			}
		})
	}
}
