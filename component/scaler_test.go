package component

import (
	"errors"
	"math"
	"testing"

	"pgregory.net/rapid"
)

type geometryRecorder struct {
	handle, head float64
	writes       int
}

func (g *geometryRecorder) SetHandleLength(v float64) { g.handle = v; g.writes++ }
func (g *geometryRecorder) SetHeadOffset(v float64)   { g.head = v; g.writes++ }

type fixedFraction float64

func (f fixedFraction) IsAlive() bool                         { return f > 0 }
func (f fixedFraction) ApplyDamage(float64, CombatEvent) bool { return false }
func (f fixedFraction) HealthFraction() float64               { return float64(f) }
func (f fixedFraction) CurrentHP() float64                    { return float64(f) }
func (f fixedFraction) MaxHP() float64                        { return 1 }

func defaultScalerConfig() ScalerConfig {
	return ScalerConfig{HandleMin: 0.5, HandleMax: 3, HeadMin: 0.5, HeadMax: 3}
}

func TestScalerConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  ScalerConfig
		ok   bool
	}{
		{"default", defaultScalerConfig(), true},
		{"equal_head_bounds", ScalerConfig{HandleMin: 1, HandleMax: 2, HeadMin: 1, HeadMax: 1}, true},
		{"equal_handle_bounds", ScalerConfig{HandleMin: 1, HandleMax: 1, HeadMin: 0, HeadMax: 1}, false},
		{"inverted_handle", ScalerConfig{HandleMin: 3, HandleMax: 1, HeadMin: 0, HeadMax: 1}, false},
		{"inverted_head", ScalerConfig{HandleMin: 1, HandleMax: 3, HeadMin: 2, HeadMax: 1}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewScaler(c.cfg)
			if c.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !c.ok && !errors.Is(err, ErrInvalidScalerBounds) {
				t.Fatalf("expected ErrInvalidScalerBounds, got %v", err)
			}
		})
	}
}

func TestScalerHalfHealth(t *testing.T) {
	s, _ := NewScaler(defaultScalerConfig())
	h, _ := NewHealth(100)
	h.ApplyDamage(50, CombatEvent{})

	g := s.Update(h)
	if math.Abs(g.HandleLength-1.75) > 1e-9 || math.Abs(g.HeadOffset-1.75) > 1e-9 {
		t.Fatalf("expected 1.75/1.75 at half health, got %v/%v", g.HandleLength, g.HeadOffset)
	}
}

func TestScalerWritesVisualsTogether(t *testing.T) {
	s, _ := NewScaler(defaultScalerConfig())
	rec := &geometryRecorder{}
	s.Handle = rec
	s.Head = rec

	g := s.SyncState(2)
	if rec.writes != 2 || rec.handle != g.HandleLength || rec.head != g.HeadOffset {
		t.Fatalf("visuals out of sync with geometry: %+v vs %+v", rec, g)
	}

	s.Handle = nil
	s.Head = nil
	s.SyncState(1) // missing visuals are skipped
}

func TestScalerClampsOutOfRangeTargets(t *testing.T) {
	s, _ := NewScaler(defaultScalerConfig())
	if g := s.SyncState(10); g.HandleLength != 3 || g.HeadOffset != 3 {
		t.Fatalf("expected clamp to max, got %+v", g)
	}
	if g := s.SyncState(-10); g.HandleLength != 0.5 || g.HeadOffset != 0.5 {
		t.Fatalf("expected clamp to min, got %+v", g)
	}
}

func TestScalerPathsAgree(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := rapid.Float64Range(0, 1).Draw(t, "fraction")
		s, _ := NewScaler(defaultScalerConfig())

		viaHealth := s.Update(fixedFraction(f))
		viaSync := s.SyncState(s.TargetFor(f))

		if viaHealth != viaSync {
			t.Fatalf("f=%v: health path %+v, sync path %+v", f, viaHealth, viaSync)
		}
	})
}

func TestScalerStaysWithinBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo := rapid.Float64Range(0.1, 5).Draw(t, "handle_min")
		span := rapid.Float64Range(0.01, 5).Draw(t, "handle_span")
		headLo := rapid.Float64Range(0, 5).Draw(t, "head_min")
		headSpan := rapid.Float64Range(0, 5).Draw(t, "head_span")
		cfg := ScalerConfig{HandleMin: lo, HandleMax: lo + span, HeadMin: headLo, HeadMax: headLo + headSpan}
		s, err := NewScaler(cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		f := rapid.Float64Range(-2, 3).Draw(t, "fraction")
		g := s.Scale(f)
		if g.HandleLength < cfg.HandleMin || g.HandleLength > cfg.HandleMax {
			t.Fatalf("handle %v outside [%v,%v]", g.HandleLength, cfg.HandleMin, cfg.HandleMax)
		}
		if g.HeadOffset < cfg.HeadMin || g.HeadOffset > cfg.HeadMax {
			t.Fatalf("head %v outside [%v,%v]", g.HeadOffset, cfg.HeadMin, cfg.HeadMax)
		}
	})
}
