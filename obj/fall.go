package obj

import "math"

// FallConfig tunes landing damage. Y grows downward.
type FallConfig struct {
	SafeDistance  float64
	DamagePerUnit float64
	// DeathFloorY kills anything that falls below it.
	DeathFloorY float64
}

// FallTracker measures the drop between the highest airborne point and the
// landing point.
type FallTracker struct {
	cfg      FallConfig
	airborne bool
	peakY    float64
}

func NewFallTracker(cfg FallConfig) *FallTracker {
	return &FallTracker{cfg: cfg}
}

// Update feeds the current position and grounded state. It returns the
// landing damage, if any, and whether the death floor was crossed.
func (f *FallTracker) Update(y float64, grounded bool) (damage float64, fellOut bool) {
	if f == nil {
		return 0, false
	}
	if y > f.cfg.DeathFloorY {
		f.airborne = false
		return 0, true
	}
	if !grounded {
		if !f.airborne {
			f.airborne = true
			f.peakY = y
		}
		f.peakY = math.Min(f.peakY, y)
		return 0, false
	}
	if !f.airborne {
		return 0, false
	}
	f.airborne = false
	drop := y - f.peakY
	if drop <= f.cfg.SafeDistance {
		return 0, false
	}
	return math.Round((drop - f.cfg.SafeDistance) * f.cfg.DamagePerUnit), false
}

// Airborne reports whether a fall is being tracked.
func (f *FallTracker) Airborne() bool {
	return f != nil && f.airborne
}

func (f *FallTracker) Reset() {
	if f == nil {
		return
	}
	f.airborne = false
}
