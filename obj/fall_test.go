package obj

import "testing"

func TestFallTracker(t *testing.T) {
	cfg := FallConfig{SafeDistance: 2, DamagePerUnit: 10, DeathFloorY: 100}

	tests := []struct {
		name     string
		path     []float64 // airborne samples, then a landing sample
		land     float64
		wantDmg  float64
		wantDead bool
	}{
		{"short hop", []float64{0, -0.5}, 0, 0, false},
		{"exactly safe", []float64{0}, 2, 0, false},
		{"long drop", []float64{0, -1, 1}, 3, 20, false},
		{"rounded", []float64{0}, 2.26, 3, false},
		{"fell out", []float64{0, 50}, 101, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFallTracker(cfg)
			if dmg, _ := f.Update(0, true); dmg != 0 {
				t.Fatalf("standing should not hurt, got %v", dmg)
			}
			for _, y := range tt.path {
				if dmg, dead := f.Update(y, false); dmg != 0 || dead {
					t.Fatalf("airborne sample %v returned dmg=%v dead=%v", y, dmg, dead)
				}
			}
			dmg, dead := f.Update(tt.land, !tt.wantDead)
			if dmg != tt.wantDmg || dead != tt.wantDead {
				t.Fatalf("expected dmg=%v dead=%v, got dmg=%v dead=%v", tt.wantDmg, tt.wantDead, dmg, dead)
			}
			if f.Airborne() {
				t.Fatalf("landing should end the fall")
			}
		})
	}
}

func TestFallTrackerResetDropsPeak(t *testing.T) {
	f := NewFallTracker(FallConfig{SafeDistance: 1, DamagePerUnit: 10, DeathFloorY: 100})
	f.Update(-10, false)
	f.Reset()
	if dmg, _ := f.Update(0, true); dmg != 0 {
		t.Fatalf("expected no damage after reset, got %v", dmg)
	}
}
