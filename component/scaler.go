package component

import (
	"errors"
	"fmt"

	"github.com/milk9111/healthhammer/common"
)

var ErrInvalidScalerBounds = errors.New("scaler: invalid bounds")

// ScalerConfig bounds the weapon geometry.
type ScalerConfig struct {
	HandleMin float64
	HandleMax float64
	HeadMin   float64
	HeadMax   float64
}

func (c ScalerConfig) Validate() error {
	if !(c.HandleMax > c.HandleMin) {
		return fmt.Errorf("%w: handle max %v must exceed min %v", ErrInvalidScalerBounds, c.HandleMax, c.HandleMin)
	}
	if c.HeadMax < c.HeadMin {
		return fmt.Errorf("%w: head max %v below min %v", ErrInvalidScalerBounds, c.HeadMax, c.HeadMin)
	}
	return nil
}

// Geometry is one consistent sample of the weapon shape.
type Geometry struct {
	HandleLength float64
	HeadOffset   float64
	Fraction     float64
}

// Scaler maps a health fraction onto weapon geometry.
type Scaler struct {
	cfg ScalerConfig
	cur Geometry

	Handle HandleVisual
	Head   HeadVisual
}

func NewScaler(cfg ScalerConfig) (*Scaler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Scaler{cfg: cfg}
	s.SyncState(cfg.HandleMax)
	return s, nil
}

func (s *Scaler) Config() ScalerConfig {
	if s == nil {
		return ScalerConfig{}
	}
	return s.cfg
}

// TargetFor returns the handle length a health fraction maps to.
func (s *Scaler) TargetFor(fraction float64) float64 {
	return common.Lerp(s.cfg.HandleMin, s.cfg.HandleMax, common.Clamp01(fraction))
}

// Scale computes the geometry for a health fraction without applying it.
func (s *Scaler) Scale(fraction float64) Geometry {
	return s.geometryFor(s.TargetFor(fraction))
}

func (s *Scaler) geometryFor(target float64) Geometry {
	handle := common.Clamp(target, s.cfg.HandleMin, s.cfg.HandleMax)
	f := common.Clamp01(common.InverseLerp(s.cfg.HandleMin, s.cfg.HandleMax, handle))
	head := common.Clamp(common.Lerp(s.cfg.HeadMin, s.cfg.HeadMax, f), s.cfg.HeadMin, s.cfg.HeadMax)
	return Geometry{HandleLength: handle, HeadOffset: head, Fraction: f}
}

// Update samples the ledger once and applies the resulting geometry.
func (s *Scaler) Update(h HealthComponent) Geometry {
	if s == nil {
		return Geometry{}
	}
	f := 0.0
	if h != nil {
		f = h.HealthFraction()
	}
	return s.SyncState(s.TargetFor(f))
}

// SyncState applies geometry for an absolute handle length. Mode switches use
// it directly; Update goes through it too so both paths agree.
func (s *Scaler) SyncState(target float64) Geometry {
	if s == nil {
		return Geometry{}
	}
	s.cur = s.geometryFor(target)
	if s.Handle != nil {
		s.Handle.SetHandleLength(s.cur.HandleLength)
	}
	if s.Head != nil {
		s.Head.SetHeadOffset(s.cur.HeadOffset)
	}
	return s.cur
}

// Current returns the last applied geometry.
func (s *Scaler) Current() Geometry {
	if s == nil {
		return Geometry{}
	}
	return s.cur
}
