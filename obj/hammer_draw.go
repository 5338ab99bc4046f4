package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// Draw renders the hammer as a handle line and a head disc.
func (h *Hammer) Draw(screen *ebiten.Image, view View) {
	if h == nil || screen == nil || !h.active {
		return
	}
	px, py := view.WorldToScreen(h.Pivot())
	ex, ey := view.WorldToScreen(h.HandleEnd())
	hx, hy := view.WorldToScreen(h.HeadPosition())
	s := float32(view.scale())

	vector.StrokeLine(screen, float32(px), float32(py), float32(ex), float32(ey), 3, colornames.Burlywood, true)
	head := color.Color(colornames.Lightgrey)
	if h.FootprintActive() {
		head = colornames.Orangered
	}
	vector.DrawFilledCircle(screen, float32(hx), float32(hy), float32(h.cfg.HeadRadius)*s, head, true)
}

// DrawDebug outlines the last wave and shockwave areas.
func (h *Hammer) DrawDebug(screen *ebiten.Image, view View) {
	if h == nil || screen == nil {
		return
	}
	s := float32(view.scale())
	if w := h.LastWave; w.Valid {
		x, y := view.WorldToScreen(w.Center.Sub(w.Size.Mult(0.5)))
		vector.StrokeRect(screen, float32(x), float32(y), float32(w.Size.X)*s, float32(w.Size.Y)*s, 1, colornames.Yellow, false)
	}
	if sw := h.LastShockwave; sw.Valid {
		x, y := view.WorldToScreen(sw.Center)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(sw.Radius)*s, 1, colornames.Cyan, true)
	}
	gx, gy := view.WorldToScreen(h.HeadPosition())
	vector.StrokeCircle(screen, float32(gx), float32(gy), float32(h.cfg.GroundCheckRadius)*s, 1, colornames.Lime, true)
}
