package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/healthhammer/obj"
	"github.com/milk9111/healthhammer/prefabs"
	"github.com/milk9111/healthhammer/save"
	"github.com/milk9111/healthhammer/system"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	hurtAmount = 10
)

type GameOptions struct {
	Debug bool
	Watch bool
	Mute  bool
}

type Game struct {
	frames int
	debug  bool

	world   *system.World
	input   *obj.Input
	view    obj.View
	bg      color.Color
	sound   *toneBank
	store   save.Store
	watcher *prefabs.Watcher

	lastReload time.Time
}

func NewGame(opts GameOptions) (*Game, error) {
	specs, err := system.LoadSpecs()
	if err != nil {
		return nil, err
	}
	world, err := system.NewWorld(specs)
	if err != nil {
		return nil, err
	}

	ppu := specs.Arena.PixelsPerUnit
	if ppu <= 0 {
		ppu = 32
	}
	view := obj.View{
		PixelsPerUnit: ppu,
		Origin:        cp.Vector{X: -baseWidth / 2 / ppu, Y: -baseHeight / 2 / ppu},
	}

	g := &Game{
		debug: opts.Debug,
		world: world,
		input: obj.NewInput(view),
		view:  view,
		bg:    colornames.Black,
	}
	if specs.Arena.Background != nil {
		g.bg = specs.Arena.Background.Color
	}

	if !opts.Mute {
		g.sound = newToneBank(audio.NewContext(sampleRate), specs.Hammer.Audio)
		world.Player.Hammer.Sound = g.sound
	}

	if m, err := save.Open("healthhammer"); err != nil {
		log.Printf("Game: saves disabled: %v", err)
	} else {
		g.store = m
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("Game: prefab watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	g.applyReloads()

	g.input.Update()
	if g.input.DebugPressed {
		g.debug = !g.debug
	}
	if g.input.HurtPressed {
		g.world.HurtPlayer(hurtAmount)
	}
	if g.input.HealPressed {
		g.world.HealPlayer(hurtAmount)
	}
	if g.input.SavePressed {
		g.saveHealth()
	}
	if g.input.LoadPressed {
		g.loadHealth()
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	g.world.Update(g.input, dt)
	return nil
}

func (g *Game) saveKey() string {
	if k := g.world.Specs.Player.SaveKey; k != "" {
		return k
	}
	return "player_health"
}

func (g *Game) saveHealth() {
	if g.store == nil {
		log.Printf("Game: saves disabled")
		return
	}
	if err := save.SaveHealth(g.store, g.saveKey(), g.world.Player.Health); err != nil {
		log.Printf("Game: save failed: %v", err)
		return
	}
	log.Printf("Game: saved health %.0f", g.world.Player.Health.Current)
}

func (g *Game) loadHealth() {
	err := save.RestoreHealth(g.store, g.saveKey(), g.world.Player.Health)
	switch {
	case errors.Is(err, save.ErrNoSave):
		log.Printf("Game: nothing saved yet")
	case err != nil:
		log.Printf("Game: load failed: %v", err)
	default:
		log.Printf("Game: loaded health %.0f", g.world.Player.Health.Current)
	}
}

// applyReloads drains watcher events between ticks.
func (g *Game) applyReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Changed():
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors():
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("Game: watch error: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	if mt, ok := prefabs.OverrideModTime(name); ok && !mt.After(g.lastReload) {
		return
	}
	g.lastReload = time.Now()

	switch name {
	case "hammer.yaml":
		spec, err := prefabs.LoadHammerSpec()
		if err == nil {
			err = g.world.ReloadHammer(spec)
		}
		if err != nil {
			log.Printf("Game: hammer reload rejected: %v", err)
		}
	default:
		log.Printf("Game: %s changed; restart to apply", name)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)

	w := g.world
	for _, e := range w.Enemies {
		g.drawActor(screen, e.Body.Position(), e.Config().Width, e.Config().Height, colornames.Indianred, e.Flashing())
	}
	p := w.Player
	pc := p.Config()
	g.drawActor(screen, p.Body.Position(), pc.Width, pc.Height, colornames.Steelblue, p.Flashing())
	p.Hammer.Draw(screen, g.view)

	if g.debug {
		w.Collision.DebugDraw(screen, g.view)
		p.Hammer.DrawDebug(screen, g.view)
	}

	geo := p.Hammer.Geometry()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS %.0f  hp %.0f/%.0f  hammer %s %s  handle %.2f head %.2f\nhits %d kills %d  enemies %d  player %s\n[click] swing  [A/D] move  [I] equip  [H/J] hurt/heal  [F5/F9] save/load  [F3] debug",
		ebiten.ActualFPS(), p.Health.CurrentHP(), p.Health.MaxHP(), p.Equip.Mode(), p.Hammer.Phase(), geo.HandleLength, geo.HeadOffset,
		w.Stats.Hits, w.Stats.Kills, len(w.Enemies), p.StateName(),
	))
}

func (g *Game) drawActor(screen *ebiten.Image, pos cp.Vector, width, height float64, c color.Color, flashing bool) {
	if flashing {
		c = colornames.White
	}
	x, y := g.view.WorldToScreen(cp.Vector{X: pos.X - width/2, Y: pos.Y - height/2})
	s := g.view.PixelsPerUnit
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width*s), float32(height*s), c, false)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
