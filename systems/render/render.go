// Package render draws a world with ebiten's vector and text packages.
package render

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/shapefighter/components"
	cfg "github.com/automoto/shapefighter/config"
	"github.com/automoto/shapefighter/fonts"
	"github.com/automoto/shapefighter/systems"
	"github.com/automoto/shapefighter/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"golang.org/x/image/font"
)

const (
	tickLength   = 0.15 // seconds of travel shown by the velocity tick
	ringPadding  = 4
	barGap       = 3
	labelSpacing = 12
)

// Renderer draws the active world scaled to the current screen size
type Renderer struct {
	width, height int
	rnd           func() float64
}

func NewRenderer() *Renderer {
	return &Renderer{
		width:  cfg.C.Width,
		height: cfg.C.Height,
		rnd:    rand.Float64,
	}
}

// Resize sets the screen size the arena is drawn into
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// ToArena converts a screen position, such as the cursor, to arena
// coordinates
func (r *Renderer) ToArena(x, y int) (float64, float64) {
	return float64(x) * cfg.Arena.Width / float64(r.width), float64(y) * cfg.Arena.Height / float64(r.height)
}

// Draw renders labels, menu items and, in a match, the arena and
// combatants. Screen shake offsets everything but the background.
func (r *Renderer) Draw(screen *ebiten.Image, w *world.World) {
	screen.Fill(cfg.UI.Background)

	ox, oy := systems.ShakeOffset(w, r.rnd, cfg.ScreenShake.Intensity)
	sx := float64(r.width) / cfg.Arena.Width
	sy := float64(r.height) / cfg.Arena.Height
	v := view{screen: screen, ox: ox, oy: oy, sx: sx, sy: sy}

	if w.Mode() == world.ModeMatch {
		v.drawArena()
		for _, e := range w.Combatants() {
			v.drawCombatant(e)
		}
	}

	for _, e := range w.Entries() {
		if lbl, ok := components.Lookup(e, components.Label); ok {
			face := fonts.Regular.Get()
			if lbl.Title {
				face = fonts.Title.Get()
			}
			v.centeredText(lbl.Text, face, components.Transform.Get(e), colorOf(e))
			continue
		}
		if item, ok := components.Lookup(e, components.MenuItem); ok {
			v.centeredText(item.Label, fonts.Bold.Get(), components.Transform.Get(e), colorOf(e))
		}
	}
}

// view maps arena coordinates to the screen
type view struct {
	screen *ebiten.Image
	ox, oy float64
	sx, sy float64
}

func (v view) point(x, y float64) (float32, float32) {
	return float32((x + v.ox) * v.sx), float32((y + v.oy) * v.sy)
}

func (v view) length(l float64) float32 {
	return float32(l * math.Min(v.sx, v.sy))
}

func (v view) drawArena() {
	x0, y0 := v.point(0, 0)
	x1, y1 := v.point(cfg.Arena.Width, cfg.Arena.Height)
	vector.StrokeRect(v.screen, x0, y0, x1-x0, y1-y0, 2, cfg.UI.ArenaColor, false)

	mx, _ := v.point(cfg.Arena.Width/2, 0)
	vector.StrokeLine(v.screen, mx, y0, mx, y1, 1, withAlpha(cfg.UI.ArenaColor, 96), false)
}

func (v view) drawCombatant(e *donburi.Entry) {
	tr := components.Transform.Get(e)
	p := components.Player.Get(e)
	x, y := v.point(tr.X, tr.Y)
	radius := v.length(cfg.Player.Radius)

	vector.DrawFilledCircle(v.screen, x, y, radius, colorOf(e), true)

	if vel, ok := components.Lookup(e, components.Velocity); ok && !vel.IsZero() {
		tx, ty := v.point(tr.X+vel.X*cfg.Physics.MaxSpeed*tickLength, tr.Y+vel.Y*cfg.Physics.MaxSpeed*tickLength)
		vector.StrokeLine(v.screen, x, y, tx, ty, 2, cfg.UI.TickColor, true)
	}

	if p.Blocking {
		vector.StrokeCircle(v.screen, x, y, radius+v.length(ringPadding), 2, cfg.UI.BlockRingColor, true)
	}

	barW := v.length(cfg.UI.BarWidth)
	barH := v.length(cfg.UI.BarHeight)
	left := x - barW/2
	top := y - radius - v.length(ringPadding) - 2*barH - barGap
	drawBar(v.screen, left, top, barW, barH, BarFill(p.Health, cfg.Player.MaxHealth), cfg.UI.HealthBarColor)
	drawBar(v.screen, left, top+barH+barGap, barW, barH, BarFill(p.Stamina, cfg.Player.MaxStamina), cfg.UI.StaminaColor)

	face := fonts.Small.Get()
	bounds := text.BoundString(face, p.Name)
	text.Draw(v.screen, p.Name, face, int(x)-bounds.Dx()/2, int(y+radius)+labelSpacing, cfg.UI.TextColor)
}

func (v view) centeredText(s string, face font.Face, tr *components.TransformData, clr color.Color) {
	x, y := v.point(tr.X, tr.Y)
	bounds := text.BoundString(face, s)
	text.Draw(v.screen, s, face, int(x)-bounds.Dx()/2, int(y)+bounds.Dy()/2, clr)
}

func drawBar(screen *ebiten.Image, x, y, w, h float32, fill float64, clr color.RGBA) {
	vector.FillRect(screen, x, y, w, h, cfg.UI.BarBgColor, false)
	vector.FillRect(screen, x, y, w*float32(fill), h, clr, false)
}

// BarFill is the filled fraction of a bar showing value out of max
func BarFill(value, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, value/max))
}

func colorOf(e *donburi.Entry) color.RGBA {
	if a, ok := components.Lookup(e, components.Appearance); ok {
		return a.Color
	}
	return cfg.UI.TextColor
}

func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}
