// pkg/render/world_renderer.go
package render

import (
	"image"
	"image/color"
	"math"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const beamLength = 40

// WorldRenderer draws the world of a run: starfield, pickups, projectiles, enemies, player, texts.
type WorldRenderer struct {
	palette  Palette
	stars    *Starfield
	fontFace font.Face
	fillImg  *ebiten.Image
}

func NewWorldRenderer(w, h float64, face font.Face, palette Palette) *WorldRenderer {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &WorldRenderer{
		palette:  palette,
		stars:    NewStarfield(120, w, h, 7),
		fontFace: face,
		fillImg:  img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Update advances background animation.
func (r *WorldRenderer) Update(dt float64) { r.stars.Update(dt) }

// Draw renders the world onto screen.
func (r *WorldRenderer) Draw(screen *ebiten.Image, w *entity.World) {
	screen.Fill(r.palette.Background)
	for _, s := range r.stars.Stars {
		vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), float32(s.Size), r.palette.Star, false)
	}
	if w == nil {
		return
	}
	for _, p := range w.Pickups {
		r.drawPickup(screen, p)
	}
	for _, pr := range w.Projectiles {
		r.drawProjectile(screen, pr)
	}
	for _, e := range w.Enemies {
		if e.Alive() {
			r.drawEnemy(screen, e)
		}
	}
	if w.Player != nil {
		r.drawPlayer(screen, w.Player)
	}
	for _, t := range w.Texts {
		c := WithAlpha(r.palette.TextColor(t.Kind), t.Alpha())
		text.Draw(screen, t.Text, r.fontFace, int(t.Pos.X), int(t.Pos.Y), c)
	}
}

func (r *WorldRenderer) drawPickup(screen *ebiten.Image, p *component.Pickup) {
	x, y, rad := float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius())
	c := r.palette.PickupColor(p.Kind)
	if p.Kind == component.PickupDiary {
		vector.DrawFilledRect(screen, x-rad*0.7, y-rad, rad*1.4, rad*2, c, true)
		return
	}
	vector.DrawFilledCircle(screen, x, y, rad, c, true)
}

func (r *WorldRenderer) drawProjectile(screen *ebiten.Image, pr *component.Projectile) {
	x, y := float32(pr.Pos.X), float32(pr.Pos.Y)
	c := r.palette.PlayerBolt
	if pr.Side == component.SideEnemy {
		c = r.palette.EnemyBolt
	}
	switch pr.Shape {
	case component.ShapeExplosion:
		if pr.Inert() {
			vector.StrokeCircle(screen, x, y, float32(pr.Radius), 1, r.palette.Warn, true)
			return
		}
		c = WithAlpha(r.palette.Explosion, 1-pr.Progress())
		vector.DrawFilledCircle(screen, x, y, float32(pr.HitRadius()), c, true)
	case component.ShapeBeam:
		a := math.Atan2(pr.Vel.Y, pr.Vel.X)
		dx, dy := float32(math.Cos(a)*beamLength/2), float32(math.Sin(a)*beamLength/2)
		vector.StrokeLine(screen, x-dx, y-dy, x+dx, y+dy, float32(pr.Radius), c, true)
	default:
		vector.DrawFilledCircle(screen, x, y, float32(pr.Radius), c, true)
	}
}

func (r *WorldRenderer) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	x, y, rad := float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius)
	c := r.palette.EnemyColor(e)
	if e.SpawnGrace > 0 {
		c = WithAlpha(c, 0.5)
	}
	pulse := float32(1 + 0.05*math.Sin(e.PulsePhase))
	vector.DrawFilledCircle(screen, x, y, rad*pulse, c, true)

	switch e.State {
	case component.StatePriming, component.StateExploding:
		vector.StrokeCircle(screen, x, y, float32(e.BlastRadius), 2, r.palette.Warn, true)
	case component.StateWarn, component.StateWarnDash:
		dx, dy := float32(math.Cos(e.DashAngle)*400), float32(math.Sin(e.DashAngle)*400)
		vector.StrokeLine(screen, x, y, x+dx, y+dy, 3, r.palette.Warn, true)
	case component.StateWarnShoot, component.StateWarnSpiral, component.StateWarnBurst, component.StateWarnSpin:
		vector.StrokeCircle(screen, x, y, rad+12, 3, r.palette.Warn, true)
	}
}

func (r *WorldRenderer) drawPlayer(screen *ebiten.Image, p *entity.Player) {
	// мигание во время неуязвимости
	if p.InvincibleTimer > 0 && !p.IsDashing && int(p.InvincibleTimer/4)%2 == 1 {
		return
	}
	c := r.palette.Player
	if p.IsDashing {
		c = r.palette.Dash
	}
	a, rad := p.VisualAngle, p.Radius
	var path vector.Path
	path.MoveTo(float32(p.Pos.X+math.Cos(a)*rad), float32(p.Pos.Y+math.Sin(a)*rad))
	path.LineTo(float32(p.Pos.X+math.Cos(a+2.4)*rad), float32(p.Pos.Y+math.Sin(a+2.4)*rad))
	path.LineTo(float32(p.Pos.X+math.Cos(a-2.4)*rad), float32(p.Pos.Y+math.Sin(a-2.4)*rad))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(vs, is, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
