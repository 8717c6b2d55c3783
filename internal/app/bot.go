package app

import (
	"math"

	"go-void-survivor/internal/component"
	mathutil "go-void-survivor/pkg/utils"
)

const (
	botDangerRadius = 220.0
	botDashRadius   = 70.0
)

// Bot: простой автопилот: убегает от ближайшего врага, иначе идёт за лутом.
type Bot struct{}

// Drive выставляет ввод, делает рывок и выбирает первое улучшение.
func (Bot) Drive(g *Game) {
	if g.World == nil || g.World.Player == nil || g.Over() {
		return
	}
	if opts := g.PendingUpgrades(); len(opts) > 0 {
		if err := g.ApplyUpgrade(opts[0].ID); err != nil {
			g.logger.Warn("bot upgrade failed", "err", err)
		}
	}

	p := g.World.Player.Pos
	var (
		nearest *component.Enemy
		best    = math.Inf(1)
	)
	for _, e := range g.World.LiveEnemies() {
		if d := mathutil.Dist(p.X, p.Y, e.Pos.X, e.Pos.Y); d < best {
			nearest, best = e, d
		}
	}

	if nearest != nil && best < botDangerRadius {
		x, y := mathutil.Normalize(p.X-nearest.Pos.X, p.Y-nearest.Pos.Y)
		// у стены уходим вдоль неё
		if edge(p.X, g.World.W) {
			x = 0
			if y == 0 {
				y = 1
			}
		}
		if edge(p.Y, g.World.H) {
			y = 0
			if x == 0 {
				x = 1
			}
		}
		g.SetInput(x, y)
		if best < botDashRadius+nearest.Radius {
			g.Dash(x, y)
		}
		return
	}

	if len(g.World.Pickups) > 0 {
		target := g.World.Pickups[0].Pos
		best = math.Inf(1)
		for _, pk := range g.World.Pickups {
			if d := mathutil.Dist(p.X, p.Y, pk.Pos.X, pk.Pos.Y); d < best {
				target, best = pk.Pos, d
			}
		}
		g.SetInput(mathutil.Normalize(target.X-p.X, target.Y-p.Y))
		return
	}
	g.SetInput(mathutil.Normalize(g.World.W/2-p.X, g.World.H/2-p.Y))
}

func edge(v, limit float64) bool {
	return v < 40 || v > limit-40
}
