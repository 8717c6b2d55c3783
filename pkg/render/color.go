// pkg/render/color.go
package render

import (
	"image/color"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/config"
	"go-void-survivor/internal/defs"
)

// Palette holds the colors used to draw a run.
type Palette struct {
	Background color.RGBA
	Star       color.RGBA
	Player     color.RGBA
	Dash       color.RGBA
	PlayerBolt color.RGBA
	EnemyBolt  color.RGBA
	Explosion  color.RGBA
	Gem        color.RGBA
	Coin       color.RGBA
	Diary      color.RGBA
	HitFlash   color.RGBA
	Warn       color.RGBA
	TextDamage color.RGBA
	TextWarn   color.RGBA
	TextAlert  color.RGBA
}

// DefaultPalette builds the palette from config.
func DefaultPalette() Palette {
	return Palette{
		Background: config.BackgroundColor,
		Star:       config.StarColor,
		Player:     config.PlayerColor,
		Dash:       config.DashColor,
		PlayerBolt: config.PlayerBoltColor,
		EnemyBolt:  config.EnemyBoltColor,
		Explosion:  config.ExplosionColor,
		Gem:        config.GemColor,
		Coin:       config.CoinColor,
		Diary:      config.DiaryColor,
		HitFlash:   config.HitFlashColor,
		Warn:       config.WarnColor,
		TextDamage: config.TextDamageColor,
		TextWarn:   config.TextWarnColor,
		TextAlert:  config.TextAlertColor,
	}
}

// EnemyColor returns the archetype color, white while the hit flash lasts.
func (p Palette) EnemyColor(e *component.Enemy) color.RGBA {
	if e.HitFlash > 0 {
		return p.HitFlash
	}
	c := defs.ArchetypeStats(e.Archetype).Color
	base := color.RGBA{c[0], c[1], c[2], 255}
	if e.IsBoss() && e.State == component.StateExhausted {
		return DarkenColor(base)
	}
	return base
}

// PickupColor returns the color of a pickup kind.
func (p Palette) PickupColor(k component.PickupKind) color.RGBA {
	switch k {
	case component.PickupCoin, component.PickupBigCoin:
		return p.Coin
	case component.PickupDiary:
		return p.Diary
	default:
		return p.Gem
	}
}

// TextColor returns the color of a floating text kind.
func (p Palette) TextColor(k component.TextKind) color.RGBA {
	switch k {
	case component.TextWarning:
		return p.TextWarn
	case component.TextAlert:
		return p.TextAlert
	default:
		return p.TextDamage
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha scales the alpha channel by a in [0, 1].
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	a = max(0, min(1, a))
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
