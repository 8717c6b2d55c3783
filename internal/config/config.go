// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth    = 1200
	ScreenHeight   = 900
	TicksPerSecond = 60
	// MaxDeltaTicks ограничивает скачок времени после зависания кадра.
	MaxDeltaTicks = 3.6

	PlayerRadius          = 18.0
	PlayerBaseHealth      = 5
	PlayerBaseSpeed       = 1.8
	PlayerBasePickup      = 100.0
	PlayerHitInvincible   = 60.0
	PlayerStartXPToNext   = 5
	DashCooldown          = 90.0
	DashDuration          = 15.0
	DashInvincible        = 20.0
	DashSpeedFactor       = 4.0
	DashContactPad        = 10.0
	DashContactDamage     = 1.0
	GravitySlowRadius     = 180.0
	GravitySlowFactor     = 0.4
	ContactDamage         = 1
	EnemyBoltDamage       = 1
	FloatingTextLife      = 30.0
	HitFlashDuration      = 5.0
	EnemyClampMargin      = 50.0
	SpawnEdgeOffset       = 50.0
	EnemySpeedTimeScale   = 1800.0
	EnemySpeedFactor      = 0.9
	DefaultProjectileLife = 600.0
	DefaultProjectileSize = 10.0

	GemMagnetFactor  = 0.15
	ItemMagnetFactor = 0.1
	CoinValue        = 10
	BigCoinValue     = 100
	CoinDropChance   = 0.05
	BigCoinChance    = 0.005
	DiaryHeal        = 3
	MaxDiaryPages    = 24

	BossTriggerSecond   = 180
	BossWarningSteps    = 3
	EliteSpawnInterval  = 60
	VictoryBonusBase    = 3000
	VictoryScoreShare   = 0.5
	DefaultChallengeRun = 3
	NoticeClearGo       = 60.0
	NoticeClearBoss     = 120.0
	SnapshotInterval    = 60.0
)

var (
	BackgroundColor = color.RGBA{10, 10, 20, 255}
	StarColor       = color.RGBA{255, 255, 255, 255}
	PlayerColor     = color.RGBA{96, 165, 250, 255}
	DashColor       = color.RGBA{147, 197, 253, 255}
	EnemyBoltColor  = color.RGBA{248, 113, 113, 255}
	PlayerBoltColor = color.RGBA{103, 232, 249, 255}
	ExplosionColor  = color.RGBA{251, 146, 60, 200}
	GemColor        = color.RGBA{52, 211, 153, 255}
	CoinColor       = color.RGBA{250, 204, 21, 255}
	DiaryColor      = color.RGBA{244, 244, 245, 255}
	HitFlashColor   = color.RGBA{255, 255, 255, 255}
	WarnColor       = color.RGBA{239, 68, 68, 160}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDamageColor = color.RGBA{255, 255, 255, 255}
	TextWarnColor   = color.RGBA{250, 204, 21, 255}
	TextAlertColor  = color.RGBA{239, 68, 68, 255}
	UIColorBlue     = color.RGBA{70, 130, 180, 220}
	UIColorRed      = color.RGBA{220, 60, 60, 220}
)

// XPMultiplier возвращает множитель порога опыта для нового уровня.
func XPMultiplier(level int) float64 {
	switch {
	case level >= 20:
		return 1.8
	case level >= 5:
		return 1.4
	default:
		return 1.2
	}
}

// SpawnRate возвращает интервал спавна в тиках для прошедших секунд забега.
func SpawnRate(seconds int) float64 {
	switch {
	case seconds > 300:
		return 30
	case seconds > 120:
		return 40
	case seconds > 60:
		return 50
	default:
		return 60
	}
}
