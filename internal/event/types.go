// internal/event/types.go
package event

const (
	SnapshotUpdated    EventType = "SnapshotUpdated"    // ежесекундный снимок состояния
	LevelUp            EventType = "LevelUp"            // Data: []defs.UpgradeOption
	RunOver            EventType = "RunOver"            // Data: Outcome
	LogMessage         EventType = "LogMessage"         // Data: string
	CenterNotification EventType = "CenterNotification" // Data: string, "" — скрыть
	ProgressChanged    EventType = "ProgressChanged"    // Data: Progress

	// звуковые и визуальные подсказки
	EnemyKilled     EventType = "EnemyKilled"
	EnemySplit      EventType = "EnemySplit"
	BossExhausted   EventType = "BossExhausted"
	BossSpawned     EventType = "BossSpawned"
	PlayerHit       EventType = "PlayerHit"
	PlayerDashed    EventType = "PlayerDashed"
	WeaponFired     EventType = "WeaponFired"
	LightningStruck EventType = "LightningStruck"
	CoinCollected   EventType = "CoinCollected"
	PageCollected   EventType = "PageCollected"
	NukeDetonated   EventType = "NukeDetonated"
	CountdownTick   EventType = "CountdownTick"
	EnemyFired      EventType = "EnemyFired"
	RoundStarted    EventType = "RoundStarted" // Data: int, номер раунда испытания
)

// Snapshot — данные для HUD.
type Snapshot struct {
	HP     int
	MaxHP  int
	XP     int
	XPNext int
	Level  int
	Score  int
	Time   int
	Coins  int
	Round  int
}

// Outcome — итог забега.
type Outcome struct {
	RunID   string
	Victory bool
	Bonus   int
	Coins   int
	Score   int
	Time    int
	Level   int
}

// Progress — разблокируемый прогресс, который хост должен сохранить.
type Progress struct {
	PagesFound int
}
