// internal/component/game_state.go
package component

// Mode — режим забега.
type Mode string

const (
	ModeClassic   Mode = "CLASSIC"
	ModeChallenge Mode = "CHALLENGE"
)

// RunState хранит макро-состояние забега.
type RunState struct {
	Mode        Mode
	Seconds     int
	Score       int
	Coins       int
	SpawnRate   float64
	BossSpawned bool
	BossPending bool
	Round       int
	Countdown   int
	Paused      bool // ожидается выбор улучшения
	HostPaused  bool
	Over        bool
	Victory     bool
	PagesFound  int
	accumulator float64
}

// Accumulate добавляет dt к секундному аккумулятору и сообщает,
// прошла ли очередная секунда.
func (r *RunState) Accumulate(dt, second float64) bool {
	r.accumulator += dt
	if r.accumulator >= second {
		r.accumulator -= second
		return true
	}
	return false
}

// ResetAccumulator обнуляет секундный аккумулятор.
func (r *RunState) ResetAccumulator() { r.accumulator = 0 }
