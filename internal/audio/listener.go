package audio

import (
	"go-void-survivor/internal/event"
)

// Player: то, что умеет проиграть сигнал.
type Player interface {
	Play(c Cue)
}

var eventCues = map[event.EventType]Cue{
	event.EnemyKilled:     CueEnemyDeath,
	event.PlayerHit:       CuePlayerHit,
	event.WeaponFired:     CueShoot,
	event.EnemyFired:      CueShoot,
	event.LightningStruck: CueLightning,
	event.EnemySplit:      CueReplicate,
	event.CoinCollected:   CueCoin,
	event.PageCollected:   CueCoin,
	event.LevelUp:         CueLevelUp,
	event.NukeDetonated:   CueNuke,
	event.PlayerDashed:    CueDash,
}

// CueListener переводит игровые события в звуковые сигналы.
type CueListener struct {
	player Player
}

func NewCueListener(p Player) *CueListener {
	return &CueListener{player: p}
}

// OnEvent реализует event.Listener.
func (l *CueListener) OnEvent(e event.Event) {
	if e.Type == event.RunOver {
		if out, ok := e.Data.(event.Outcome); ok && out.Victory {
			l.player.Play(CueVictory)
		} else {
			l.player.Play(CuePlayerDeath)
		}
		return
	}
	if c, ok := eventCues[e.Type]; ok {
		l.player.Play(c)
	}
}

// Attach подписывает слушателя на все звуковые события. Возвращает отписку.
func (l *CueListener) Attach(d *event.Dispatcher) func() {
	types := make([]event.EventType, 0, len(eventCues)+1)
	for t := range eventCues {
		types = append(types, t)
	}
	types = append(types, event.RunOver)
	return d.SubscribeAll(l, types...)
}
