package system

import (
	"go-void-survivor/internal/component"
	"go-void-survivor/internal/config"
	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/entity"
	"go-void-survivor/internal/event"
)

// LootSystem убирает выбывших врагов, начисляет очки и раскладывает дроп.
type LootSystem struct {
	world *entity.World
	run   *component.RunState
}

func NewLootSystem(world *entity.World, run *component.RunState) *LootSystem {
	return &LootSystem{world: world, run: run}
}

// Collect удаляет врагов с выставленной причиной удаления.
// Убитые дают очки и дроп, тихо удалённые ничего не дают. Возвращает убитого босса, если он был.
func (s *LootSystem) Collect() *component.Enemy {
	var boss *component.Enemy
	s.world.Enemies = compact(s.world.Enemies, func(e *component.Enemy) bool {
		switch e.Removal {
		case component.Alive:
			return true
		case component.Killed:
			s.run.Score += e.XP
			if e.IsBoss() {
				boss = e
			} else {
				s.drop(e)
			}
		}
		return false
	})
	return boss
}

func (s *LootSystem) drop(e *component.Enemy) {
	s.world.AddPickup(&component.Pickup{Kind: component.PickupGem, Pos: e.Pos, Value: e.XP})
	rng := s.world.Rand()
	switch {
	case e.Archetype == defs.ArchetypeElite:
		s.world.AddPickup(&component.Pickup{Kind: component.PickupDiary, Pos: e.Pos})
	case rng.Chance(config.CoinDropChance):
		s.world.AddPickup(&component.Pickup{Kind: component.PickupCoin, Pos: e.Pos, Value: config.CoinValue})
	case rng.Chance(config.BigCoinChance):
		s.world.AddPickup(&component.Pickup{Kind: component.PickupBigCoin, Pos: e.Pos, Value: config.BigCoinValue})
	}
	s.world.Dispatch(event.Event{Type: event.EnemyKilled, Data: e.Archetype})
}

// VictoryBonus: награда за победу над боссом по итоговому счёту.
func VictoryBonus(score int) int {
	return config.VictoryBonusBase + int(float64(score)*config.VictoryScoreShare)
}
