package system

import (
	"math"

	"go-void-survivor/internal/component"
	"go-void-survivor/internal/config"
	"go-void-survivor/internal/entity"
	"go-void-survivor/internal/event"
)

// PickupSystem притягивает и собирает кристаллы опыта, монеты и страницы дневника.
type PickupSystem struct {
	world *entity.World
	run   *component.RunState
}

func NewPickupSystem(world *entity.World, run *component.RunState) *PickupSystem {
	return &PickupSystem{world: world, run: run}
}

// Update обрабатывает сначала кристаллы, затем предметы.
// Возвращает true, если кристалл поднял уровень; остальные кристаллы ждут следующего тика.
func (s *PickupSystem) Update(dt float64) bool {
	p := s.world.Player
	if p == nil {
		return false
	}
	leveled := false
	taken := make(map[*component.Pickup]bool)

	for _, it := range s.world.Pickups {
		if it.Kind != component.PickupGem || leveled {
			continue
		}
		if !s.attract(it, dt) {
			continue
		}
		taken[it] = true
		if p.GainXP(it.Value) {
			leveled = true
		}
	}
	for _, it := range s.world.Pickups {
		if it.Kind == component.PickupGem {
			continue
		}
		if s.attract(it, dt) {
			taken[it] = true
			s.collectItem(it)
		}
	}

	s.world.Pickups = compact(s.world.Pickups, func(it *component.Pickup) bool { return !taken[it] })
	return leveled
}

// attract подтягивает предмет к игроку и сообщает, подобран ли он.
// Дистанция меряется до сдвига, как и проверка подбора.
func (s *PickupSystem) attract(it *component.Pickup, dt float64) bool {
	p := s.world.Player
	d := it.Pos.DistanceTo(p.Pos)
	if d >= p.PickupRange || math.IsNaN(d) {
		return false
	}
	f := it.MagnetFactor() * dt
	it.Pos.X += (p.Pos.X - it.Pos.X) * f
	it.Pos.Y += (p.Pos.Y - it.Pos.Y) * f
	return d < p.Radius
}

func (s *PickupSystem) collectItem(it *component.Pickup) {
	switch it.Kind {
	case component.PickupCoin, component.PickupBigCoin:
		s.run.Coins += it.Value
		s.world.Dispatch(event.Event{Type: event.CoinCollected, Data: it.Value})
	case component.PickupDiary:
		s.run.PagesFound = min(config.MaxDiaryPages, s.run.PagesFound+1)
		s.world.Dispatch(event.Event{Type: event.ProgressChanged, Data: event.Progress{PagesFound: s.run.PagesFound}})
		s.world.Dispatch(event.Event{Type: event.LogMessage, Data: "獲得日記殘頁！"})
		s.world.Dispatch(event.Event{Type: event.PageCollected, Data: s.run.PagesFound})
		s.world.Player.Heal(config.DiaryHeal)
	}
}
