// internal/storage/storage.go
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"go-void-survivor/internal/defs"
	"go-void-survivor/internal/event"
)

const (
	SlotCount  = 3
	slotPrefix = "survivor_save_slot_"
	legacyFile = "survivor_save_classic_plus_v3.json"
)

var (
	ErrBadSlot        = errors.New("storage: slot out of range")
	ErrUnknownItem    = errors.New("storage: unknown shop item")
	ErrMaxLevel       = errors.New("storage: item at max level")
	ErrNotEnoughMoney = errors.New("storage: not enough money")
)

// SaveData: постоянный прогресс игрока между забегами.
type SaveData struct {
	Money           int            `json:"money"`
	TotalPagesFound int            `json:"totalPagesFound"`
	Upgrades        map[string]int `json:"upgrades"`
	LastSaved       int64          `json:"lastSaved"` // мс с эпохи
}

func defaultSave(now time.Time) SaveData {
	return SaveData{Upgrades: map[string]int{}, LastSaved: now.UnixMilli()}
}

// Manager читает и пишет слоты сохранений в каталоге.
type Manager struct {
	basePath string
	logger   *slog.Logger
	now      func() time.Time
}

func NewManager(basePath string, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{basePath: basePath, logger: logger, now: time.Now}
}

// FilePath возвращает путь к файлу слота.
func (m *Manager) FilePath(slot int) string {
	return filepath.Join(m.basePath, fmt.Sprintf("%s%d.json", slotPrefix, slot))
}

func (m *Manager) legacyPath() string { return filepath.Join(m.basePath, legacyFile) }

// Load читает слот. Пустой слот 0 забирает данные старого сохранения.
// Повреждённый или отсутствующий файл даёт сохранение по умолчанию.
func (m *Manager) Load(slot int) (SaveData, error) {
	if slot < 0 || slot >= SlotCount {
		return SaveData{}, ErrBadSlot
	}
	data, err := os.ReadFile(m.FilePath(slot))
	if errors.Is(err, fs.ErrNotExist) && slot == 0 {
		if migrated, ok := m.migrateLegacy(); ok {
			return migrated, nil
		}
	}
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			m.logger.Warn("failed to read save slot", "slot", slot, "err", err)
		}
		return defaultSave(m.now()), nil
	}
	save, err := m.decode(data)
	if err != nil {
		m.logger.Warn("failed to decode save slot", "slot", slot, "err", err)
		return defaultSave(m.now()), nil
	}
	return save, nil
}

func (m *Manager) migrateLegacy() (SaveData, bool) {
	data, err := os.ReadFile(m.legacyPath())
	if err != nil {
		return SaveData{}, false
	}
	save, err := m.decode(data)
	if err != nil {
		m.logger.Warn("failed to decode legacy save", "err", err)
		return SaveData{}, false
	}
	if err := m.Save(0, save); err != nil {
		m.logger.Warn("failed to migrate legacy save", "err", err)
	} else {
		m.logger.Info("legacy save migrated", "slot", 0)
	}
	save.LastSaved = m.now().UnixMilli()
	return save, true
}

// decode накладывает данные файла поверх значений по умолчанию.
func (m *Manager) decode(data []byte) (SaveData, error) {
	save := defaultSave(m.now())
	if err := json.Unmarshal(data, &save); err != nil {
		return SaveData{}, fmt.Errorf("decode save: %w", err)
	}
	if save.Upgrades == nil {
		save.Upgrades = map[string]int{}
	}
	return save, nil
}

// Save пишет слот, проставляя время сохранения.
func (m *Manager) Save(slot int, save SaveData) error {
	if slot < 0 || slot >= SlotCount {
		return ErrBadSlot
	}
	if err := os.MkdirAll(m.basePath, 0755); err != nil {
		return fmt.Errorf("save slot %d: %w", slot, err)
	}
	save.LastSaved = m.now().UnixMilli()
	data, err := json.Marshal(save)
	if err != nil {
		return fmt.Errorf("save slot %d: %w", slot, err)
	}
	if err := os.WriteFile(m.FilePath(slot), data, 0644); err != nil {
		return fmt.Errorf("save slot %d: %w", slot, err)
	}
	return nil
}

// SlotsInfo возвращает содержимое всех слотов; nil для пустого слота.
// Слот 0 показывает старое сохранение, если оно ещё не перенесено.
func (m *Manager) SlotsInfo() []*SaveData {
	out := make([]*SaveData, SlotCount)
	for i := range out {
		data, err := os.ReadFile(m.FilePath(i))
		if errors.Is(err, fs.ErrNotExist) && i == 0 {
			data, err = os.ReadFile(m.legacyPath())
		}
		if err != nil {
			continue
		}
		if save, err := m.decode(data); err == nil {
			out[i] = &save
		}
	}
	return out
}

// CalculateItemCost: цена следующего уровня: base·1.5^level, вниз до десятков, не меньше 10.
func CalculateItemCost(baseCost, level int) int {
	cost := float64(baseCost) * math.Pow(1.5, float64(level))
	return max(10, int(math.Floor(cost/10))*10)
}

// Purchase покупает следующий уровень предмета магазина.
func Purchase(save *SaveData, itemID string) error {
	item, ok := defs.ShopItemByID(itemID)
	if !ok {
		return fmt.Errorf("purchase %q: %w", itemID, ErrUnknownItem)
	}
	level := save.Upgrades[itemID]
	if level >= item.Max {
		return fmt.Errorf("purchase %q: %w", itemID, ErrMaxLevel)
	}
	cost := CalculateItemCost(item.Cost, level)
	if save.Money < cost {
		return fmt.Errorf("purchase %q for %d: %w", itemID, cost, ErrNotEnoughMoney)
	}
	if save.Upgrades == nil {
		save.Upgrades = map[string]int{}
	}
	save.Money -= cost
	save.Upgrades[itemID] = level + 1
	return nil
}

// ApplyOutcome зачисляет монеты и бонус победы.
func ApplyOutcome(save *SaveData, out event.Outcome) {
	save.Money += out.Coins + out.Bonus
}

// ApplyProgress сохраняет найденные страницы дневника; прогресс не убывает.
func ApplyProgress(save *SaveData, p event.Progress) {
	if p.PagesFound > save.TotalPagesFound {
		save.TotalPagesFound = p.PagesFound
	}
}
