// internal/state/session.go
package state

import (
	"log/slog"

	"go-void-survivor/internal/audio"
	"go-void-survivor/internal/event"
	"go-void-survivor/internal/storage"

	"golang.org/x/image/font"
)

// Session — ресурсы, общие для всех состояний окна.
type Session struct {
	Store   *storage.Manager
	Slot    int
	Save    storage.SaveData
	Sound   *audio.SoundManager
	Face    font.Face
	BigFace font.Face
	Logger  *slog.Logger
	Seed    int64
	Rounds  int
}

// SelectSlot загружает слот сохранения.
func (s *Session) SelectSlot(slot int) error {
	save, err := s.Store.Load(slot)
	if err != nil {
		return err
	}
	s.Slot, s.Save = slot, save
	return nil
}

// Persist пишет текущее сохранение; ошибка только логируется.
func (s *Session) Persist() {
	if err := s.Store.Save(s.Slot, s.Save); err != nil {
		s.Logger.Warn("save failed", "slot", s.Slot, "err", err)
	}
}

// RecordOutcome зачисляет итог забега и сохраняет.
func (s *Session) RecordOutcome(out event.Outcome) {
	storage.ApplyOutcome(&s.Save, out)
	s.Persist()
}

// RecordProgress сохраняет найденные страницы.
func (s *Session) RecordProgress(p event.Progress) {
	storage.ApplyProgress(&s.Save, p)
	s.Persist()
}
