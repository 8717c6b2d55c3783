package app

import (
	"errors"

	"go-void-survivor/internal/system"
)

var (
	// ErrNotRunning: забег не запущен или уже остановлен.
	ErrNotRunning = errors.New("app: run is not active")
	// ErrNoPendingUpgrade: выбор улучшения сейчас не ожидается.
	ErrNoPendingUpgrade = errors.New("app: no pending upgrade")
	// ErrUnknownUpgrade: id улучшения не распознан или не предлагался.
	ErrUnknownUpgrade = system.ErrUnknownUpgrade
)
