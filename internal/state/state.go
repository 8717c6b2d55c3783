// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления состояниями.
// Оверлеи (пауза, выбор улучшения) кладутся поверх через Push и снимаются Pop.
type StateMachine struct {
	current State
	stack   []State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние и сбрасывает оверлеи.
func (sm *StateMachine) SetState(newState State) {
	for len(sm.stack) > 0 {
		sm.Pop()
	}
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Push кладёт оверлей поверх текущего состояния, не вызывая у него Exit.
func (sm *StateMachine) Push(overlay State) {
	if sm.current != nil {
		sm.stack = append(sm.stack, sm.current)
	}
	sm.current = overlay
	if overlay != nil {
		overlay.Enter()
	}
}

// Pop снимает оверлей и возвращает управление состоянию под ним.
func (sm *StateMachine) Pop() {
	if len(sm.stack) == 0 {
		return
	}
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = sm.stack[len(sm.stack)-1]
	sm.stack = sm.stack[:len(sm.stack)-1]
	sm.current.Enter()
}

// Depth возвращает число оверлеев.
func (sm *StateMachine) Depth() int { return len(sm.stack) }

// Current возвращает активное состояние.
func (sm *StateMachine) Current() State { return sm.current }

// Update обновляет текущее состояние. deltaTime — в тиках (1 = 1/60 с).
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
