// internal/component/visual.go
package component

// TextKind определяет стиль всплывающего текста; цвет выбирает хост.
type TextKind int

const (
	TextDamage TextKind = iota
	TextWarning
	TextAlert
)

// FloatingText: всплывающая надпись над сущностью.
type FloatingText struct {
	Text    string
	Kind    TextKind
	Pos     Position
	Vel     Velocity
	Life    float64
	MaxLife float64
}

// Update сдвигает текст и возвращает false, когда он истёк.
func (t *FloatingText) Update(dt float64) bool {
	t.Pos.X += t.Vel.X * dt
	t.Pos.Y += t.Vel.Y * dt
	t.Life += dt
	return t.Life < t.MaxLife
}

// Alpha: прозрачность для отрисовки.
func (t *FloatingText) Alpha() float64 {
	if t.MaxLife <= 0 {
		return 0
	}
	a := 1 - t.Life/t.MaxLife
	if a < 0 {
		return 0
	}
	return a
}

// TextSink принимает всплывающие надписи.
type TextSink interface {
	AddFloatingText(text string, x, y float64, kind TextKind)
}
