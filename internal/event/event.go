// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

//go:generate mockgen -source=event.go -destination=mocks/mock_listener.go -package=mocks

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет использовать обычную функцию как подписчика.
type ListenerFunc func(event Event)

// OnEvent вызывает саму функцию.
func (f ListenerFunc) OnEvent(event Event) { f(event) }

type subscription struct {
	id       int
	listener Listener
}

// Dispatcher — диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]subscription
	nextID    int
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscription),
	}
}

// Subscribe — подписка на событие. Возвращает функцию отписки,
// повторный вызов которой ничего не делает.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) func() {
	d.nextID++
	id := d.nextID
	d.listeners[eventType] = append(d.listeners[eventType], subscription{id: id, listener: listener})
	return func() { d.remove(eventType, id) }
}

// SubscribeAll подписывает слушателя сразу на несколько типов событий.
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) func() {
	cancels := make([]func(), 0, len(types))
	for _, t := range types {
		cancels = append(cancels, d.Subscribe(t, listener))
	}
	return func() {
		for _, c := range cancels {
			c()
		}
	}
}

func (d *Dispatcher) remove(eventType EventType, id int) {
	subs := d.listeners[eventType]
	for i, s := range subs {
		if s.id == id {
			d.listeners[eventType] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	subs := d.listeners[event.Type]
	if len(subs) == 0 {
		return
	}
	// копия: подписчик может отписаться прямо из обработчика
	snapshot := append([]subscription(nil), subs...)
	for _, s := range snapshot {
		s.listener.OnEvent(event)
	}
}
