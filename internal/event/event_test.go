package event_test

import (
	"testing"

	"go-void-survivor/internal/event"
	"go-void-survivor/internal/event/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDispatchReachesSubscribers(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := mocks.NewMockListener(ctrl)
	d := event.NewDispatcher()
	d.Subscribe(event.LogMessage, l)

	l.EXPECT().OnEvent(event.Event{Type: event.LogMessage, Data: "hi"}).Times(1)
	d.Dispatch(event.Event{Type: event.LogMessage, Data: "hi"})
	d.Dispatch(event.Event{Type: event.RunOver})
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := mocks.NewMockListener(ctrl)
	d := event.NewDispatcher()
	cancel := d.Subscribe(event.LevelUp, l)

	cancel()
	cancel()
	l.EXPECT().OnEvent(gomock.Any()).Times(0)
	d.Dispatch(event.Event{Type: event.LevelUp})
}

func TestListenerCanUnsubscribeDuringDispatch(t *testing.T) {
	d := event.NewDispatcher()
	calls := 0
	var cancel func()
	cancel = d.Subscribe(event.PlayerHit, event.ListenerFunc(func(event.Event) {
		calls++
		cancel()
	}))
	other := 0
	d.Subscribe(event.PlayerHit, event.ListenerFunc(func(event.Event) { other++ }))

	d.Dispatch(event.Event{Type: event.PlayerHit})
	d.Dispatch(event.Event{Type: event.PlayerHit})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestSubscribeAll(t *testing.T) {
	d := event.NewDispatcher()
	var got []event.EventType
	cancel := d.SubscribeAll(event.ListenerFunc(func(e event.Event) { got = append(got, e.Type) }),
		event.CoinCollected, event.PageCollected)
	d.Dispatch(event.Event{Type: event.CoinCollected})
	d.Dispatch(event.Event{Type: event.PageCollected})
	cancel()
	d.Dispatch(event.Event{Type: event.CoinCollected})
	assert.Equal(t, []event.EventType{event.CoinCollected, event.PageCollected}, got)
}
