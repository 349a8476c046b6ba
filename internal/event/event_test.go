package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe(CommandIssued, ListenerFunc(func(e Event) { got = append(got, "first") }))
	d.Subscribe(CommandIssued, ListenerFunc(func(e Event) { got = append(got, "second") }))
	d.SubscribeAll(ListenerFunc(func(e Event) { got = append(got, "all:"+string(e.Type)) }))

	d.Dispatch(Event{Type: CommandIssued})
	d.Dispatch(Event{Type: SceneRedrawn})

	assert.Equal(t, []string{"first", "second", "all:CommandIssued", "all:SceneRedrawn"}, got)
}

func TestNilDispatcher(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: CommandIssued}) })
}
