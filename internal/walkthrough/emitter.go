package walkthrough

import (
	"fmt"
	"log/slog"
)

// Listener receives a registered value after the registry has stored it.
type Listener[T any] func(T)

type subscription[T any] struct {
	id int
	fn Listener[T]
}

// emitter delivers events synchronously, in subscription order.
type emitter[T any] struct {
	name   string
	logger *slog.Logger
	nextID int
	subs   []subscription[T]
}

func newEmitter[T any](name string, logger *slog.Logger) *emitter[T] {
	return &emitter[T]{name: name, logger: logger}
}

// subscribe adds fn and returns a function that removes it. Calling the
// returned function more than once is a no-op.
func (e *emitter[T]) subscribe(fn Listener[T]) func() {
	e.nextID++
	id := e.nextID
	e.subs = append(e.subs, subscription[T]{id: id, fn: fn})

	return func() {
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

// fire calls every listener subscribed at the time of the call. A panicking
// listener is logged and does not stop delivery to the rest.
func (e *emitter[T]) fire(v T) {
	subs := make([]subscription[T], len(e.subs))
	copy(subs, e.subs)

	for _, s := range subs {
		e.deliver(s, v)
	}
}

func (e *emitter[T]) deliver(s subscription[T], v T) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("listener panicked",
				"event", e.name,
				"error", fmt.Sprint(r),
			)
		}
	}()
	s.fn(v)
}
