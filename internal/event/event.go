// Package event provides a small typed observer list.
package event

// Event is a list of subscribers notified in subscription order.
// It is not safe for concurrent use; events fire on the frame goroutine.
type Event[T any] struct {
	subs   []subscriber[T]
	nextID int
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Subscribe adds fn and returns a function that removes it.
func (e *Event[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	id := e.nextID
	e.nextID++
	e.subs = append(e.subs, subscriber[T]{id: id, fn: fn})
	return func() {
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

// Fire calls every subscriber with v. Subscribers added or removed during
// Fire take effect on the next call.
func (e *Event[T]) Fire(v T) {
	subs := e.subs
	for _, s := range subs {
		s.fn(v)
	}
}

// Len returns the number of subscribers.
func (e *Event[T]) Len() int {
	return len(e.subs)
}
