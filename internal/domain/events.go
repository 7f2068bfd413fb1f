package domain

import "slices"

// Handle identifies a change subscription. The zero Handle is never issued.
type Handle uint64

type subscription struct {
	id Handle
	fn func()
}

// Emitter is a single-event subject. Handlers run synchronously, in
// subscription order, and may call back into the entity that emitted.
type Emitter struct {
	next     Handle
	handlers []subscription
}

// OnChange subscribes fn to change notifications
func (e *Emitter) OnChange(fn func()) Handle {
	e.next++
	e.handlers = append(e.handlers, subscription{id: e.next, fn: fn})
	return e.next
}

// Off removes a subscription. Unknown handles are ignored.
func (e *Emitter) Off(h Handle) {
	e.handlers = slices.DeleteFunc(e.handlers, func(s subscription) bool {
		return s.id == h
	})
}

// emit dispatches over a snapshot so handlers may subscribe or
// unsubscribe while a notification is in flight.
func (e *Emitter) emit() {
	if len(e.handlers) == 0 {
		return
	}
	for _, s := range slices.Clone(e.handlers) {
		s.fn()
	}
}
