// Package observer provides small typed listener collections.
//
// An Emitter notifies listeners about a value changing from old to new and
// refuses to fire when the two are equal, so callers never have to repeat
// the "did it actually change" check. A Signal carries no payload and is used
// for one-shot notifications such as disposal. A Topic delivers arbitrary
// values to subscribers.
package observer

// ListenerID identifies a registered listener so it can be removed later
type ListenerID uint64

type entry[F any] struct {
	id ListenerID
	fn F
}

type registry[F any] struct {
	entries []entry[F]
	next    ListenerID
}

func (r *registry[F]) add(fn F) ListenerID {
	r.next++
	r.entries = append(r.entries, entry[F]{id: r.next, fn: fn})
	return r.next
}

func (r *registry[F]) remove(id ListenerID) bool {
	for i, e := range r.entries {
		if e.id == id {
			r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// snapshot lets listeners add or remove registrations while being notified
func (r *registry[F]) snapshot() []entry[F] {
	out := make([]entry[F], len(r.entries))
	copy(out, r.entries)
	return out
}

// Emitter notifies listeners of (old, new) value transitions
type Emitter[T comparable] struct {
	reg registry[func(old, new T)]
}

// Add registers fn and returns its handle
func (e *Emitter[T]) Add(fn func(old, new T)) ListenerID {
	return e.reg.add(fn)
}

// Remove unregisters the listener with the given handle
func (e *Emitter[T]) Remove(id ListenerID) bool {
	return e.reg.remove(id)
}

// Len returns the number of registered listeners
func (e *Emitter[T]) Len() int {
	return len(e.reg.entries)
}

// Fire calls every listener in registration order. Nothing is fired when
// old equals new; the return value reports whether listeners were called.
func (e *Emitter[T]) Fire(old, new T) bool {
	if old == new {
		return false
	}
	for _, l := range e.reg.snapshot() {
		l.fn(old, new)
	}
	return true
}

// Signal notifies listeners without a payload
type Signal struct {
	reg   registry[func()]
	fired bool
}

// Add registers fn and returns its handle
func (s *Signal) Add(fn func()) ListenerID {
	return s.reg.add(fn)
}

// Remove unregisters the listener with the given handle
func (s *Signal) Remove(id ListenerID) bool {
	return s.reg.remove(id)
}

// Len returns the number of registered listeners
func (s *Signal) Len() int {
	return len(s.reg.entries)
}

// Fire calls every listener in registration order
func (s *Signal) Fire() {
	s.fired = true
	for _, l := range s.reg.snapshot() {
		l.fn()
	}
}

// FireOnce fires the signal unless it has already been fired
func (s *Signal) FireOnce() bool {
	if s.fired {
		return false
	}
	s.Fire()
	return true
}

// Fired reports whether the signal has fired at least once
func (s *Signal) Fired() bool {
	return s.fired
}

// Topic delivers published values to every subscriber
type Topic[T any] struct {
	reg registry[func(T)]
}

// Subscribe registers fn and returns its handle
func (t *Topic[T]) Subscribe(fn func(T)) ListenerID {
	return t.reg.add(fn)
}

// Unsubscribe removes the subscriber with the given handle
func (t *Topic[T]) Unsubscribe(id ListenerID) bool {
	return t.reg.remove(id)
}

// Len returns the number of subscribers
func (t *Topic[T]) Len() int {
	return len(t.reg.entries)
}

// Publish delivers v to every subscriber in registration order
func (t *Topic[T]) Publish(v T) {
	for _, l := range t.reg.snapshot() {
		l.fn(v)
	}
}
