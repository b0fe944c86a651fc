package resource

import (
	"context"
	"fmt"
	"sync"
)

// State is an observable holder of the latest Resource for one concern of a
// screen. It starts idle (no resource) and returns to idle on Reset.
//
// Every update is stamped with a version under the lock. An observer never
// sees a version older than one it has already been given, so after
// concurrent publishes settle each observer's last value matches Get.
type State[T any] struct {
	mu        sync.Mutex
	current   Resource[T]
	set       bool
	version   uint64
	nextID    int
	observers map[int]*observer[T]
}

type observer[T any] struct {
	fn        func(Resource[T], bool)
	delivered uint64
	busy      bool
	removed   bool
	pending   *delivery[T]
}

type delivery[T any] struct {
	r       Resource[T]
	set     bool
	version uint64
}

func NewState[T any]() *State[T] {
	return &State[T]{observers: make(map[int]*observer[T])}
}

// NewLoadingState returns a holder that starts in Loading, for screens that
// load their content as soon as they open.
func NewLoadingState[T any]() *State[T] {
	s := NewState[T]()
	s.current = Loading[T]()
	s.set = true
	return s
}

// Get returns the current resource; ok is false while idle.
func (s *State[T]) Get() (r Resource[T], ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.set
}

// Publish replaces the current resource and notifies observers.
func (s *State[T]) Publish(r Resource[T]) {
	s.update(r, true)
}

// Reset returns the holder to idle and notifies observers with ok=false.
func (s *State[T]) Reset() {
	s.update(Resource[T]{}, false)
}

func (s *State[T]) update(r Resource[T], set bool) {
	s.mu.Lock()
	s.version++
	s.current = r
	s.set = set
	d := &delivery[T]{r: r, set: set, version: s.version}
	obs := make([]*observer[T], 0, len(s.observers))
	for id := 0; id < s.nextID; id++ {
		if o, ok := s.observers[id]; ok {
			obs = append(obs, o)
		}
	}
	s.mu.Unlock()

	for _, o := range obs {
		s.deliver(o, d)
	}
}

// deliver hands d to o unless o already has something newer. Callbacks run
// outside the lock so they may read or publish again. While one goroutine
// is inside o.fn, later versions are parked in o.pending and that goroutine
// delivers the newest of them once fn returns.
func (s *State[T]) deliver(o *observer[T], d *delivery[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.version <= o.delivered || (o.pending != nil && d.version <= o.pending.version) {
		return
	}
	o.pending = d
	if o.busy {
		return
	}

	o.busy = true
	for o.pending != nil && !o.removed {
		next := o.pending
		o.pending = nil
		o.delivered = next.version
		s.mu.Unlock()
		o.fn(next.r, next.set)
		s.mu.Lock()
	}
	o.pending = nil
	o.busy = false
}

// Observe registers fn for every future publish and reset, in registration
// order. The returned func unregisters it.
func (s *State[T]) Observe(fn func(r Resource[T], ok bool)) (cancel func()) {
	s.mu.Lock()
	if s.observers == nil {
		s.observers = make(map[int]*observer[T])
	}
	id := s.nextID
	s.nextID++
	o := &observer[T]{fn: fn, delivered: s.version}
	s.observers[id] = o
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			o.removed = true
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}

// Run publishes Loading on s, runs op and publishes its result. The result is
// always terminal: a Loading returned by op is reported as an Error, and a
// panic inside op becomes an Error carrying the panic text.
func Run[T any](ctx context.Context, s *State[T], op func(context.Context) Resource[T]) (result Resource[T]) {
	s.Publish(Loading[T]())

	defer func() {
		if p := recover(); p != nil {
			result = Error[T](panicMessage(p))
		}
		s.Publish(result)
	}()

	result = op(ctx)
	if !result.Terminal() {
		result = Error[T](DefaultErrorMessage)
	}
	return result
}

func panicMessage(p any) string {
	switch v := p.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
