// Package pool recycles instances grouped by a prototype key.
//
// The pool knows nothing about what an instance is. Construction, placement
// and deactivation are supplied as hooks so the same pool type serves
// projectile entities, effects and popups.
package pool

// Placement is where an acquired instance is put (world units, degrees).
type Placement struct {
	X, Y     float64
	Rotation float64
}

// Pool maps a prototype key to a FIFO queue of idle instances. It grows on
// underflow and never shrinks. Not safe for concurrent use.
type Pool[K comparable, T comparable] struct {
	create     func(K) T
	activate   func(T, Placement)
	deactivate func(T)

	idle    map[K][]T
	isIdle  map[T]K
	active  map[T]K
	created int
}

// New returns a pool. create builds a fresh instance for a prototype and
// returns the zero value when the prototype is unknown. activate positions
// and enables an instance, deactivate disables it and detaches it from any
// parent. Either hook may be nil.
func New[K comparable, T comparable](create func(K) T, activate func(T, Placement), deactivate func(T)) *Pool[K, T] {
	return &Pool[K, T]{
		create:     create,
		activate:   activate,
		deactivate: deactivate,
		idle:       make(map[K][]T),
		isIdle:     make(map[T]K),
		active:     make(map[T]K),
	}
}

// Acquire returns an active instance of proto placed at p. Idle instances
// are reused first. The caller resets any transient state. ok is false when
// the prototype cannot be built.
func (p *Pool[K, T]) Acquire(proto K, at Placement) (inst T, ok bool) {
	var zero T
	if q := p.idle[proto]; len(q) > 0 {
		inst = q[0]
		q[0] = zero
		p.idle[proto] = q[1:]
		delete(p.isIdle, inst)
	} else {
		if p.create == nil {
			return zero, false
		}
		inst = p.create(proto)
		if inst == zero {
			return zero, false
		}
		p.created++
	}

	p.active[inst] = proto
	if p.activate != nil {
		p.activate(inst, at)
	}
	return inst, true
}

// Release deactivates inst and queues it under proto. Releasing the zero
// value or an instance that is already idle does nothing.
func (p *Pool[K, T]) Release(proto K, inst T) {
	var zero T
	if inst == zero {
		return
	}
	if _, idle := p.isIdle[inst]; idle {
		return
	}
	delete(p.active, inst)
	if p.deactivate != nil {
		p.deactivate(inst)
	}
	p.idle[proto] = append(p.idle[proto], inst)
	p.isIdle[inst] = proto
}

// Prewarm builds n idle instances of proto ahead of time.
func (p *Pool[K, T]) Prewarm(proto K, n int) {
	var zero T
	for i := 0; i < n && p.create != nil; i++ {
		inst := p.create(proto)
		if inst == zero {
			return
		}
		p.created++
		if p.deactivate != nil {
			p.deactivate(inst)
		}
		p.idle[proto] = append(p.idle[proto], inst)
		p.isIdle[inst] = proto
	}
}

// Idle returns the queue length for proto.
func (p *Pool[K, T]) Idle(proto K) int {
	return len(p.idle[proto])
}

// Active returns the number of borrowed instances across all prototypes.
func (p *Pool[K, T]) Active() int {
	return len(p.active)
}

// IsActive reports whether inst is currently borrowed.
func (p *Pool[K, T]) IsActive(inst T) bool {
	_, ok := p.active[inst]
	return ok
}

// Created returns how many instances the pool has ever built.
func (p *Pool[K, T]) Created() int {
	return p.created
}

// EachActive calls fn for every borrowed instance. fn must not acquire or
// release.
func (p *Pool[K, T]) EachActive(fn func(proto K, inst T)) {
	for inst, proto := range p.active {
		fn(proto, inst)
	}
}
