// Package sched runs resumable multi-tick tasks keyed by owner and kind.
//
// At most one task exists per (owner, kind). Starting a task for a key that
// already has one cancels the old task synchronously. Tasks are stepped once
// per tick in start order; a task started during Step runs from the next tick.
package sched

// Kind groups tasks so that an owner can hold one of each.
type Kind int

const (
	KindLifecycle Kind = iota // arrow life/stuck timers, effect and popup lifetimes
	KindAction                // skill wind-up/recovery sequence
	KindAutoFire
	KindSkill // multi-shot bursts
	KindDash
	KindJump
	KindDeath
	KindThink // enemy AI phases

	kindCooldownBase Kind = 100
)

// Cooldown returns the kind used for a loadout slot's countdown.
func Cooldown(slot int) Kind {
	return kindCooldownBase + Kind(slot)
}

// Task is resumed once per tick with the fixed tick delta. It returns true
// when finished.
type Task interface {
	Step(dt float64) bool
}

// Func adapts a function to a Task.
type Func func(dt float64) bool

func (f Func) Step(dt float64) bool { return f(dt) }

type key[O comparable] struct {
	owner O
	kind  Kind
}

type entry[O comparable] struct {
	key       key[O]
	task      Task
	cancelled bool
	fresh     bool
}

// Scheduler owns pending tasks. Not safe for concurrent use.
type Scheduler[O comparable] struct {
	entries  []*entry[O]
	byKey    map[key[O]]*entry[O]
	stepping bool
}

// New returns an empty scheduler.
func New[O comparable]() *Scheduler[O] {
	return &Scheduler[O]{byKey: make(map[key[O]]*entry[O])}
}

// Start registers task under (owner, kind), cancelling any task already there.
func (s *Scheduler[O]) Start(owner O, kind Kind, task Task) {
	k := key[O]{owner, kind}
	s.Cancel(owner, kind)
	e := &entry[O]{key: k, task: task, fresh: s.stepping}
	s.entries = append(s.entries, e)
	s.byKey[k] = e
}

// Cancel drops the task under (owner, kind). It reports whether one existed.
func (s *Scheduler[O]) Cancel(owner O, kind Kind) bool {
	k := key[O]{owner, kind}
	e, ok := s.byKey[k]
	if !ok {
		return false
	}
	e.cancelled = true
	delete(s.byKey, k)
	if !s.stepping {
		s.compact()
	}
	return true
}

// CancelOwner drops every task belonging to owner.
func (s *Scheduler[O]) CancelOwner(owner O) {
	for k, e := range s.byKey {
		if k.owner == owner {
			e.cancelled = true
			delete(s.byKey, k)
		}
	}
	if !s.stepping {
		s.compact()
	}
}

// Active reports whether a task is pending under (owner, kind).
func (s *Scheduler[O]) Active(owner O, kind Kind) bool {
	_, ok := s.byKey[key[O]{owner, kind}]
	return ok
}

// Len returns the number of pending tasks.
func (s *Scheduler[O]) Len() int {
	return len(s.byKey)
}

// Step advances every pending task by dt.
func (s *Scheduler[O]) Step(dt float64) {
	s.stepping = true
	snapshot := make([]*entry[O], len(s.entries))
	copy(snapshot, s.entries)

	for _, e := range snapshot {
		if e.cancelled || e.fresh {
			continue
		}
		if e.task.Step(dt) && !e.cancelled {
			e.cancelled = true
			delete(s.byKey, e.key)
		}
	}

	s.stepping = false
	for _, e := range s.entries {
		e.fresh = false
	}
	s.compact()
}

func (s *Scheduler[O]) compact() {
	live := s.entries[:0]
	for _, e := range s.entries {
		if !e.cancelled {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(s.entries); i++ {
		s.entries[i] = nil
	}
	s.entries = live
}

// Timer is a Task that fires once after Duration seconds.
type Timer struct {
	Duration float64
	Elapsed  float64
	Done     func()
}

// After returns a one-shot timer task.
func After(seconds float64, done func()) *Timer {
	return &Timer{Duration: seconds, Done: done}
}

func (t *Timer) Step(dt float64) bool {
	t.Elapsed += dt
	if Reached(t.Elapsed, t.Duration) {
		if t.Done != nil {
			t.Done()
		}
		return true
	}
	return false
}

// Reached reports elapsed >= duration, tolerating accumulated float error
// from summing fixed tick deltas.
func Reached(elapsed, duration float64) bool {
	return elapsed >= duration-1e-9
}

// Sequence runs its steps one after another. Each step is a Task; the
// sequence finishes when the last step does.
type Sequence struct {
	steps []Task
	index int
}

// Then chains tasks into a sequence.
func Then(steps ...Task) *Sequence {
	return &Sequence{steps: steps}
}

func (s *Sequence) Step(dt float64) bool {
	for s.index < len(s.steps) {
		if !s.steps[s.index].Step(dt) {
			return false
		}
		s.index++
		// A step finishing on this tick hands the same tick to the next only
		// if the next step is instantaneous.
		dt = 0
	}
	return true
}

// Do wraps an instantaneous action as a task that finishes immediately.
func Do(fn func()) Task {
	return Func(func(float64) bool {
		fn()
		return true
	})
}

// Wait returns a task that finishes after seconds.
func Wait(seconds float64) Task {
	return After(seconds, nil)
}

// Until returns a task that finishes once cond holds.
func Until(cond func() bool) Task {
	return Func(func(float64) bool { return cond() })
}
