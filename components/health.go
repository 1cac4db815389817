package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// DamageTakenFunc receives the applied amount, the popup anchor and the hit
// direction.
type DamageTakenFunc func(amount int, anchor, direction dmath.Vec2)

// HPChangedFunc receives the new and maximum hit points.
type HPChangedFunc func(current, max int)

type HealthData struct {
	Current int
	Max     int
	Dead    bool

	// Listeners run synchronously in the order DamageTaken, HPChanged, Dead.
	OnDamageTaken []DamageTakenFunc
	OnHPChanged   []HPChangedFunc
	OnDead        []func()
}

var Health = donburi.NewComponentType[HealthData]()

// NewHealth returns a full health pool.
func NewHealth(max int) *HealthData {
	return &HealthData{Current: max, Max: max}
}

// TakeDamage lowers Current by amount, never below zero. Negative amounts
// count as zero. Damage to a dead entity is ignored.
func (h *HealthData) TakeDamage(amount int, anchor, direction dmath.Vec2) {
	if h.Dead {
		return
	}
	if amount < 0 {
		amount = 0
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}

	for _, fn := range h.OnDamageTaken {
		fn(amount, anchor, direction)
	}
	for _, fn := range h.OnHPChanged {
		fn(h.Current, h.Max)
	}

	if h.Current == 0 {
		h.Dead = true
		for _, fn := range h.OnDead {
			fn()
		}
	}
}

// Ratio returns Current/Max.
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}
