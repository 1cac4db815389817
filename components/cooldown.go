package components

import "github.com/yohamta/donburi"

// CooldownChangedFunc receives a slot and its remaining ratio in [0, 1].
type CooldownChangedFunc func(slot int, ratio float64)

// SlotCooldown is one loadout slot's countdown.
type SlotCooldown struct {
	Active    bool
	Remaining float64
	Duration  float64
}

// Ratio returns Remaining/Duration, 0 when inactive.
func (s SlotCooldown) Ratio() float64 {
	if !s.Active || s.Duration <= 0 {
		return 0
	}
	return s.Remaining / s.Duration
}

type CooldownData struct {
	Slots             []SlotCooldown
	OnCooldownChanged []CooldownChangedFunc
}

var Cooldown = donburi.NewComponentType[CooldownData]()

// NewCooldowns returns idle cooldowns for n slots.
func NewCooldowns(n int) *CooldownData {
	return &CooldownData{Slots: make([]SlotCooldown, n)}
}

// Ready reports whether slot has no active countdown. Out-of-range slots are
// never ready.
func (c *CooldownData) Ready(slot int) bool {
	if slot < 0 || slot >= len(c.Slots) {
		return false
	}
	return !c.Slots[slot].Active
}

// Emit notifies every listener.
func (c *CooldownData) Emit(slot int, ratio float64) {
	for _, fn := range c.OnCooldownChanged {
		fn(slot, ratio)
	}
}
