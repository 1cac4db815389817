package components

import (
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func TestTakeDamageClamp(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		amount   int
		wantCur  int
		wantDead bool
	}{
		{"partial", 111, 50, 61, false},
		{"exact", 61, 61, 0, true},
		{"overkill", 20, 500, 0, true},
		{"zero", 30, 0, 30, false},
		{"negative treated as zero", 30, -15, 30, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HealthData{Current: tt.start, Max: 111}
			h.TakeDamage(tt.amount, dmath.Vec2{}, dmath.Vec2{})
			if h.Current != tt.wantCur {
				t.Errorf("Current = %d, want %d", h.Current, tt.wantCur)
			}
			if h.Dead != tt.wantDead {
				t.Errorf("Dead = %v, want %v", h.Dead, tt.wantDead)
			}
		})
	}
}

func TestHealthScenario(t *testing.T) {
	h := NewHealth(111)

	var order []string
	deaths := 0
	var lastAmount int
	var lastAnchor dmath.Vec2
	h.OnDamageTaken = append(h.OnDamageTaken, func(amount int, anchor, dir dmath.Vec2) {
		order = append(order, "damage")
		lastAmount = amount
		lastAnchor = anchor
	})
	h.OnHPChanged = append(h.OnHPChanged, func(cur, max int) {
		order = append(order, "hp")
		if max != 111 {
			t.Errorf("max = %d", max)
		}
	})
	h.OnDead = append(h.OnDead, func() {
		order = append(order, "dead")
		deaths++
	})

	h.TakeDamage(50, dmath.Vec2{X: 2, Y: 3.5}, dmath.Vec2{X: 1})
	if h.Current != 61 || h.Dead {
		t.Fatalf("after 50: Current=%d Dead=%v", h.Current, h.Dead)
	}
	if lastAmount != 50 || lastAnchor.Y != 3.5 {
		t.Errorf("damage event = %d at %+v", lastAmount, lastAnchor)
	}

	h.TakeDamage(61, dmath.Vec2{}, dmath.Vec2{})
	if h.Current != 0 || !h.Dead {
		t.Fatalf("after 61: Current=%d Dead=%v", h.Current, h.Dead)
	}

	h.TakeDamage(10, dmath.Vec2{}, dmath.Vec2{})
	if h.Current != 0 || !h.Dead {
		t.Errorf("after death: Current=%d Dead=%v", h.Current, h.Dead)
	}
	if deaths != 1 {
		t.Errorf("death event fired %d times, want 1", deaths)
	}

	want := []string{"damage", "hp", "damage", "hp", "dead"}
	if len(order) != len(want) {
		t.Fatalf("event order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("event %d = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestHealthRatio(t *testing.T) {
	h := &HealthData{Current: 55, Max: 110}
	if h.Ratio() != 0.5 {
		t.Errorf("Ratio = %v", h.Ratio())
	}
	if (&HealthData{}).Ratio() != 0 {
		t.Errorf("zero max should give 0")
	}
}
