package pool

import "testing"

type widget struct {
	proto  string
	active bool
	at     Placement
	parent string
}

func newWidgetPool(known ...string) (*Pool[string, *widget], *int) {
	deactivations := 0
	ok := make(map[string]bool)
	for _, k := range known {
		ok[k] = true
	}
	p := New(
		func(proto string) *widget {
			if !ok[proto] {
				return nil
			}
			return &widget{proto: proto}
		},
		func(w *widget, at Placement) {
			w.active = true
			w.at = at
		},
		func(w *widget) {
			w.active = false
			w.parent = ""
			deactivations++
		},
	)
	return p, &deactivations
}

func TestAcquireCreatesAndPlaces(t *testing.T) {
	p, _ := newWidgetPool("arrow")

	w, ok := p.Acquire("arrow", Placement{X: 1, Y: 2, Rotation: 45})
	if !ok {
		t.Fatal("Acquire failed for known prototype")
	}
	if !w.active || w.at != (Placement{X: 1, Y: 2, Rotation: 45}) {
		t.Errorf("instance not active/placed: %+v", w)
	}
	if p.Created() != 1 || p.Active() != 1 {
		t.Errorf("Created=%d Active=%d, want 1 1", p.Created(), p.Active())
	}
}

func TestAcquireUnknownPrototype(t *testing.T) {
	p, _ := newWidgetPool("arrow")
	if w, ok := p.Acquire("cluster", Placement{}); ok || w != nil {
		t.Errorf("Acquire(unknown) = %v, %v; want nil, false", w, ok)
	}
	if p.Active() != 0 || p.Created() != 0 {
		t.Errorf("unknown prototype should not change pool state")
	}
}

func TestReleaseReusesFIFO(t *testing.T) {
	p, _ := newWidgetPool("arrow")
	a, _ := p.Acquire("arrow", Placement{})
	b, _ := p.Acquire("arrow", Placement{})
	a.parent = "platform"

	p.Release("arrow", a)
	p.Release("arrow", b)
	if a.active || a.parent != "" {
		t.Errorf("released instance still active or attached: %+v", a)
	}
	if p.Idle("arrow") != 2 {
		t.Fatalf("Idle = %d, want 2", p.Idle("arrow"))
	}

	first, _ := p.Acquire("arrow", Placement{X: 5})
	second, _ := p.Acquire("arrow", Placement{X: 6})
	if first != a || second != b {
		t.Errorf("expected FIFO reuse")
	}
	if p.Created() != 2 {
		t.Errorf("Created = %d, want 2 (no growth on reuse)", p.Created())
	}
	if first.at.X != 5 {
		t.Errorf("reused instance not repositioned")
	}
}

func TestRoundTripKeepsQueueLength(t *testing.T) {
	for _, proto := range []string{"arrow", "cluster"} {
		p, _ := newWidgetPool("arrow", "cluster")
		p.Prewarm(proto, 3)
		before := p.Idle(proto)

		w, ok := p.Acquire(proto, Placement{})
		if !ok {
			t.Fatalf("%s: acquire failed", proto)
		}
		p.Release(proto, w)

		if p.Idle(proto) != before {
			t.Errorf("%s: Idle after round trip = %d, want %d", proto, p.Idle(proto), before)
		}
		if p.Active() != 0 {
			t.Errorf("%s: Active after round trip = %d", proto, p.Active())
		}
	}
}

func TestReleaseMisuseIsNoOp(t *testing.T) {
	p, deactivations := newWidgetPool("arrow")
	w, _ := p.Acquire("arrow", Placement{})

	p.Release("arrow", nil)
	p.Release("arrow", w)
	p.Release("arrow", w)

	if p.Idle("arrow") != 1 {
		t.Errorf("double release queued twice: Idle = %d", p.Idle("arrow"))
	}
	if *deactivations != 1 {
		t.Errorf("deactivate called %d times, want 1", *deactivations)
	}

	// Never both active and idle, never two copies in a queue.
	a, _ := p.Acquire("arrow", Placement{})
	b, _ := p.Acquire("arrow", Placement{})
	if a == b {
		t.Errorf("same instance handed out twice")
	}
	if !p.IsActive(a) || !p.IsActive(b) {
		t.Errorf("acquired instances should be active")
	}
}

func TestEachActive(t *testing.T) {
	p, _ := newWidgetPool("arrow", "cluster")
	p.Acquire("arrow", Placement{})
	p.Acquire("cluster", Placement{})
	p.Acquire("cluster", Placement{})

	counts := map[string]int{}
	p.EachActive(func(proto string, w *widget) {
		counts[proto]++
	})
	if counts["arrow"] != 1 || counts["cluster"] != 2 {
		t.Errorf("EachActive counts = %v", counts)
	}
}
