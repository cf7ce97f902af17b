package canvasray

import "testing"

type recordingStore struct {
	events []HoverEvent
}

func (s *recordingStore) EmitEvent(ev HoverEvent) {
	s.events = append(s.events, ev)
}

func newHoverFixture() (*Canvas, *EventSystem, *HitTester, *Element) {
	c := NewCanvas("hud")
	panel := NewElement("panel", 100, 100)
	c.Root().AddChild(panel)
	es := NewEventSystem()
	ht := c.AttachHitTester(NewHitTester(c, es, nil))
	return c, es, ht, panel
}

func step(es *EventSystem, ht *HitTester, x, y float64) {
	es.InjectMove(x, y)
	es.Update()
	ht.Update()
}

func TestHoverEnterLeave(t *testing.T) {
	_, es, ht, panel := newHoverFixture()
	var got []HoverEvent
	ht.OnHoverChange(func(ev HoverEvent) { got = append(got, ev) })

	step(es, ht, 500, 500) // outside: no change from initial state
	step(es, ht, 50, 50)   // enter
	step(es, ht, 60, 60)   // same element: no event
	step(es, ht, 500, 500) // leave

	if len(got) != 2 {
		t.Fatalf("events = %+v, want 2", got)
	}
	enter := got[0]
	if !enter.Over || enter.ElementID != panel.ID || enter.Layer != LayerUI || enter.PointerID != 0 {
		t.Errorf("enter = %+v", enter)
	}
	if enter.Position != (Vec2{X: 50, Y: 50}) {
		t.Errorf("enter position = %v", enter.Position)
	}
	leave := got[1]
	if leave.Over || leave.ElementID != 0 || leave.Layer != NoLayer {
		t.Errorf("leave = %+v", leave)
	}
}

func TestHoverTopElementChange(t *testing.T) {
	c, es, ht, _ := newHoverFixture()
	btn := NewElement("btn", 20, 20)
	c.Root().AddChild(btn)

	var got []HoverEvent
	ht.OnHoverChange(func(ev HoverEvent) { got = append(got, ev) })

	step(es, ht, 50, 50) // panel
	step(es, ht, 10, 10) // btn on top of panel

	if len(got) != 2 {
		t.Fatalf("events = %+v, want 2", got)
	}
	if got[1].ElementID != btn.ID || !got[1].Over {
		t.Errorf("second event = %+v, want over btn", got[1])
	}
}

func TestHoverCallbackRemove(t *testing.T) {
	_, es, ht, _ := newHoverFixture()
	count := 0
	h := ht.OnHoverChange(func(HoverEvent) { count++ })
	h.Remove()
	step(es, ht, 50, 50)
	if count != 0 {
		t.Errorf("removed callback fired %d times", count)
	}
	CallbackHandle{}.Remove() // zero handle is a no-op
}

func TestHoverCallbackRemovesItself(t *testing.T) {
	_, es, ht, _ := newHoverFixture()
	once, other := 0, 0
	var h CallbackHandle
	h = ht.OnHoverChange(func(HoverEvent) {
		once++
		h.Remove()
	})
	ht.OnHoverChange(func(HoverEvent) { other++ })

	step(es, ht, 50, 50)   // enter
	step(es, ht, 500, 500) // leave

	if once != 1 {
		t.Errorf("self-removing callback fired %d times, want 1", once)
	}
	if other != 2 {
		t.Errorf("remaining callback fired %d times, want 2", other)
	}
}

func TestHoverCallbackRemovesLaterCallback(t *testing.T) {
	_, es, ht, _ := newHoverFixture()
	fired := 0
	var later CallbackHandle
	ht.OnHoverChange(func(HoverEvent) { later.Remove() })
	later = ht.OnHoverChange(func(HoverEvent) { fired++ })

	step(es, ht, 50, 50)   // both run; later removed during dispatch
	step(es, ht, 500, 500) // later is gone

	if fired != 1 {
		t.Errorf("removed callback fired %d times, want 1", fired)
	}
}

func TestHoverEntityStore(t *testing.T) {
	_, es, ht, _ := newHoverFixture()
	store := &recordingStore{}
	ht.SetEntityStore(store)
	step(es, ht, 50, 50)
	if len(store.events) != 1 || !store.events[0].Over {
		t.Errorf("store events = %+v", store.events)
	}
	ht.SetEntityStore(nil)
	step(es, ht, 500, 500)
	if len(store.events) != 1 {
		t.Error("detached store should not receive events")
	}
}

func TestHoverTouchPointerGoesAway(t *testing.T) {
	_, es, ht, _ := newHoverFixture()
	var got []HoverEvent
	ht.OnHoverChange(func(ev HoverEvent) { got = append(got, ev) })

	es.setPointer(2, 50, 50, true, MouseButtonLeft)
	ht.Update()
	es.releasePointer(2)
	ht.Update()

	if len(got) != 2 {
		t.Fatalf("events = %+v, want enter and leave", got)
	}
	if got[0].PointerID != 2 || !got[0].Over {
		t.Errorf("enter = %+v", got[0])
	}
	if got[1].PointerID != 2 || got[1].Over {
		t.Errorf("leave = %+v", got[1])
	}
}

func TestHoverDisposedTesterIsSilent(t *testing.T) {
	_, es, ht, _ := newHoverFixture()
	count := 0
	ht.OnHoverChange(func(HoverEvent) { count++ })
	ht.Dispose()
	step(es, ht, 50, 50)
	if count != 0 {
		t.Errorf("disposed tester fired %d events", count)
	}
}
