package canvasray

import "testing"

func TestNewEventSystemMouseActive(t *testing.T) {
	es := NewEventSystem()
	if _, ok := es.Pointer(0); !ok {
		t.Error("mouse pointer should be active")
	}
	if _, ok := es.Pointer(1); ok {
		t.Error("touch pointer 1 should be inactive")
	}
	if _, ok := es.Pointer(-1); ok {
		t.Error("negative id should be rejected")
	}
	if _, ok := es.Pointer(maxPointers); ok {
		t.Error("out-of-range id should be rejected")
	}
	if got := es.AppendActivePointers(nil); len(got) != 1 || got[0] != 0 {
		t.Errorf("active pointers = %v, want [0]", got)
	}
}

func TestNewPointerEvent(t *testing.T) {
	es := NewEventSystem()
	ev := es.NewPointerEvent(Vec2{X: 1, Y: 2})
	if ev.PointerID != 0 || ev.Position != (Vec2{X: 1, Y: 2}) {
		t.Errorf("event = %+v", ev)
	}
	if ev.EventSystem() != es {
		t.Error("event should reference its event system")
	}
}

// --- Injection ---

func TestInjectMoveConsumedOnePerUpdate(t *testing.T) {
	es := NewEventSystem()
	es.InjectMove(10, 20)
	es.InjectMove(30, 40)
	if es.PendingInjections() != 2 {
		t.Fatalf("pending = %d, want 2", es.PendingInjections())
	}

	es.Update()
	if got := es.PrimaryPosition(); got != (Vec2{X: 10, Y: 20}) {
		t.Errorf("after first Update position = %v", got)
	}
	es.Update()
	if got := es.PrimaryPosition(); got != (Vec2{X: 30, Y: 40}) {
		t.Errorf("after second Update position = %v", got)
	}
	p, _ := es.Pointer(0)
	if p.Delta != (Vec2{X: 20, Y: 20}) {
		t.Errorf("Delta = %v, want (20, 20)", p.Delta)
	}
	if es.PendingInjections() != 0 {
		t.Error("queue should be drained")
	}
}

func TestInjectClick(t *testing.T) {
	es := NewEventSystem()
	es.InjectClick(5, 5)

	es.Update()
	p, _ := es.Pointer(0)
	if !p.Pressed || p.Button != MouseButtonLeft {
		t.Errorf("after press: %+v", p)
	}
	es.Update()
	p, _ = es.Pointer(0)
	if p.Pressed {
		t.Errorf("after release: %+v", p)
	}
}

func TestFirstSampleHasNoDelta(t *testing.T) {
	es := NewEventSystem()
	es.InjectMove(100, 100)
	es.Update()
	p, _ := es.Pointer(0)
	if p.Delta != (Vec2{}) {
		t.Errorf("first sample Delta = %v, want zero", p.Delta)
	}
}

// --- Touch slots ---

func TestTouchSlotAllocation(t *testing.T) {
	es := NewEventSystem()
	s1 := es.touchSlot(101)
	s2 := es.touchSlot(202)
	if s1 != 1 || s2 != 2 {
		t.Errorf("slots = %d, %d, want 1, 2", s1, s2)
	}
	if got := es.touchSlot(101); got != s1 {
		t.Errorf("existing touch should keep slot %d, got %d", s1, got)
	}
	for i := 3; i < maxPointers; i++ {
		es.touchSlot(touchID(1000 + i))
	}
	if got := es.touchSlot(9999); got != -1 {
		t.Errorf("full table slot = %d, want -1", got)
	}
}

func TestReleaseTouchPointer(t *testing.T) {
	es := NewEventSystem()
	es.setPointer(3, 10, 10, true, MouseButtonLeft)
	if _, ok := es.Pointer(3); !ok {
		t.Fatal("pointer 3 should be active")
	}
	es.releasePointer(3)
	if _, ok := es.Pointer(3); ok {
		t.Error("released touch pointer should be inactive")
	}
	es.releasePointer(0)
	if _, ok := es.Pointer(0); !ok {
		t.Error("mouse pointer should stay active after release")
	}
}

// --- Canvas registry ---

func TestAddRemoveCanvas(t *testing.T) {
	es := NewEventSystem()
	a := NewCanvas("a")
	b := NewCanvas("b")
	es.AddCanvas(a)
	es.AddCanvas(b)
	es.AddCanvas(a)
	es.AddCanvas(nil)
	if len(es.Canvases()) != 2 {
		t.Fatalf("canvases = %d, want 2", len(es.Canvases()))
	}
	es.RemoveCanvas(a)
	if len(es.Canvases()) != 1 || es.Canvases()[0] != b {
		t.Error("RemoveCanvas should remove a")
	}
	es.RemoveCanvas(a) // no-op
}

func TestEventSystemRaycastSortOrder(t *testing.T) {
	back := NewCanvas("back")
	back.Root().AddChild(NewElement("back-el", 100, 100))
	front := NewCanvas("front")
	front.SortOrder = 10
	front.Root().AddChild(NewElement("front-el", 100, 100))
	tie := NewCanvas("tie")
	tie.Root().AddChild(NewElement("tie-el", 100, 100))

	es := NewEventSystem()
	es.AddCanvas(back)
	es.AddCanvas(front)
	es.AddCanvas(tie)

	hits := es.Raycast(es.NewPointerEvent(Vec2{X: 50, Y: 50}), nil)
	want := []string{"front-el", "back-el", "tie-el"}
	got := hitNames(hits)
	if len(got) != len(want) {
		t.Fatalf("hits = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("hits = %v, want %v", got, want)
			break
		}
		if hits[i].Index != i {
			t.Errorf("hits[%d].Index = %d", i, hits[i].Index)
		}
	}
	// Registration order is untouched by sorting.
	if es.Canvases()[0] != back {
		t.Error("Canvases order should not change")
	}
}

func TestHitTesterOverEventSystem(t *testing.T) {
	hud := NewCanvas("hud")
	hud.SortOrder = 1
	btn := NewElement("btn", 50, 50)
	btn.AddTag("Button")
	hud.Root().AddChild(btn)

	world := NewCanvas("world-ui")
	label := NewElement("label", 200, 200)
	label.Layer = 8
	world.Root().AddChild(label)

	es := NewEventSystem()
	es.AddCanvas(hud)
	es.AddCanvas(world)
	ht := NewHitTester(es, es, nil)

	hits := ht.PointerOverUI(Vec2{X: 10, Y: 10})
	if len(hits) != 2 || hits[0].Element != btn {
		t.Errorf("hits = %v, want [btn label]", hitNames(hits))
	}
	if !ht.IsPointerOverLayer(8, Vec2{X: 10, Y: 10}) {
		t.Error("should see the world canvas layer")
	}
	if ht.IsPointerOverTag("Button", Vec2{X: 100, Y: 100}) {
		t.Error("button is not under (100,100)")
	}
}
