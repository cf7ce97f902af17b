package canvasray

import (
	"cmp"
	"slices"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// PointerEvent describes one pointer at one instant. It is the descriptor
// handed to a Raycaster and is rebuilt for every query.
type PointerEvent struct {
	PointerID int
	Position  Vec2
	Delta     Vec2
	Button    MouseButton
	Pressed   bool

	system *EventSystem
}

// EventSystem returns the event system that created the event.
func (ev *PointerEvent) EventSystem() *EventSystem {
	return ev.system
}

// --- Per-pointer state ---

type pointerState struct {
	active  bool
	down    bool
	pos     Vec2
	delta   Vec2
	button  MouseButton
	touched bool // position was set at least once
}

// EventSystem coordinates pointer input across the canvases registered
// with it. It polls ebiten for mouse and touch state in Update and builds
// the PointerEvent descriptors used for raycasting.
type EventSystem struct {
	canvases []*Canvas
	sortBuf  []*Canvas

	pointers     [maxPointers]pointerState
	injectQueue  []syntheticPointerEvent
	touchMap     [maxPointers]touchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []touchID
}

// NewEventSystem creates an event system. Pointer 0 (the mouse) is always
// active; touch pointers become active while a finger is down.
func NewEventSystem() *EventSystem {
	es := &EventSystem{}
	es.pointers[0].active = true
	return es
}

// NewPointerEvent builds a descriptor for the mouse pointer at pos.
func (es *EventSystem) NewPointerEvent(pos Vec2) *PointerEvent {
	return &PointerEvent{PointerID: 0, Position: pos, system: es}
}

// pointerEvent builds a descriptor from the tracked state of pointer id.
func (es *EventSystem) pointerEvent(id int) *PointerEvent {
	ps := &es.pointers[id]
	return &PointerEvent{
		PointerID: id,
		Position:  ps.pos,
		Delta:     ps.delta,
		Button:    ps.button,
		Pressed:   ps.down,
		system:    es,
	}
}

// Pointer returns the current state of pointer id. ok is false for
// out-of-range ids and inactive touch pointers.
func (es *EventSystem) Pointer(id int) (ev PointerEvent, ok bool) {
	if id < 0 || id >= maxPointers || !es.pointers[id].active {
		return PointerEvent{}, false
	}
	return *es.pointerEvent(id), true
}

// PrimaryPosition returns the mouse position as of the last Update.
func (es *EventSystem) PrimaryPosition() Vec2 {
	return es.pointers[0].pos
}

// AppendActivePointers appends the ids of active pointers to dst.
func (es *EventSystem) AppendActivePointers(dst []int) []int {
	for i := range es.pointers {
		if es.pointers[i].active {
			dst = append(dst, i)
		}
	}
	return dst
}

// --- Canvases ---

// AddCanvas registers c for Raycast. Adding a canvas twice is a no-op.
func (es *EventSystem) AddCanvas(c *Canvas) {
	if c == nil || slices.Contains(es.canvases, c) {
		return
	}
	es.canvases = append(es.canvases, c)
}

// RemoveCanvas unregisters c.
func (es *EventSystem) RemoveCanvas(c *Canvas) {
	if i := slices.Index(es.canvases, c); i >= 0 {
		es.canvases = slices.Delete(es.canvases, i, i+1)
	}
}

// Canvases returns the registered canvases in registration order.
// The returned slice MUST NOT be mutated by the caller.
func (es *EventSystem) Canvases() []*Canvas {
	return es.canvases
}

// Raycast appends the hits of every registered canvas to dst. Canvases are
// visited from highest SortOrder to lowest (registration order breaks
// ties), so the frontmost canvas's hits come first.
func (es *EventSystem) Raycast(ev *PointerEvent, dst []Hit) []Hit {
	es.sortBuf = append(es.sortBuf[:0], es.canvases...)
	slices.SortStableFunc(es.sortBuf, func(a, b *Canvas) int {
		return cmp.Compare(b.SortOrder, a.SortOrder)
	})
	first := len(dst)
	for _, c := range es.sortBuf {
		n := len(dst)
		dst = c.Raycast(ev, dst)
		for i := n; i < len(dst); i++ {
			dst[i].Index = i - first
		}
	}
	clear(es.sortBuf)
	return dst
}

// --- Frame update ---

// Update refreshes pointer state. Queued synthetic events take priority:
// while any are pending, one is consumed per call and real mouse input is
// skipped.
func (es *EventSystem) Update() {
	if es.processInjectedInput() {
		return
	}
	es.pollMouse()
	es.pollTouches()
}

// setPointer records a new sample for pointer id.
func (es *EventSystem) setPointer(id int, x, y float64, pressed bool, button MouseButton) {
	ps := &es.pointers[id]
	if ps.touched {
		ps.delta = Vec2{X: x - ps.pos.X, Y: y - ps.pos.Y}
	} else {
		ps.delta = Vec2{}
	}
	ps.pos = Vec2{X: x, Y: y}
	ps.down = pressed
	ps.button = button
	ps.active = true
	ps.touched = true
}

// releasePointer deactivates touch pointer id.
func (es *EventSystem) releasePointer(id int) {
	if id == 0 {
		es.pointers[0].down = false
		return
	}
	es.pointers[id] = pointerState{}
}
