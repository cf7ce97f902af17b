package canvasray

import "slices"

// HoverEvent reports that a pointer moved onto, off, or across UI.
type HoverEvent struct {
	PointerID int
	Position  Vec2
	// Over is true while the pointer is over any UI element.
	Over bool
	// ElementID and Layer describe the frontmost element under the
	// pointer. ElementID is 0 and Layer is NoLayer when Over is false.
	ElementID uint32
	Layer     Layer
}

// EntityStore is the interface for optional ECS integration.
// When set on a HitTester, hover events are forwarded to it.
type EntityStore interface {
	EmitEvent(event HoverEvent)
}

type hoverState struct {
	over bool
	top  uint32
}

type hoverHandler struct {
	id uint32
	fn func(HoverEvent)
}

type hoverRegistry struct {
	handlers []hoverHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered hover callback.
type CallbackHandle struct {
	id     uint32
	tester *HitTester
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.tester == nil {
		return
	}
	reg := &h.tester.handlers
	reg.handlers = slices.DeleteFunc(slices.Clone(reg.handlers), func(hh hoverHandler) bool {
		return hh.id == h.id
	})
}

// OnHoverChange registers a callback fired from Update whenever a pointer's
// over-UI state or frontmost element changes.
func (t *HitTester) OnHoverChange(fn func(HoverEvent)) CallbackHandle {
	t.handlers.nextID++
	id := t.handlers.nextID
	t.handlers.handlers = append(t.handlers.handlers, hoverHandler{id: id, fn: fn})
	return CallbackHandle{id: id, tester: t}
}

// SetEntityStore sets the ECS bridge that receives hover events. nil disables it.
func (t *HitTester) SetEntityStore(store EntityStore) {
	t.store = store
}

// Update raycasts every active pointer of the event system and fires
// hover events for pointers whose state changed since the last Update.
// Call it once per frame after EventSystem.Update.
func (t *HitTester) Update() {
	if t.disposed {
		return
	}
	var seen [maxPointers]bool
	t.pointerBuf = t.events.AppendActivePointers(t.pointerBuf[:0])
	for _, id := range t.pointerBuf {
		seen[id] = true
		ev := t.events.pointerEvent(id)
		hits := t.raycaster.Raycast(ev, nil)

		next := hoverState{}
		layer := NoLayer
		if len(hits) > 0 {
			next = hoverState{over: true, top: hits[0].ElementID}
			layer = hits[0].Layer
		}
		if next == t.hover[id] {
			continue
		}
		t.hover[id] = next
		t.fireHover(HoverEvent{
			PointerID: id,
			Position:  ev.Position,
			Over:      next.over,
			ElementID: next.top,
			Layer:     layer,
		})
	}

	// Pointers that went away leave the UI.
	for id := range t.hover {
		if seen[id] || !t.hover[id].over {
			continue
		}
		t.hover[id] = hoverState{}
		t.fireHover(HoverEvent{PointerID: id, Layer: NoLayer})
	}
}

// fireHover dispatches over a snapshot so callbacks may remove themselves
// or register others while running.
func (t *HitTester) fireHover(ev HoverEvent) {
	for _, h := range slices.Clone(t.handlers.handlers) {
		h.fn(ev)
	}
	if t.store != nil {
		t.store.EmitEvent(ev)
	}
}
