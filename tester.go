package canvasray

// HitTester answers whether a pointer position is over UI, optionally
// filtered by layer, layer name, or tag, and which elements are under it.
//
// Every query builds a fresh PointerEvent and issues a fresh raycast; no
// results are cached between calls. A HitTester is not safe for concurrent
// use; call it from the game loop goroutine.
type HitTester struct {
	raycaster Raycaster
	events    *EventSystem
	layers    LayerResolver

	owner    *Canvas
	disposed bool

	// Hover tracking (see hover.go)
	handlers   hoverRegistry
	hover      [maxPointers]hoverState
	store      EntityStore
	pointerBuf []int
}

// NewHitTester binds a hit tester to a raycaster and the event system used
// to build pointer descriptors. layers resolves layer names; nil means
// DefaultLayers. Panics if r or es is nil, including a nil *Canvas or
// *EventSystem passed as r.
func NewHitTester(r Raycaster, es *EventSystem, layers LayerResolver) *HitTester {
	switch rc := r.(type) {
	case nil:
		panic("canvasray: NewHitTester requires a Raycaster")
	case *Canvas:
		if rc == nil {
			panic("canvasray: NewHitTester requires a Raycaster")
		}
	case *EventSystem:
		if rc == nil {
			panic("canvasray: NewHitTester requires a Raycaster")
		}
	}
	if es == nil {
		panic("canvasray: NewHitTester requires an EventSystem")
	}
	if layers == nil {
		layers = DefaultLayers
	}
	return &HitTester{raycaster: r, events: es, layers: layers}
}

// Dispose unbinds the tester. A disposed tester reports no hits.
func (t *HitTester) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	t.raycaster = nil
	if t.owner != nil && t.owner.tester == t {
		t.owner.tester = nil
	}
	t.owner = nil
	t.handlers = hoverRegistry{}
	t.store = nil
}

// IsDisposed reports whether Dispose has been called.
func (t *HitTester) IsDisposed() bool {
	return t.disposed
}

// raycast issues one raycast at pos.
func (t *HitTester) raycast(pos Vec2) []Hit {
	if t.disposed {
		return nil
	}
	return t.raycaster.Raycast(t.events.NewPointerEvent(pos), nil)
}

// countMatches scans the full hit list at pos and counts hits accepted by match.
func (t *HitTester) countMatches(pos Vec2, match func(*Hit) bool) int {
	hits := t.raycast(pos)
	count := 0
	for i := range hits {
		if match(&hits[i]) {
			count++
		}
	}
	return count
}

// IsPointerOverUI reports whether any UI element lies under pos.
func (t *HitTester) IsPointerOverUI(pos Vec2) bool {
	return len(t.raycast(pos)) > 0
}

// IsPointerOverLayer reports whether an element on layer lies under pos.
func (t *HitTester) IsPointerOverLayer(layer Layer, pos Vec2) bool {
	return t.CountOverLayer(layer, pos) > 0
}

// IsPointerOverLayerName reports whether an element on the named layer lies
// under pos. Unknown names resolve to NoLayer and never match.
func (t *HitTester) IsPointerOverLayerName(name string, pos Vec2) bool {
	return t.CountOverLayerName(name, pos) > 0
}

// IsPointerOverTag reports whether an element carrying tag lies under pos.
func (t *HitTester) IsPointerOverTag(tag string, pos Vec2) bool {
	return t.CountOverTag(tag, pos) > 0
}

// IsPointerOverLayerMask reports whether an element on any layer in mask
// lies under pos.
func (t *HitTester) IsPointerOverLayerMask(mask LayerMask, pos Vec2) bool {
	return t.countMatches(pos, func(h *Hit) bool { return mask.Has(h.Layer) }) > 0
}

// PointerOverUI returns every element under pos, frontmost first.
// The result is never nil.
func (t *HitTester) PointerOverUI(pos Vec2) []Hit {
	hits := t.raycast(pos)
	if hits == nil {
		return []Hit{}
	}
	return hits
}

// CountOverLayer returns how many elements on layer lie under pos.
// Layers compare by plain equality, so ids outside [0, MaxLayers) still
// match elements assigned to them. NoLayer matches nothing.
func (t *HitTester) CountOverLayer(layer Layer, pos Vec2) int {
	return t.countMatches(pos, func(h *Hit) bool { return layer != NoLayer && h.Layer == layer })
}

// CountOverLayerName returns how many elements on the named layer lie under pos.
func (t *HitTester) CountOverLayerName(name string, pos Vec2) int {
	return t.CountOverLayer(t.layers.NameToLayer(name), pos)
}

// CountOverTag returns how many elements carrying tag lie under pos.
func (t *HitTester) CountOverTag(tag string, pos Vec2) int {
	return t.countMatches(pos, func(h *Hit) bool { return h.HasTag(tag) })
}

// IsCursorOverUI reports whether any UI element lies under the mouse
// position recorded by the event system's last Update.
func (t *HitTester) IsCursorOverUI() bool {
	return t.IsPointerOverUI(t.events.PrimaryPosition())
}
