package canvasray

import (
	"slices"
	"time"
)

// Canvas is the root of one UI tree and the raycaster for it.
type Canvas struct {
	Name string

	// RenderMode selects how pointer positions map to canvas coordinates.
	RenderMode RenderMode
	// Camera is used when RenderMode is ScreenSpaceCamera. A nil camera
	// behaves like ScreenSpaceOverlay.
	Camera *Camera
	// SortOrder orders canvases inside an EventSystem. Higher values are
	// in front and are raycast first.
	SortOrder int
	// IgnoreReversed skips elements whose world transform mirrors them
	// (negative scale on one axis), i.e. elements seen from behind.
	IgnoreReversed bool

	root   *Element
	hitBuf []*Element
	tester *HitTester
	debug  bool
}

// NewCanvas creates a canvas with an empty root container.
func NewCanvas(name string) *Canvas {
	root := NewContainer("root")
	return &Canvas{
		Name: name,
		root: root,
	}
}

// Root returns the canvas's root container.
func (c *Canvas) Root() *Element {
	return c.root
}

// Update advances the camera scroll animation and refreshes world transforms.
// Raycast refreshes transforms on its own; Update exists so a game loop can
// keep Element.LocalToWorld current between raycasts.
func (c *Canvas) Update(dt float32) {
	if c.Camera != nil {
		c.Camera.Update(dt)
	}
	updateWorldTransform(c.root, identityTransform, false)
}

// ScreenToCanvas converts a screen position into canvas coordinates.
// ok is false when the position lies outside the camera viewport.
func (c *Canvas) ScreenToCanvas(sx, sy float64) (wx, wy float64, ok bool) {
	if c.RenderMode == ScreenSpaceCamera && c.Camera != nil {
		if !c.Camera.Viewport.Contains(sx, sy) {
			return 0, 0, false
		}
		wx, wy = c.Camera.ScreenToWorld(sx, sy)
		return wx, wy, true
	}
	return sx, sy, true
}

// --- Hit tester ownership ---

// AttachHitTester makes t the canvas's hit tester and returns the tester
// that is live afterwards. The first tester attached wins: if the canvas
// already owns a live tester, t is disposed and the existing one returned.
func (c *Canvas) AttachHitTester(t *HitTester) *HitTester {
	if t == nil {
		return c.HitTester()
	}
	if cur := c.HitTester(); cur != nil {
		if cur != t {
			t.Dispose()
		}
		return cur
	}
	c.tester = t
	t.owner = c
	return t
}

// HitTester returns the canvas's live hit tester, or nil.
func (c *Canvas) HitTester() *HitTester {
	if c.tester != nil && c.tester.IsDisposed() {
		c.tester = nil
	}
	return c.tester
}

// --- Raycasting ---

// collectTargets walks the tree in painter order (DFS, ZIndex-sorted),
// appending raycast targets to buf. Skips Visible=false and
// BlocksRaycasts=false subtrees.
func collectTargets(e *Element, buf []*Element) []*Element {
	if !e.Visible || !e.BlocksRaycasts || e.disposed {
		return buf
	}
	if e.RaycastTarget && (e.HitShape != nil || e.Width != 0 || e.Height != 0) {
		buf = append(buf, e)
	}
	for _, child := range e.paintOrder() {
		buf = collectTargets(child, buf)
	}
	return buf
}

// Raycast appends every element under ev.Position to dst, frontmost first.
func (c *Canvas) Raycast(ev *PointerEvent, dst []Hit) []Hit {
	if ev == nil {
		return dst
	}
	var start time.Time
	if c.debug {
		start = time.Now()
	}

	wx, wy, ok := c.ScreenToCanvas(ev.Position.X, ev.Position.Y)
	if !ok {
		return dst
	}

	updateWorldTransform(c.root, identityTransform, false)
	c.hitBuf = collectTargets(c.root, c.hitBuf[:0])

	first := len(dst)
	// Reverse painter order: topmost visual element first.
	for i := len(c.hitBuf) - 1; i >= 0; i-- {
		e := c.hitBuf[i]
		if c.IgnoreReversed && determinant(e.worldTransform) < 0 {
			continue
		}
		inv, invertible := invertAffine(e.worldTransform)
		if !invertible {
			continue // collapsed to zero area
		}
		lx, ly := transformPoint(inv, wx, wy)
		if !elementContainsLocal(e, lx, ly) {
			continue
		}
		dst = append(dst, Hit{
			ElementID:      e.ID,
			Name:           e.Name,
			Layer:          e.Layer,
			Tags:           slices.Clone(e.tags),
			Depth:          i,
			Index:          len(dst) - first,
			ScreenPosition: ev.Position,
			LocalPosition:  Vec2{X: lx, Y: ly},
			Element:        e,
		})
	}

	if c.debug {
		c.debugLog(raycastStats{
			elapsed:    time.Since(start),
			candidates: len(c.hitBuf),
			hits:       len(dst) - first,
			position:   ev.Position,
		})
	}
	clear(c.hitBuf)
	return dst
}
