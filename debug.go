package canvasray

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// globalDebug enables tree-operation checks. Set by Canvas.SetDebugMode.
var globalDebug bool

// debugOut is where debug lines are written.
var debugOut io.Writer = os.Stderr

// SetDebugMode enables per-raycast stats on stderr and checks on tree
// operations (disposed elements panic, deep trees and wide nodes warn).
func (c *Canvas) SetDebugMode(enabled bool) {
	c.debug = enabled
	globalDebug = enabled
}

// raycastStats holds the numbers reported for one raycast.
type raycastStats struct {
	elapsed    time.Duration
	candidates int
	hits       int
	position   Vec2
}

// debugLog prints one raycast's stats.
func (c *Canvas) debugLog(stats raycastStats) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut,
		"[canvasray] canvas %q raycast (%.1f, %.1f): candidates: %d | hits: %d | time: %v\n",
		c.Name, stats.position.X, stats.position.Y, stats.candidates, stats.hits, stats.elapsed)
}

// debugCheckDisposed panics with a descriptive message when a disposed
// element is used in a tree operation.
func debugCheckDisposed(e *Element, op string) {
	if e.disposed {
		panic(fmt.Sprintf("canvasray debug: %s on disposed element %q", op, e.Name))
	}
}

const debugMaxTreeDepth = 32

// debugCheckTreeDepth warns if tree depth exceeds debugMaxTreeDepth.
func debugCheckTreeDepth(e *Element) {
	depth := 0
	for p := e; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(debugOut, "[canvasray] warning: tree depth %d exceeds %d (element %q)\n",
			depth, debugMaxTreeDepth, e.Name)
	}
}

const debugMaxChildCount = 1000

// debugCheckChildCount warns if an element has more than debugMaxChildCount children.
func debugCheckChildCount(e *Element) {
	if len(e.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(debugOut, "[canvasray] warning: element %q has %d children (threshold %d)\n",
			e.Name, len(e.children), debugMaxChildCount)
	}
}

var (
	debugTargetColor = color.RGBA{0, 255, 128, 255}
	debugHitColor    = color.RGBA{255, 64, 64, 255}
)

// DrawDebug outlines every raycast target's hit box on screen. Targets
// under the mouse position of es (which may be nil) are drawn in red.
// Custom HitShapes are outlined by their element's Width x Height box.
func (c *Canvas) DrawDebug(screen *ebiten.Image, es *EventSystem) {
	updateWorldTransform(c.root, identityTransform, false)

	var hitIDs map[uint32]bool
	if es != nil {
		hits := c.Raycast(es.NewPointerEvent(es.PrimaryPosition()), nil)
		hitIDs = make(map[uint32]bool, len(hits))
		for _, h := range hits {
			hitIDs[h.ElementID] = true
		}
	}

	c.hitBuf = collectTargets(c.root, c.hitBuf[:0])
	for _, e := range c.hitBuf {
		clr := debugTargetColor
		if hitIDs[e.ID] {
			clr = debugHitColor
		}
		c.strokeElement(screen, e, clr)
	}
	clear(c.hitBuf)
}

// strokeElement draws the four edges of e's local box in screen space.
func (c *Canvas) strokeElement(screen *ebiten.Image, e *Element, clr color.Color) {
	corners := [4]Vec2{{0, 0}, {e.Width, 0}, {e.Width, e.Height}, {0, e.Height}}
	var pts [4]Vec2
	for i, p := range corners {
		wx, wy := e.LocalToWorld(p.X, p.Y)
		if c.RenderMode == ScreenSpaceCamera && c.Camera != nil {
			wx, wy = c.Camera.WorldToScreen(wx, wy)
		}
		pts[i] = Vec2{X: wx, Y: wy}
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, clr, false)
	}
}
