package canvasray

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields on an Element simultaneously.
// Create one via TweenPosition, TweenScale, or TweenRotation and call
// Update(dt) each frame. The group writes values and marks the element
// dirty, so the next raycast sees the element where it is drawn. If the
// target element is disposed, the group stops immediately.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	target *Element
	Done   bool
}

// Update advances all tweens by dt seconds.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.MarkDirty()
	}
}

// TweenPosition animates e.X and e.Y to (toX, toY).
func TweenPosition(e *Element, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: e}
	g.tweens[0] = gween.New(float32(e.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(e.Y), float32(toY), duration, fn)
	g.fields[0] = &e.X
	g.fields[1] = &e.Y
	return g
}

// TweenScale animates e.ScaleX and e.ScaleY to (toSX, toSY).
func TweenScale(e *Element, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: e}
	g.tweens[0] = gween.New(float32(e.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(e.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &e.ScaleX
	g.fields[1] = &e.ScaleY
	return g
}

// TweenRotation animates e.Rotation to the target value in radians.
func TweenRotation(e *Element, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: e}
	g.tweens[0] = gween.New(float32(e.Rotation), float32(to), duration, fn)
	g.fields[0] = &e.Rotation
	return g
}
