package canvasray

// elementIDCounter is a plain counter (no atomic; canvasray is single-threaded).
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is a node in a canvas UI tree. A single flat struct is used for
// every kind of element; what an element looks like is the caller's business,
// canvasray only needs its transform, hit region, layer, and tags.
type Element struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Element
	children []*Element

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	// Width and Height define the default hit box in local coordinates,
	// spanning (0,0) to (Width,Height). Ignored when HitShape is set.
	Width, Height float64

	worldTransform [6]float64
	transformDirty bool

	// Visible=false hides the element and its subtree from raycasts.
	Visible bool
	// RaycastTarget marks the element itself as hit-testable.
	RaycastTarget bool
	// BlocksRaycasts=false removes the whole subtree from raycasts while
	// leaving it visible.
	BlocksRaycasts bool

	// Ordering
	ZIndex int

	// Classification
	Layer Layer
	tags  []string

	// Hit testing
	HitShape HitShape

	// Metadata
	UserData any
	EntityID uint32

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Element // reused buffer for ZIndex-sorted traversal order
}

// elementDefaults sets the common default field values shared by all constructors.
func elementDefaults(e *Element) {
	e.ID = nextElementID()
	e.ScaleX = 1
	e.ScaleY = 1
	e.Visible = true
	e.BlocksRaycasts = true
	e.Layer = LayerUI
	e.transformDirty = true
	e.childrenSorted = true
	e.worldTransform = identityTransform
}

// NewContainer creates a grouping element. Containers are not raycast
// targets unless RaycastTarget is set and they have a size or HitShape.
func NewContainer(name string) *Element {
	e := &Element{Name: name}
	elementDefaults(e)
	return e
}

// NewElement creates a raycast target with a width x height hit box.
func NewElement(name string, width, height float64) *Element {
	e := &Element{Name: name, Width: width, Height: height, RaycastTarget: true}
	elementDefaults(e)
	return e
}

// --- Tags ---

// AddTag adds tag to the element. Adding a tag twice is a no-op.
func (e *Element) AddTag(tag string) {
	if tag == "" || e.HasTag(tag) {
		return
	}
	e.tags = append(e.tags, tag)
}

// RemoveTag removes tag from the element if present.
func (e *Element) RemoveTag(tag string) {
	for i, t := range e.tags {
		if t == tag {
			copy(e.tags[i:], e.tags[i+1:])
			e.tags[len(e.tags)-1] = ""
			e.tags = e.tags[:len(e.tags)-1]
			return
		}
	}
}

// HasTag reports whether the element carries tag.
func (e *Element) HasTag(tag string) bool {
	for _, t := range e.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Tags returns the element's tags. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Tags() []string {
	return e.tags
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("canvasray: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(e, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, e) {
		panic("canvasray: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
	e.childrenSorted = false
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(e)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (e *Element) AddChildAt(child *Element, index int) {
	if child == nil {
		panic("canvasray: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(e, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, e) {
		panic("canvasray: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(e.children) {
		panic("canvasray: child index out of range")
	}
	child.Parent = e
	e.children = append(e.children, nil)
	copy(e.children[index+1:], e.children[index:])
	e.children[index] = child
	e.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("canvasray: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
	e.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this element from its parent.
// No-op if it has no parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// RemoveChildren detaches all children. Children are NOT disposed.
func (e *Element) RemoveChildren() {
	for _, child := range e.children {
		child.Parent = nil
		markSubtreeDirty(child)
	}
	clear(e.children)
	e.children = e.children[:0]
	e.childrenSorted = true
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// SetZIndex sets the element's ZIndex and marks the parent's children as unsorted.
func (e *Element) SetZIndex(z int) {
	if e.ZIndex == z {
		return
	}
	e.ZIndex = z
	if e.Parent != nil {
		e.Parent.childrenSorted = false
	}
}

// --- Disposal ---

// Dispose removes this element from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	e.ID = 0
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	e.children = nil
	e.sortedChildren = nil
	e.Parent = nil
	e.HitShape = nil
	e.UserData = nil
	e.tags = nil
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of (or equal to) e.
func isAncestor(candidate, e *Element) bool {
	for p := e; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			e.childrenSorted = false
			return
		}
	}
}

// rebuildSortedChildren rebuilds the ZIndex-sorted traversal order.
// Stable insertion sort: children are few and usually already sorted.
func (e *Element) rebuildSortedChildren() {
	nc := len(e.children)
	if cap(e.sortedChildren) < nc {
		e.sortedChildren = make([]*Element, nc)
	}
	e.sortedChildren = e.sortedChildren[:nc]
	copy(e.sortedChildren, e.children)
	for i := 1; i < nc; i++ {
		key := e.sortedChildren[i]
		j := i - 1
		for j >= 0 && e.sortedChildren[j].ZIndex > key.ZIndex {
			e.sortedChildren[j+1] = e.sortedChildren[j]
			j--
		}
		e.sortedChildren[j+1] = key
	}
	e.childrenSorted = true
}

// paintOrder returns the children in painter order.
func (e *Element) paintOrder() []*Element {
	if !e.childrenSorted {
		e.rebuildSortedChildren()
	}
	if e.sortedChildren != nil && len(e.sortedChildren) == len(e.children) {
		return e.sortedChildren
	}
	return e.children
}
