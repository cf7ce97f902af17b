package canvasray

// Vec2 is a 2D vector used for pointer positions and offsets throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Hit is one element under the pointer, as reported by a Raycaster.
// Element is nil for hits that do not come from a Canvas.
type Hit struct {
	ElementID uint32
	Name      string
	Layer     Layer
	Tags      []string

	// Depth is the element's painter-order index within its canvas.
	// Higher values are drawn later (closer to the viewer).
	Depth int
	// Index is the hit's position in the result list, 0 = frontmost.
	Index int

	ScreenPosition Vec2
	LocalPosition  Vec2

	Element *Element
}

// HasTag reports whether the hit element carries tag.
func (h Hit) HasTag(tag string) bool {
	for _, t := range h.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Raycaster finds the UI elements under a pointer. Implementations append
// hits to dst front-to-back and return the extended slice.
type Raycaster interface {
	Raycast(ev *PointerEvent, dst []Hit) []Hit
}

// RenderMode selects how screen coordinates map onto a Canvas.
type RenderMode uint8

const (
	ScreenSpaceOverlay RenderMode = iota // screen coordinates are canvas coordinates
	ScreenSpaceCamera                    // screen coordinates pass through Canvas.Camera
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)
