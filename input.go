package canvasray

import "github.com/hajimehoshi/ebiten/v2"

type touchID = ebiten.TouchID

// pollMouse samples the ebiten cursor and buttons into pointer 0.
func (es *EventSystem) pollMouse() {
	mx, my := ebiten.CursorPosition()

	// Keep the button captured at press time until release.
	var pressed bool
	button := es.pointers[0].button
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if !es.pointers[0].down {
			switch {
			case left:
				button = MouseButtonLeft
			case right:
				button = MouseButtonRight
			default:
				button = MouseButtonMiddle
			}
		}
	}

	es.setPointer(0, float64(mx), float64(my), pressed, button)
}

// pollTouches samples active touches into pointers 1-9 and releases the
// slots of touches that ended.
func (es *EventSystem) pollTouches() {
	ids := ebiten.AppendTouchIDs(es.prevTouchIDs[:0])
	es.prevTouchIDs = ids

	var activeSlots [maxPointers]bool
	for _, tid := range ids {
		slot := es.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		es.setPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft)
	}

	for i := 1; i < maxPointers; i++ {
		if es.touchUsed[i] && !activeSlots[i] {
			es.releasePointer(i)
			es.touchUsed[i] = false
			es.touchMap[i] = 0
		}
	}
}

// touchSlot maps a touch id to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (es *EventSystem) touchSlot(tid touchID) int {
	for i := 1; i < maxPointers; i++ {
		if es.touchUsed[i] && es.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !es.touchUsed[i] {
			es.touchUsed[i] = true
			es.touchMap[i] = tid
			return i
		}
	}
	return -1
}
