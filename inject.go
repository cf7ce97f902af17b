package canvasray

// syntheticPointerEvent is one injected mouse sample in screen coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

// InjectMove queues a mouse move to (x, y) with no button held.
// Each queued event is consumed by one Update call.
func (es *EventSystem) InjectMove(x, y float64) {
	es.injectQueue = append(es.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectPress queues a left-button press at (x, y).
func (es *EventSystem) InjectPress(x, y float64) {
	es.injectQueue = append(es.injectQueue, syntheticPointerEvent{
		x: x, y: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectRelease queues a left-button release at (x, y).
func (es *EventSystem) InjectRelease(x, y float64) {
	es.injectQueue = append(es.injectQueue, syntheticPointerEvent{
		x: x, y: y, button: MouseButtonLeft,
	})
}

// InjectClick queues a press followed by a release at (x, y).
// Consumes two Update calls.
func (es *EventSystem) InjectClick(x, y float64) {
	es.InjectPress(x, y)
	es.InjectRelease(x, y)
}

// PendingInjections returns the number of queued synthetic events.
func (es *EventSystem) PendingInjections() int {
	return len(es.injectQueue)
}

// processInjectedInput pops one queued event into pointer 0.
// Returns true if an event was consumed (real mouse input should be skipped).
func (es *EventSystem) processInjectedInput() bool {
	if len(es.injectQueue) == 0 {
		return false
	}
	evt := es.injectQueue[0]
	copy(es.injectQueue, es.injectQueue[1:])
	es.injectQueue = es.injectQueue[:len(es.injectQueue)-1]

	es.setPointer(0, evt.x, evt.y, evt.pressed, evt.button)
	return true
}
