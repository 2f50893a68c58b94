package polymap

// syntheticPointerEvent represents a single injected pointer sample in
// screen coordinates. It is converted to page coordinates through the
// viewport, identical to real mouse input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
	button           MouseButton
	mods             KeyModifiers
	// hold keeps whatever button state the pointer has when consumed.
	hold bool
}

// InjectPress queues a left-button press at the given screen coordinates
// with mods held. The event is consumed on the next frame's input pass.
func (s *Surface) InjectPress(x, y float64, mods KeyModifiers) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  MouseButtonLeft,
		mods:    mods,
	})
}

// InjectRelease queues a release at the given screen coordinates.
func (s *Surface) InjectRelease(x, y float64, mods KeyModifiers) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: false,
		button:  MouseButtonLeft,
		mods:    mods,
	})
}

// InjectHover queues a pointer move with no button held.
func (s *Surface) InjectHover(x, y float64) {
	s.InjectRelease(x, y, 0)
}

// InjectMove queues a pointer move that keeps the current button state.
func (s *Surface) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		button: MouseButtonLeft,
		hold:   true,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (s *Surface) InjectClick(x, y float64, mods KeyModifiers) {
	s.InjectPress(x, y, mods)
	s.InjectRelease(x, y, mods)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed.
func (s *Surface) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	pressed := evt.pressed
	if evt.hold {
		pressed = s.pointer.down
	}
	s.processPointer(evt.screenX, evt.screenY, pressed, evt.button, evt.mods)
	return true
}
