package polymap

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// pointerState tracks the mouse between frames.
type pointerState struct {
	down  bool
	seen  bool
	lastX float64
	lastY float64
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

// processInput is called from Surface.Update. Injected events take the
// place of real mouse input for the frame they are consumed in.
func (s *Surface) processInput() {
	if s.processInjectedInput() {
		return
	}
	mods := readModifiers()
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(float64(mx), float64(my), pressed, MouseButtonLeft, mods)
}

// processPointer runs the pointer state machine for one screen-space sample.
// A press edge dispatches a pointer-down; any change of position dispatches
// a pointer-move. Both are delivered in that order within the frame.
func (s *Surface) processPointer(sx, sy float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &s.pointer
	px, py := s.viewport.ScreenToPage(sx, sy)
	ev := PointerEvent{PageX: px, PageY: py, Button: button, Modifiers: mods}

	if pressed && !ps.down {
		ps.down = true
		s.dispatchPointerDown(ev)
	} else if !pressed && ps.down {
		ps.down = false
	}

	if ps.seen && (sx != ps.lastX || sy != ps.lastY) {
		s.dispatchPointerMove(ev)
	}
	ps.seen = true
	ps.lastX = sx
	ps.lastY = sy
}

// dispatchPointerDown delivers a press to every widget whose container
// contains the point. Each widget owns its own session, so overlapping
// containers each receive the event.
func (s *Surface) dispatchPointerDown(ev PointerEvent) {
	for _, w := range s.widgets {
		if w.captures(s.root, ev.PageX, ev.PageY) {
			w.ctrl.PointerDown(ev)
		}
	}
}

func (s *Surface) dispatchPointerMove(ev PointerEvent) {
	for _, w := range s.widgets {
		if w.captures(s.root, ev.PageX, ev.PageY) {
			w.ctrl.PointerMove(ev)
		}
	}
}
