package polymap

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// widget is one attached target: its controller, the overlay canvas drawn
// above it, and the container where its input is captured.
type widget struct {
	target    *Element
	container *Element
	canvas    *Canvas
	ctrl      *Controller
}

// captures reports whether a press or move at the page point belongs to
// this widget. A container without a size captures over the target's box.
func (w *widget) captures(root *Element, px, py float64) bool {
	if w.container == root {
		return true
	}
	r := w.container.PageRect()
	if r.Empty() {
		r = w.target.PageRect()
	}
	return r.Contains(px, py)
}

// Surface is the top-level object that owns the element tree, the viewport,
// input state and every attached controller.
type Surface struct {
	root     *Element
	viewport *Viewport
	widgets  []*widget
	store    EventStore

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	updateFunc func() error

	// Input state
	pointer     pointerState
	injectQueue []syntheticPointerEvent

	runner          *ScriptRunner
	screenshotQueue []string
}

// NewSurface creates a surface with an empty root container and a viewport
// of the given screen size.
func NewSurface(width, height float64) *Surface {
	vp := NewViewport(width, height)
	root := NewContainer("root")
	root.Width, root.Height = width, height
	root.viewport = vp
	return &Surface{
		root:          root,
		viewport:      vp,
		ScreenshotDir: "screenshots",
	}
}

// Root returns the surface's root container.
func (s *Surface) Root() *Element {
	return s.root
}

// Viewport returns the surface's viewport.
func (s *Surface) Viewport() *Viewport {
	return s.viewport
}

// SetUpdateFunc registers a callback run at the end of every Update.
func (s *Surface) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetEventStore sets the optional event receiver for every current and
// future controller.
func (s *Surface) SetEventStore(store EventStore) {
	s.store = store
	for _, w := range s.widgets {
		w.ctrl.SetEventStore(store)
	}
}

// Create attaches an independent controller and overlay to each target.
// Targets that are nil, not part of this surface, or have no size are
// skipped; the returned error joins their failures while the remaining
// targets are attached normally.
func (s *Surface) Create(targets []*Element, opts Options) error {
	var errs []error
	for i, t := range targets {
		if err := s.attach(t, opts); err != nil {
			Logger().Warn("polymap: target skipped", "index", i, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Surface) attach(t *Element, opts Options) error {
	if t == nil {
		return fmt.Errorf("polymap: create: %w", ErrNoTarget)
	}
	if t.Viewport() != s.viewport {
		return fmt.Errorf("polymap: create %q: not attached to surface: %w", t.Name, ErrNoTarget)
	}
	if t == s.root && opts.WrapTarget {
		return fmt.Errorf("polymap: create %q: cannot wrap the surface root: %w", t.Name, ErrNoTarget)
	}

	canvas := NewCanvas()
	ctrl, err := NewController(t, s.viewport, canvas, opts)
	if err != nil {
		return err
	}
	ctrl.SetEventStore(s.store)

	container := t.Parent
	if ctrl.opts.WrapTarget {
		container = t.Wrap(t.Name + "-wrap")
	}
	if container == nil {
		container = t
	}

	s.widgets = append(s.widgets, &widget{
		target:    t,
		container: container,
		canvas:    canvas,
		ctrl:      ctrl,
	})
	Logger().Info("polymap: attached", "target", t.Name, "container", container.Name,
		"width", t.Width, "height", t.Height)
	return nil
}

// Controllers returns the attached controllers in attach order.
func (s *Surface) Controllers() []*Controller {
	out := make([]*Controller, len(s.widgets))
	for i, w := range s.widgets {
		out[i] = w.ctrl
	}
	return out
}

// Canvas returns the overlay canvas attached to target, or nil.
func (s *Surface) Canvas(target *Element) *Canvas {
	for _, w := range s.widgets {
		if w.target == target {
			return w.canvas
		}
	}
	return nil
}

// Update advances scroll animation, the script runner and input.
func (s *Surface) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	s.viewport.update(dt)
	if s.runner != nil {
		s.runner.step(s)
	}
	s.processInput()
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Draw paints the element tree, then every overlay above its target.
func (s *Surface) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.drawElement(screen, s.root)
	for _, w := range s.widgets {
		r := w.target.BoundingRect()
		w.canvas.Draw(screen, float32(r.X), float32(r.Y))
	}
	s.flushScreenshots(screen)
}

func (s *Surface) drawElement(screen *ebiten.Image, e *Element) {
	if !e.Visible {
		return
	}
	if e.Image != nil {
		r := e.BoundingRect()
		b := e.Image.Bounds()
		op := &ebiten.DrawImageOptions{}
		if e.Width > 0 && e.Height > 0 && b.Dx() > 0 && b.Dy() > 0 {
			op.GeoM.Scale(e.Width/float64(b.Dx()), e.Height/float64(b.Dy()))
		}
		op.GeoM.Translate(r.X, r.Y)
		screen.DrawImage(e.Image, op)
	}
	for _, c := range e.children {
		s.drawElement(screen, c)
	}
}
