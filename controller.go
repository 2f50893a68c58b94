package polymap

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTarget is returned when a controller is built without a target,
	// page or render sink.
	ErrNoTarget = errors.New("no target")
	// ErrUnmeasurable is returned when the target has no area.
	ErrUnmeasurable = errors.New("target cannot be measured")
)

// State is the controller's drawing state.
type State uint8

const (
	StateIdle    State = iota // no polygon in progress
	StateDrawing              // a session is active
)

func (s State) String() string {
	if s == StateDrawing {
		return "drawing"
	}
	return "idle"
}

// Controller turns pointer events for one target into polygon edits and
// sink updates. It is not safe for concurrent use; drive it from the game
// loop.
type Controller struct {
	name   string
	target Target
	page   Page
	sink   RenderSink
	opts   Options
	store  EventStore

	session  Session
	shape    ShapeHandle
	hasShape bool
}

// NewController binds a controller to target. Zero option fields take their
// defaults. The target must have a non-empty bounding box.
func NewController(target Target, page Page, sink RenderSink, opts Options) (*Controller, error) {
	if target == nil || page == nil || sink == nil {
		return nil, fmt.Errorf("polymap: new controller: %w", ErrNoTarget)
	}
	name := targetName(target)
	if target.BoundingRect().Empty() {
		return nil, fmt.Errorf("polymap: new controller %q: %w", name, ErrUnmeasurable)
	}
	return &Controller{
		name:   name,
		target: target,
		page:   page,
		sink:   sink,
		opts:   opts.withDefaults(),
	}, nil
}

func targetName(t Target) string {
	if s, ok := t.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", t)
}

// Name returns the target's name.
func (c *Controller) Name() string { return c.name }

// Options returns the resolved options.
func (c *Controller) Options() Options { return c.opts }

// State reports whether a polygon is in progress.
func (c *Controller) State() State {
	if c.session.Active() {
		return StateDrawing
	}
	return StateIdle
}

// Vertices returns a copy of the in-progress polygon.
func (c *Controller) Vertices() []Point { return c.session.Vertices() }

// SetEventStore sets the optional event receiver. Pass nil to disable.
func (c *Controller) SetEventStore(store EventStore) {
	c.store = store
}

// Resolve decides what a pointer-down with ev would do, without doing it.
func (c *Controller) Resolve(ev PointerEvent) Action {
	kind := c.opts.resolveKind(ev.Modifiers)
	if kind != ActionAddVertex {
		return Action{Kind: kind}
	}
	return Action{Kind: kind, Point: MapPointer(ev, c.target, c.page)}
}

// PointerDown handles a press inside the target's container and returns the
// action that was taken.
func (c *Controller) PointerDown(ev PointerEvent) Action {
	c.ensureShape()
	act := c.Resolve(ev)
	c.apply(act)
	return act
}

// PointerMove redraws the in-progress shape with a trailing preview point
// at the pointer. It reports false and does nothing unless a polygon with
// at least one vertex is being drawn.
func (c *Controller) PointerMove(ev PointerEvent) bool {
	if !c.session.Active() || c.session.Len() == 0 || !c.hasShape {
		return false
	}
	p := MapPointer(ev, c.target, c.page)
	c.sink.UpdateShape(c.shape, c.session.withPreview(p))
	return true
}

// ensureShape creates the in-progress shape on the first press after a
// finalize or clear.
func (c *Controller) ensureShape() {
	if c.hasShape {
		return
	}
	c.shape = c.sink.CreateShape(c.opts.Style)
	c.hasShape = true
}

func (c *Controller) apply(act Action) {
	log := Logger()
	switch act.Kind {
	case ActionUndo:
		removed := c.session.UndoVertex()
		c.sink.UpdateShape(c.shape, c.session.Vertices())
		log.Debug("polymap: undo", "target", c.name, "removed", removed, "vertices", c.session.Len())
		c.emit(EventVertexUndone, c.session.Vertices())

	case ActionFinalize:
		c.sink.UpdateShape(c.shape, c.session.Vertices())
		committed := c.session.Finalize()
		// An empty shape stays attached for the next polygon.
		c.hasShape = len(committed) == 0
		log.Debug("polymap: finalize", "target", c.name, "vertices", len(committed))
		c.emit(EventRegionFinalized, committed)

	case ActionClearAll:
		c.session.ClearAll()
		c.sink.ClearAllShapes()
		c.hasShape = false
		log.Debug("polymap: clear all", "target", c.name)
		c.emit(EventRegionsCleared, nil)

	default:
		c.session.AddVertex(act.Point)
		c.sink.UpdateShape(c.shape, c.session.Vertices())
		log.Debug("polymap: add vertex", "target", c.name, "x", act.Point.X, "y", act.Point.Y)
		c.emit(EventVertexAdded, c.session.Vertices())
	}
}

func (c *Controller) emit(t EventType, vertices []Point) {
	if c.store == nil {
		return
	}
	c.store.EmitEvent(RegionEvent{
		Type:     t,
		Target:   c.name,
		Vertices: vertices,
		Active:   c.session.Active(),
	})
}
