package polymap

// EventType identifies a kind of region event.
type EventType uint8

const (
	EventVertexAdded     EventType = iota // a vertex was appended to the session
	EventVertexUndone                     // an undo click removed a vertex (or found none)
	EventRegionFinalized                  // the session was committed and reset
	EventRegionsCleared                   // the session was reset and every shape erased
)

func (t EventType) String() string {
	switch t {
	case EventVertexAdded:
		return "vertex-added"
	case EventVertexUndone:
		return "vertex-undone"
	case EventRegionFinalized:
		return "region-finalized"
	case EventRegionsCleared:
		return "regions-cleared"
	default:
		return "unknown"
	}
}

// RegionEvent describes one state change of a controller's session.
type RegionEvent struct {
	Type EventType
	// Target is the name of the element the controller is attached to.
	Target string
	// Vertices is a snapshot owned by the receiver. For
	// EventRegionFinalized it holds the committed polygon; otherwise the
	// session's vertices after the change.
	Vertices []Point
	// Active is the session's drawing flag after the change.
	Active bool
}

// EventStore is the interface for optional host integration. When set on a
// Surface, every controller forwards its region events to it.
type EventStore interface {
	EmitEvent(event RegionEvent)
}
