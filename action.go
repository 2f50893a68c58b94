package polymap

// ActionKind selects what a pointer-down does.
type ActionKind uint8

const (
	ActionAddVertex ActionKind = iota // append the mapped pointer position
	ActionUndo                        // drop the most recent vertex
	ActionFinalize                    // commit the polygon and start over
	ActionClearAll                    // reset and erase every shape
)

func (k ActionKind) String() string {
	switch k {
	case ActionAddVertex:
		return "add"
	case ActionUndo:
		return "undo"
	case ActionFinalize:
		return "finalize"
	case ActionClearAll:
		return "clear-all"
	default:
		return "unknown"
	}
}

// Action is the single decision taken for one pointer-down event.
// Point is only meaningful for ActionAddVertex.
type Action struct {
	Kind  ActionKind
	Point Point
}

// resolveKind picks exactly one action for the held modifiers. Priority is
// undo, then finalize, then clear-all, then a plain add.
func (o *Options) resolveKind(mods KeyModifiers) ActionKind {
	switch {
	case mods.Has(o.UndoModifier):
		return ActionUndo
	case mods.Has(o.FinalizeModifier):
		return ActionFinalize
	case mods.Has(o.ClearAllModifier):
		return ActionClearAll
	default:
		return ActionAddVertex
	}
}
