package polymap

import (
	"fmt"
	"strings"
)

// Default modifier bindings.
const (
	DefaultUndoModifier     = ModMeta
	DefaultFinalizeModifier = ModShift
	DefaultClearAllModifier = ModAlt
)

// DefaultStyle is used when Options.Style is left zero.
var DefaultStyle = Style{
	FillColor:   Color{R: 1, G: 0.2, B: 0.2, A: 0.3},
	StrokeColor: Color{R: 1, G: 0.2, B: 0.2, A: 1},
	StrokeWidth: 2,
}

// Options configures one attached target. It is resolved once when the
// target is attached and never changes afterwards.
type Options struct {
	// WrapTarget inserts a positioning container around the target before
	// the overlay is attached. Input is captured at that container.
	WrapTarget bool

	// Modifiers gating each action. A zero value selects the default.
	UndoModifier     KeyModifiers
	FinalizeModifier KeyModifiers
	ClearAllModifier KeyModifiers

	// Style is handed to the RenderSink for every shape. A zero value
	// selects DefaultStyle.
	Style Style
}

// DefaultOptions returns options with the default bindings: meta undoes,
// shift finalizes, alt clears everything.
func DefaultOptions() Options {
	return Options{
		UndoModifier:     DefaultUndoModifier,
		FinalizeModifier: DefaultFinalizeModifier,
		ClearAllModifier: DefaultClearAllModifier,
		Style:            DefaultStyle,
	}
}

// withDefaults fills zero fields.
func (o Options) withDefaults() Options {
	if o.UndoModifier == 0 {
		o.UndoModifier = DefaultUndoModifier
	}
	if o.FinalizeModifier == 0 {
		o.FinalizeModifier = DefaultFinalizeModifier
	}
	if o.ClearAllModifier == 0 {
		o.ClearAllModifier = DefaultClearAllModifier
	}
	if o.Style == (Style{}) {
		o.Style = DefaultStyle
	}
	if o.Style.StrokeWidth <= 0 {
		o.Style.StrokeWidth = DefaultStyle.StrokeWidth
	}
	return o
}

// ParseModifier maps a key name to its modifier bit. Names are
// case-insensitive; several platform spellings are accepted.
func ParseModifier(name string) (KeyModifiers, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "meta", "cmd", "command", "super", "win":
		return ModMeta, nil
	case "shift":
		return ModShift, nil
	case "alt", "option", "opt":
		return ModAlt, nil
	case "ctrl", "control":
		return ModCtrl, nil
	default:
		return 0, fmt.Errorf("polymap: unknown modifier key %q", name)
	}
}

// ParseModifiers parses a list of key names and ORs them together.
func ParseModifiers(names []string) (KeyModifiers, error) {
	var mods KeyModifiers
	for _, name := range names {
		m, err := ParseModifier(name)
		if err != nil {
			return 0, err
		}
		mods |= m
	}
	return mods, nil
}
