package polymap

import (
	"image/color"
	"math"
	"strings"
)

// Point is a vertex in integer pixels relative to the top-left edge of the
// target element. Values outside the element are allowed.
type Point struct {
	X, Y int
}

// Vec2 is a 2D vector used for page positions, offsets and sizes.
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

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA for ebiten drawing calls.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: unit8(c.R * c.A),
		G: unit8(c.G * c.A),
		B: unit8(c.B * c.A),
		A: unit8(c.A),
	}
}

func unit8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Has reports whether every key in want is held. An empty want is never held.
func (m KeyModifiers) Has(want KeyModifiers) bool {
	return want != 0 && m&want == want
}

// String returns the modifier names joined with "+", e.g. "shift+alt".
func (m KeyModifiers) String() string {
	if m == 0 {
		return "none"
	}
	var parts []string
	if m&ModMeta != 0 {
		parts = append(parts, "meta")
	}
	if m&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}

// PointerEvent is a pointer sample in page coordinates (screen position plus
// page scroll, minus the root client border) with the modifiers held at the
// time of the event.
type PointerEvent struct {
	PageX, PageY float64
	Button       MouseButton
	Modifiers    KeyModifiers
}

// roundHalfUp rounds to the nearest integer, with halves rounding toward
// positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
