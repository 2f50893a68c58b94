package polymap

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport is the visible window onto the page. It implements Page.
type Viewport struct {
	// ScrollX and ScrollY are how far the page is scrolled.
	ScrollX, ScrollY float64
	// ClientLeft and ClientTop are the root border widths. Screen
	// coordinates include them; page coordinates do not.
	ClientLeft, ClientTop float64
	// Width and Height are the visible size in screen pixels.
	Width, Height float64

	// BoundsEnabled clamps scrolling so the visible area stays within Bounds.
	BoundsEnabled bool
	// Bounds is the page-space rectangle scrolling is clamped to.
	Bounds Rect

	scrollTween *scrollAnim
}

// NewViewport creates an unscrolled viewport of the given size.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{Width: width, Height: height}
}

// ScrollOffset implements Page.
func (v *Viewport) ScrollOffset() Vec2 {
	return Vec2{X: v.ScrollX, Y: v.ScrollY}
}

// ClientOffset implements Page.
func (v *Viewport) ClientOffset() Vec2 {
	return Vec2{X: v.ClientLeft, Y: v.ClientTop}
}

// ScreenToPage converts a screen position to page coordinates.
func (v *Viewport) ScreenToPage(sx, sy float64) (px, py float64) {
	return sx + v.ScrollX - v.ClientLeft, sy + v.ScrollY - v.ClientTop
}

// PageToScreen converts a page position to screen coordinates.
func (v *Viewport) PageToScreen(px, py float64) (sx, sy float64) {
	return px - v.ScrollX + v.ClientLeft, py - v.ScrollY + v.ClientTop
}

// ScrollBy moves the scroll position immediately and cancels any running
// scroll animation.
func (v *Viewport) ScrollBy(dx, dy float64) {
	v.scrollTween = nil
	v.ScrollX += dx
	v.ScrollY += dy
	if v.BoundsEnabled {
		v.clampToBounds()
	}
}

// ScrollTo animates the scroll position to (x, y) over duration seconds.
func (v *Viewport) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	if easeFn == nil {
		easeFn = ease.Linear
	}
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.ScrollX), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.ScrollY), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// SetBounds enables scroll clamping.
func (v *Viewport) SetBounds(bounds Rect) {
	v.BoundsEnabled = true
	v.Bounds = bounds
	v.clampToBounds()
}

// ClearBounds disables scroll clamping.
func (v *Viewport) ClearBounds() {
	v.BoundsEnabled = false
}

// update advances the scroll animation and clamps. Called from Surface.Update.
func (v *Viewport) update(dt float32) {
	if v.scrollTween != nil {
		if !v.scrollTween.doneX {
			val, done := v.scrollTween.tweenX.Update(dt)
			v.ScrollX = float64(val)
			v.scrollTween.doneX = done
		}
		if !v.scrollTween.doneY {
			val, done := v.scrollTween.tweenY.Update(dt)
			v.ScrollY = float64(val)
			v.scrollTween.doneY = done
		}
		if v.scrollTween.doneX && v.scrollTween.doneY {
			v.scrollTween = nil
		}
	}

	if v.BoundsEnabled {
		v.clampToBounds()
	}
}

// clampToBounds restricts the scroll position so the visible area stays
// within Bounds. If Bounds is smaller than the viewport, scrolling pins to
// the bounds origin.
func (v *Viewport) clampToBounds() {
	maxX := v.Bounds.X + v.Bounds.Width - v.Width
	maxY := v.Bounds.Y + v.Bounds.Height - v.Height
	v.ScrollX = math.Max(v.Bounds.X, math.Min(v.ScrollX, maxX))
	v.ScrollY = math.Max(v.Bounds.Y, math.Min(v.ScrollY, maxY))
}
