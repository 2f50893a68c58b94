package polymap

// Target is anything with a measurable box on the page. BoundingRect
// returns the box relative to the visible viewport, so it shifts when the
// page scrolls.
type Target interface {
	BoundingRect() Rect
}

// Page reports the document-level geometry needed to turn a viewport
// position into a page position.
type Page interface {
	// ScrollOffset is how far the page is scrolled.
	ScrollOffset() Vec2
	// ClientOffset is the width of the root element's left and top borders.
	ClientOffset() Vec2
}

// ElementOffset returns the document-relative position of t's top-left
// corner: its viewport box plus the page scroll, minus the root border.
func ElementOffset(t Target, p Page) Vec2 {
	r := t.BoundingRect()
	scroll := p.ScrollOffset()
	client := p.ClientOffset()
	return Vec2{
		X: r.X + scroll.X - client.X,
		Y: r.Y + scroll.Y - client.Y,
	}
}

// MapPointer converts a pointer event into a point relative to t.
// The result is not clamped to the element's size.
func MapPointer(ev PointerEvent, t Target, p Page) Point {
	off := ElementOffset(t, p)
	return Point{
		X: roundHalfUp(ev.PageX - off.X),
		Y: roundHalfUp(ev.PageY - off.Y),
	}
}
