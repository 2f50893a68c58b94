package polymap

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Element is a rectangular box on the page, optionally showing an image.
// Elements form a tree rooted at Surface.Root; an element's position is
// relative to its parent.
type Element struct {
	Name string

	// Position relative to the parent, in page pixels.
	X, Y float64
	// Size of the box. NewImageElement takes it from the image.
	Width, Height float64

	// Image is drawn at the element's position when non-nil.
	Image *ebiten.Image

	Visible bool

	Parent   *Element
	children []*Element

	// viewport is set on the root element only.
	viewport *Viewport
}

// NewContainer creates an element with no visual output.
func NewContainer(name string) *Element {
	return &Element{Name: name, Visible: true}
}

// NewImageElement creates an element sized to img. A nil image gives an
// element that cannot be measured until Width and Height are set.
func NewImageElement(name string, img *ebiten.Image) *Element {
	e := &Element{Name: name, Image: img, Visible: true}
	if img != nil {
		b := img.Bounds()
		e.Width = float64(b.Dx())
		e.Height = float64(b.Dy())
	}
	return e
}

// String returns the element's name.
func (e *Element) String() string {
	return e.Name
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("polymap: cannot add nil child")
	}
	if isAncestor(child, e) {
		panic("polymap: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("polymap: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// Wrap inserts a new container between e and its parent. The container
// takes e's position and size, and e moves to (0, 0) inside it, so e stays
// where it was on the page. Wrapping a root hands its viewport to the
// wrapper.
func (e *Element) Wrap(name string) *Element {
	w := NewContainer(name)
	w.X, w.Y = e.X, e.Y
	w.Width, w.Height = e.Width, e.Height

	if p := e.Parent; p != nil {
		for i, c := range p.children {
			if c == e {
				p.children[i] = w
				break
			}
		}
		w.Parent = p
		e.Parent = nil
	}
	w.viewport, e.viewport = e.viewport, nil
	e.X, e.Y = 0, 0
	w.AddChild(e)
	return w
}

// --- Geometry ---

// PagePosition returns the element's top-left corner in page coordinates.
func (e *Element) PagePosition() Vec2 {
	var pos Vec2
	for n := e; n != nil; n = n.Parent {
		pos.X += n.X
		pos.Y += n.Y
	}
	return pos
}

// PageRect returns the element's box in page coordinates.
func (e *Element) PageRect() Rect {
	p := e.PagePosition()
	return Rect{X: p.X, Y: p.Y, Width: e.Width, Height: e.Height}
}

// BoundingRect returns the element's box relative to the viewport. Elements
// outside a surface tree are measured as if the page were not scrolled.
func (e *Element) BoundingRect() Rect {
	r := e.PageRect()
	if vp := e.Viewport(); vp != nil {
		r.X, r.Y = vp.PageToScreen(r.X, r.Y)
	}
	return r
}

// Contains reports whether the page point (px, py) lies inside the element.
func (e *Element) Contains(px, py float64) bool {
	return e.PageRect().Contains(px, py)
}

// Viewport returns the viewport of the surface this element belongs to, or
// nil when the element is not attached.
func (e *Element) Viewport() *Viewport {
	n := e
	for n.Parent != nil {
		n = n.Parent
	}
	return n.viewport
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of el.
func isAncestor(candidate, el *Element) bool {
	for p := el; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}
