package polymap

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// vertexDotRadius is the radius of the marker drawn at each vertex.
const vertexDotRadius = 3

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// ensureWhiteImage lazily creates the solid source image used for filled
// triangles. Sampling the centre pixel avoids edge bleeding.
func ensureWhiteImage() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(ColorWhite.toRGBA())
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Shape is a snapshot of one shape held by a Canvas.
type Shape struct {
	Handle ShapeHandle
	Style  Style
	Points []Point
}

// Canvas is the overlay drawing surface placed over a target. It implements
// RenderSink and draws its shapes with ebiten's vector package.
type Canvas struct {
	shapes []Shape
	nextID ShapeHandle

	// reused buffers for path tessellation
	vs   []ebiten.Vertex
	is   []uint16
	path vector.Path
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// CreateShape implements RenderSink.
func (c *Canvas) CreateShape(style Style) ShapeHandle {
	c.nextID++
	c.shapes = append(c.shapes, Shape{Handle: c.nextID, Style: style})
	return c.nextID
}

// UpdateShape implements RenderSink. Unknown handles are ignored, which
// covers updates to shapes erased by ClearAllShapes.
func (c *Canvas) UpdateShape(h ShapeHandle, points []Point) {
	for i := range c.shapes {
		if c.shapes[i].Handle == h {
			c.shapes[i].Points = append(c.shapes[i].Points[:0], points...)
			return
		}
	}
}

// ClearAllShapes implements RenderSink.
func (c *Canvas) ClearAllShapes() {
	clear(c.shapes)
	c.shapes = c.shapes[:0]
}

// Len returns the number of shapes on the canvas.
func (c *Canvas) Len() int {
	return len(c.shapes)
}

// Shapes returns a copy of every shape in creation order.
func (c *Canvas) Shapes() []Shape {
	out := make([]Shape, len(c.shapes))
	for i, s := range c.shapes {
		out[i] = Shape{Handle: s.Handle, Style: s.Style, Points: append([]Point(nil), s.Points...)}
	}
	return out
}

// Draw renders every shape onto dst with the canvas origin at (ox, oy).
func (c *Canvas) Draw(dst *ebiten.Image, ox, oy float32) {
	for i := range c.shapes {
		c.drawShape(dst, &c.shapes[i], ox, oy)
	}
}

func (c *Canvas) drawShape(dst *ebiten.Image, s *Shape, ox, oy float32) {
	switch len(s.Points) {
	case 0:
		return
	case 1:
		p := s.Points[0]
		vector.DrawFilledCircle(dst, ox+float32(p.X), oy+float32(p.Y), vertexDotRadius,
			s.Style.StrokeColor.toRGBA(), true)
		return
	}

	c.path = vector.Path{}
	for i, p := range s.Points {
		x, y := ox+float32(p.X), oy+float32(p.Y)
		if i == 0 {
			c.path.MoveTo(x, y)
		} else {
			c.path.LineTo(x, y)
		}
	}
	c.path.Close()

	if len(s.Points) >= 3 && s.Style.FillColor.A > 0 {
		c.vs, c.is = c.path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
		c.tint(s.Style.FillColor)
		dst.DrawTriangles(c.vs, c.is, ensureWhiteImage(), &ebiten.DrawTrianglesOptions{
			FillRule:  ebiten.FillRuleNonZero,
			AntiAlias: true,
		})
	}

	if s.Style.StrokeWidth > 0 && s.Style.StrokeColor.A > 0 {
		c.vs, c.is = c.path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
			Width:    float32(s.Style.StrokeWidth),
			LineJoin: vector.LineJoinRound,
			LineCap:  vector.LineCapRound,
		})
		c.tint(s.Style.StrokeColor)
		dst.DrawTriangles(c.vs, c.is, ensureWhiteImage(), &ebiten.DrawTrianglesOptions{
			AntiAlias: true,
		})
	}

	for _, p := range s.Points {
		vector.DrawFilledCircle(dst, ox+float32(p.X), oy+float32(p.Y), vertexDotRadius,
			s.Style.StrokeColor.toRGBA(), true)
	}
}

// tint sets every tessellated vertex to sample the white pixel with col.
// Vertex colors are straight alpha, the default DrawTriangles mode.
func (c *Canvas) tint(col Color) {
	for i := range c.vs {
		v := &c.vs[i]
		v.SrcX = 1
		v.SrcY = 1
		v.ColorR = float32(col.R)
		v.ColorG = float32(col.G)
		v.ColorB = float32(col.B)
		v.ColorA = float32(col.A)
	}
}
