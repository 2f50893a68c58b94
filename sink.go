package polymap

// ShapeHandle identifies a shape created by a RenderSink.
type ShapeHandle uint32

// Style is passed through to the RenderSink untouched.
type Style struct {
	FillColor   Color
	StrokeColor Color
	StrokeWidth float64
}

// RenderSink materializes vertex lists on screen. It owns no drawing state
// the controller depends on.
type RenderSink interface {
	// CreateShape adds an empty shape and returns its handle.
	CreateShape(style Style) ShapeHandle
	// UpdateShape replaces the shape's point list wholesale.
	UpdateShape(h ShapeHandle, points []Point)
	// ClearAllShapes removes every shape from the drawing surface.
	ClearAllShapes()
}
