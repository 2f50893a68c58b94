package polymap

// Session is the polygon currently being drawn. The zero value is an empty,
// inactive session ready for use.
//
// Undo never clears the active flag, so a session can be drawing with zero
// vertices. Only Finalize and ClearAll end it.
type Session struct {
	active   bool
	vertices []Point
}

// Active reports whether a polygon is being drawn.
func (s *Session) Active() bool {
	return s.active
}

// Len returns the number of committed vertices.
func (s *Session) Len() int {
	return len(s.vertices)
}

// Vertices returns a copy of the committed vertices in drawing order.
func (s *Session) Vertices() []Point {
	if len(s.vertices) == 0 {
		return nil
	}
	out := make([]Point, len(s.vertices))
	copy(out, s.vertices)
	return out
}

// Last returns the most recently added vertex.
func (s *Session) Last() (Point, bool) {
	if len(s.vertices) == 0 {
		return Point{}, false
	}
	return s.vertices[len(s.vertices)-1], true
}

// AddVertex appends p and marks the session active.
func (s *Session) AddVertex(p Point) {
	s.vertices = append(s.vertices, p)
	s.active = true
}

// UndoVertex removes the last vertex. It reports false and does nothing when
// there are no vertices.
func (s *Session) UndoVertex() bool {
	n := len(s.vertices)
	if n == 0 {
		return false
	}
	s.vertices = s.vertices[:n-1]
	return true
}

// Finalize returns the committed vertices and resets the session. Polygons
// with fewer than three vertices are returned as-is.
func (s *Session) Finalize() []Point {
	out := s.vertices
	s.reset()
	return out
}

// ClearAll resets the session. Erasing already rendered shapes is the
// caller's job.
func (s *Session) ClearAll() {
	s.reset()
}

// reset drops the backing array so slices handed out by Finalize stay valid.
func (s *Session) reset() {
	s.vertices = nil
	s.active = false
}

// withPreview returns the vertices followed by p, without touching the session.
func (s *Session) withPreview(p Point) []Point {
	out := make([]Point, len(s.vertices)+1)
	copy(out, s.vertices)
	out[len(s.vertices)] = p
	return out
}
