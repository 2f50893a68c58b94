package polymap

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSurface builds a 400x300 surface with one 300x200 target at
// (10, 10), attached with opts.
func newTestSurface(t *testing.T, opts Options) (*Surface, *Element) {
	t.Helper()
	s := NewSurface(400, 300)
	target := NewContainer("map")
	target.X, target.Y = 10, 10
	target.Width, target.Height = 300, 200
	s.Root().AddChild(target)
	require.NoError(t, s.Create([]*Element{target}, opts))
	return s, target
}

func TestNewSurfaceDefaults(t *testing.T) {
	s := NewSurface(640, 480)
	assert.Equal(t, "root", s.Root().Name)
	assert.Same(t, s.Viewport(), s.Root().Viewport())
	assert.Equal(t, 640.0, s.Viewport().Width)
	assert.Equal(t, "screenshots", s.ScreenshotDir)
	assert.Empty(t, s.Controllers())
}

func TestSurfaceCreate(t *testing.T) {
	s, target := newTestSurface(t, DefaultOptions())

	ctrls := s.Controllers()
	require.Len(t, ctrls, 1)
	assert.Equal(t, "map", ctrls[0].Name())
	assert.NotNil(t, s.Canvas(target))
	assert.Nil(t, s.Canvas(NewContainer("other")))
	assert.Same(t, s.Root(), target.Parent, "no wrapper unless asked")
}

func TestSurfaceCreateWrapTarget(t *testing.T) {
	s, target := newTestSurface(t, Options{WrapTarget: true})

	w := target.Parent
	require.NotNil(t, w)
	assert.Equal(t, "map-wrap", w.Name)
	assert.Same(t, s.Root(), w.Parent)
	assert.Equal(t, Rect{X: 10, Y: 10, Width: 300, Height: 200}, target.PageRect())
	assert.True(t, s.Controllers()[0].Options().WrapTarget)
}

func TestSurfaceCreatePartialFailure(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })

	s := NewSurface(400, 300)
	good := NewContainer("good")
	good.Width, good.Height = 50, 50
	flat := NewContainer("flat")
	flat.Width = 50
	detached := NewContainer("detached")
	detached.Width, detached.Height = 50, 50
	s.Root().AddChild(good)
	s.Root().AddChild(flat)

	err := s.Create([]*Element{nil, good, flat, detached}, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoTarget))
	assert.True(t, errors.Is(err, ErrUnmeasurable))
	assert.Contains(t, err.Error(), `"flat"`)
	assert.Contains(t, err.Error(), `"detached"`)

	require.Len(t, s.Controllers(), 1, "the good target is still attached")
	assert.Equal(t, "good", s.Controllers()[0].Name())

	out := buf.String()
	assert.Contains(t, out, "polymap: attached")
	assert.Contains(t, out, "polymap: target skipped")
}

func TestSurfaceCreateNoTargets(t *testing.T) {
	s := NewSurface(400, 300)
	assert.NoError(t, s.Create(nil, DefaultOptions()))
	assert.Empty(t, s.Controllers())
}

func TestSurfaceIndependentControllers(t *testing.T) {
	s := NewSurface(800, 300)
	left := NewContainer("left")
	left.Width, left.Height = 300, 200
	right := NewContainer("right")
	right.X = 400
	right.Width, right.Height = 300, 200
	s.Root().AddChild(left)
	s.Root().AddChild(right)
	require.NoError(t, s.Create([]*Element{left, right}, Options{WrapTarget: true}))

	s.processPointer(50, 50, true, MouseButtonLeft, 0)
	s.processPointer(50, 50, false, MouseButtonLeft, 0)
	s.processPointer(450, 60, true, MouseButtonLeft, 0)
	s.processPointer(450, 60, false, MouseButtonLeft, 0)
	s.processPointer(460, 70, true, MouseButtonLeft, ModAlt)

	ctrls := s.Controllers()
	assert.Equal(t, []Point{{50, 50}}, ctrls[0].Vertices())
	assert.Equal(t, StateIdle, ctrls[1].State())
	assert.Equal(t, 1, s.Canvas(left).Len(), "clear-all on one overlay leaves the other alone")
	assert.Equal(t, 0, s.Canvas(right).Len())
}

func TestSurfaceSetEventStorePropagates(t *testing.T) {
	s, _ := newTestSurface(t, DefaultOptions())
	store := &recordingStore{}
	s.SetEventStore(store)

	s.processPointer(110, 60, true, MouseButtonLeft, 0)
	require.Len(t, store.events, 1)
	assert.Equal(t, EventVertexAdded, store.events[0].Type)

	// Controllers created later pick up the store too.
	other := NewContainer("other")
	other.Y = 250
	other.Width, other.Height = 10, 10
	s.Root().AddChild(other)
	require.NoError(t, s.Create([]*Element{other}, DefaultOptions()))
	s.Controllers()[1].PointerDown(PointerEvent{PageX: 1, PageY: 251})
	require.Len(t, store.events, 2)
	assert.Equal(t, "other", store.events[1].Target)
}

func TestSurfaceUpdateFunc(t *testing.T) {
	s := NewSurface(100, 100)
	called := 0
	s.SetUpdateFunc(func() error { called++; return nil })
	s.InjectHover(1, 1)
	require.NoError(t, s.Update())
	assert.Equal(t, 1, called)

	boom := errors.New("boom")
	s.SetUpdateFunc(func() error { return boom })
	s.InjectHover(2, 2)
	assert.ErrorIs(t, s.Update(), boom)
}

func TestSurfaceCreateRejectsWrappingRoot(t *testing.T) {
	s := NewSurface(400, 300)
	child := NewContainer("child")
	child.X, child.Y = 10, 10
	child.Width, child.Height = 100, 100
	s.Root().AddChild(child)

	err := s.Create([]*Element{s.Root()}, Options{WrapTarget: true})
	require.ErrorIs(t, err, ErrNoTarget)
	assert.Contains(t, err.Error(), "cannot wrap the surface root")
	assert.Empty(t, s.Controllers())
	assert.Nil(t, s.Root().Parent)
	assert.Same(t, s.Viewport(), child.Viewport())

	// The tree is intact: later targets still attach and map through the scroll.
	require.NoError(t, s.Create([]*Element{child}, DefaultOptions()))
	s.Viewport().ScrollBy(0, 100)
	assert.Equal(t, Point{50, 150}, MapPointer(PointerEvent{PageX: 60, PageY: 160}, child, s.Viewport()))
}

func TestSurfaceCreateRootWithoutWrap(t *testing.T) {
	s := NewSurface(400, 300)
	require.NoError(t, s.Create([]*Element{s.Root()}, DefaultOptions()))

	s.Viewport().ScrollBy(0, 50)
	s.processPointer(20, 30, true, MouseButtonLeft, 0)
	assert.Equal(t, []Point{{20, 80}}, s.Controllers()[0].Vertices())
}
