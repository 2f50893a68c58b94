package polymap

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig describes the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// ShowFPS draws an FPS/TPS readout over the surface.
	ShowFPS bool
}

// game adapts a Surface to ebiten.Game.
type game struct {
	surface *Surface
	fps     *fpsOverlay
}

func (g *game) Update() error {
	if g.fps != nil {
		g.fps.update(1.0 / float64(ebiten.TPS()))
	}
	return g.surface.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	g.surface.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout keeps the viewport in step with the window size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := g.surface.viewport
	vp.Width, vp.Height = float64(outsideWidth), float64(outsideHeight)
	g.surface.root.Width, g.surface.root.Height = vp.Width, vp.Height
	return outsideWidth, outsideHeight
}

// Run opens a window and drives the surface until the window closes or the
// surface's update callback returns an error.
func Run(s *Surface, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = int(s.viewport.Width), int(s.viewport.Height)
	}
	if cfg.Title == "" {
		cfg.Title = "polymap"
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := &game{surface: s}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	Logger().Info("polymap: run", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height,
		"controllers", len(s.widgets))
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("polymap: run: %w", err)
	}
	return nil
}
