// Package sdlhelper wraps the SDL2 window and 2D renderer used by the
// non-GL triangle demos.
package sdlhelper

import (
	"fmt"
	"image/color"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/leterax/go-gldemos/pkg/input"
)

// Window is an SDL window with an accelerated 2D renderer
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
}

// NewWindow initializes SDL video and opens a window
func NewWindow(title string, width, height int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("failed to initialize SDL: %w", err)
	}

	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("failed to create SDL window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("failed to create SDL renderer: %w", err)
	}

	return &Window{window: window, renderer: renderer}, nil
}

// Renderer returns the window's 2D renderer
func (w *Window) Renderer() *sdl.Renderer {
	return w.renderer
}

// Clear fills the window with c
func (w *Window) Clear(c color.RGBA) error {
	if err := w.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return err
	}
	return w.renderer.Clear()
}

// Loop polls events and calls draw once per frame with that frame's events,
// until a quit event or Escape. draw errors stop the loop.
func (w *Window) Loop(draw func(events []input.Event) error) error {
	for {
		var events []input.Event
		quit := false
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			e, ok := TranslateEvent(ev)
			if !ok {
				continue
			}
			if input.IsQuit(e) {
				quit = true
			}
			events = append(events, e)
		}
		if quit {
			return nil
		}

		if err := draw(events); err != nil {
			return err
		}
		w.renderer.Present()
	}
}

// Close destroys the renderer and window and shuts SDL down
func (w *Window) Close() {
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.window != nil {
		w.window.Destroy()
	}
	sdl.Quit()
}
