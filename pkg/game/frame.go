// Package game holds the per-frame context that ties window input to the
// fly camera.
package game

import (
	"github.com/leterax/go-gldemos/pkg/camera"
	"github.com/leterax/go-gldemos/pkg/input"
)

// Frame owns the camera and held-key state for one render loop. It is not
// safe for concurrent use; the loop that created it is its only user.
type Frame struct {
	Camera *camera.Camera
	Input  input.State

	// Updates counts camera position updates, one per Step.
	Updates int
}

// NewFrame creates a frame context around cam.
func NewFrame(cam *camera.Camera) *Frame {
	return &Frame{Camera: cam}
}

// Step applies a frame's worth of events in order, then moves the camera
// once. It reports whether the loop should stop.
func (f *Frame) Step(events []input.Event) (quit bool) {
	for _, ev := range events {
		if input.IsQuit(ev) {
			quit = true
		}

		switch ev.Kind {
		case input.EventKey:
			f.Input.ApplyKeyEvent(ev.Key, ev.Down, ev.Repeat)
		case input.EventMouseMotion:
			f.Camera.ApplyMouseDelta(ev.DX, ev.DY)
		case input.EventResize:
			f.Camera.Resize(ev.Width, ev.Height)
		}
	}

	f.Camera.UpdatePosition(f.Input.Held())
	f.Updates++

	return quit
}
