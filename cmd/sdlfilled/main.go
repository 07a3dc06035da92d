package main

import (
	"flag"
	"image/color"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-gldemos/internal/config"
	"github.com/leterax/go-gldemos/internal/logx"
	"github.com/leterax/go-gldemos/internal/sdlhelper"
	"github.com/leterax/go-gldemos/pkg/input"
	"github.com/leterax/go-gldemos/pkg/shape"
)

func init() {
	runtime.LockOSThread()
}

// pixels per frame while a WASD key is held
const step = 4

var background = color.RGBA{R: 30, G: 30, B: 30, A: 255}

func main() {
	cfg, err := config.Parse(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:], "Filled Triangle")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logx.Setup(cfg.Log.Level); err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	window, err := sdlhelper.NewWindow(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Close()

	triangle := shape.NewTriangle(
		shape.Vertex2D{Position: mgl32.Vec2{400, 100}, Color: color.RGBA{R: 255, A: 255}},
		shape.Vertex2D{Position: mgl32.Vec2{650, 500}, Color: color.RGBA{G: 255, A: 255}},
		shape.Vertex2D{Position: mgl32.Vec2{150, 500}, Color: color.RGBA{B: 255, A: 255}},
	)
	triangle.Translate(-50, 0)

	var keys input.State
	err = window.Loop(func(events []input.Event) error {
		for _, ev := range events {
			if ev.Kind == input.EventKey {
				keys.ApplyKeyEvent(ev.Key, ev.Down, ev.Repeat)
			}
		}
		// Screen y grows downward
		right, forward := keys.Held().Axes()
		triangle.Translate(right*step, -forward*step)

		if err := window.Clear(background); err != nil {
			return err
		}
		return sdlhelper.FillTriangle(window.Renderer(), triangle)
	})
	if err != nil {
		log.Fatalf("Render loop failed: %v", err)
	}
}
