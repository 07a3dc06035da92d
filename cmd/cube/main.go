package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-gldemos/internal/config"
	"github.com/leterax/go-gldemos/internal/logx"
	"github.com/leterax/go-gldemos/pkg/game"
	"github.com/leterax/go-gldemos/pkg/render"
	"github.com/leterax/go-gldemos/pkg/shape"
)

func init() {
	// This is needed to ensure that the OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Parse(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:], "Rotating Cube")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logx.Setup(cfg.Log.Level); err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	renderer, err := render.NewRenderer(cfg, render.Scene{
		Prism:      shape.ColoredCube(),
		Program:    render.ProgramColor,
		Model:      game.Spin(mgl32.Vec3{0.5, 1, 0}, 1),
		FlyCamera:  true,
		ClearColor: mgl32.Vec4{0.05, 0.05, 0.1, 1},
	})
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Delete()

	cam := renderer.Frame().Camera
	yaw, pitch := cam.Orientation()
	slog.Info("camera ready", "position", cam.Position(), "yaw", yaw, "pitch", pitch)

	// WASD to move, mouse to look, Escape to quit
	renderer.Run()
}
