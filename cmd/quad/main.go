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
	"github.com/leterax/go-gldemos/pkg/game"
	"github.com/leterax/go-gldemos/pkg/render"
	"github.com/leterax/go-gldemos/pkg/shape"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Parse(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:], "Rotating Quad")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logx.Setup(cfg.Log.Level); err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	checker := shape.Checkerboard(64, 8,
		color.NRGBA{R: 0xff, G: 0x66, B: 0x66, A: 0xff},
		color.NRGBA{R: 0x66, G: 0xff, B: 0x66, A: 0xff})

	renderer, err := render.NewRenderer(cfg, render.Scene{
		Prism:      shape.TexturedQuad(),
		Program:    render.ProgramTexture,
		Texture:    checker,
		Model:      game.Spin(mgl32.Vec3{0, 0, 1}, 1),
		ClearColor: mgl32.Vec4{0.1, 0.2, 0.3, 1},
	})
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Delete()

	renderer.Run()
}
