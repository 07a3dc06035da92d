package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-gldemos/internal/config"
	"github.com/leterax/go-gldemos/internal/logx"
	"github.com/leterax/go-gldemos/pkg/render"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg, err := config.Parse(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:], "test window")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logx.Setup(cfg.Log.Level); err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	// No prism: the renderer only clears
	renderer, err := render.NewRenderer(cfg, render.Scene{
		ClearColor: mgl32.Vec4{0.1, 0.2, 0.3, 1},
	})
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Delete()

	renderer.Run()
}
