// Package render runs the GL demo loop: drain window events into a
// game.Frame, then draw one Scene per frame.
package render

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/leterax/go-gldemos/internal/config"
	"github.com/leterax/go-gldemos/internal/openglhelper"
	"github.com/leterax/go-gldemos/pkg/camera"
	"github.com/leterax/go-gldemos/pkg/game"
)

// Uniform names shared by every embedded shader
const (
	UniformModel      = "uModel"
	UniformView       = "uView"
	UniformProjection = "uProjection"
	UniformTexture    = "uTexture"
)

// Renderer handles rendering logic and the frame loop
type Renderer struct {
	window *openglhelper.Window
	frame  *game.Frame
	scene  Scene

	shader  *openglhelper.Shader
	mesh    *openglhelper.Mesh
	texture *openglhelper.Texture

	startTime float64
	frames    uint64
}

// NewRenderer creates the window and uploads the scene's GPU resources
func NewRenderer(cfg config.Config, scene Scene) (*Renderer, error) {
	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	info := window.Info()
	slog.Info("opengl context",
		"version", info.Version,
		"glsl", info.GLSLVersion,
		"vendor", info.Vendor,
		"renderer", info.Renderer)

	cam := camera.New(cfg.CameraOptions())
	cam.Resize(window.Size())

	r := &Renderer{
		window: window,
		frame:  game.NewFrame(cam),
		scene:  scene,
	}

	if err := r.initScene(); err != nil {
		r.Delete()
		return nil, err
	}

	if scene.FlyCamera {
		window.SetMouseCaptured(true)
	}

	return r, nil
}

func (r *Renderer) initScene() error {
	if r.scene.Prism == nil {
		return nil
	}

	vertexPath, fragmentPath := r.scene.Program.files()
	shader, err := openglhelper.LoadShaderFS(shaderFS, vertexPath, fragmentPath)
	if err != nil {
		return fmt.Errorf("failed to load shader: %w", err)
	}
	r.shader = shader

	r.mesh = openglhelper.NewMesh(r.scene.Prism)

	if r.scene.Texture != nil {
		texture, err := openglhelper.NewTexture(r.scene.Texture)
		if err != nil {
			return fmt.Errorf("failed to load texture: %w", err)
		}
		r.texture = texture
	}

	return openglhelper.CheckError("init scene")
}

// Frame returns the per-frame camera and input context
func (r *Renderer) Frame() *game.Frame {
	return r.frame
}

// Run draws until the window is closed or Escape is pressed
func (r *Renderer) Run() {
	r.startTime = r.window.Time()

	for {
		r.window.PollEvents()
		if r.frame.Step(r.window.Events()) || r.window.ShouldClose() {
			break
		}

		r.render(float32(r.window.Time() - r.startTime))
		r.window.SwapBuffers()
		r.frames++
	}

	elapsed := r.window.Time() - r.startTime
	if elapsed > 0 {
		slog.Info("render loop stopped", "frames", r.frames, "fps", float64(r.frames)/elapsed)
	}
}

// render draws one frame at time t seconds
func (r *Renderer) render(t float32) {
	r.window.Clear(r.scene.ClearColor)

	if r.mesh == nil {
		return
	}

	model := game.Static(t)
	if r.scene.Model != nil {
		model = r.scene.Model(t)
	}

	mvp := game.Identity()
	mvp.Model = model
	if r.scene.FlyCamera {
		mvp = r.frame.MVP(model)
	}

	r.shader.Use()
	r.shader.SetMat4(UniformModel, mvp.Model)
	r.shader.SetMat4(UniformView, mvp.View)
	r.shader.SetMat4(UniformProjection, mvp.Projection)

	if r.texture != nil {
		r.texture.Bind(0)
		r.shader.SetInt(UniformTexture, 0)
	}

	r.mesh.Draw()

	if r.texture != nil {
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}

	// Errors are logged and the loop keeps going
	_ = openglhelper.CheckError("draw frame")
}

// Delete frees all GPU resources and closes the window
func (r *Renderer) Delete() {
	if r.texture != nil {
		r.texture.Delete()
		r.texture = nil
	}
	if r.mesh != nil {
		r.mesh.Delete()
		r.mesh = nil
	}
	if r.shader != nil {
		r.shader.Delete()
		r.shader = nil
	}
	if r.window != nil {
		r.window.Close()
		r.window = nil
	}
}
