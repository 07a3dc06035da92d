package openglhelper

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-gldemos/pkg/input"
)

// Window handles GLFW window creation and turns GLFW callbacks into a queue
// of input events
type Window struct {
	glfwWindow *glfw.Window
	width      int
	height     int
	title      string

	events []input.Event

	// Cursor state for relative motion
	captured   bool
	lastX      float64
	lastY      float64
	firstMouse bool
}

// NewWindow creates a new GLFW window with a 4.1 core OpenGL context
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	// Framebuffer size differs from window size on HiDPI displays
	fbWidth, fbHeight := glfwWindow.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	w := &Window{
		glfwWindow: glfwWindow,
		width:      fbWidth,
		height:     fbHeight,
		title:      title,
		firstMouse: true,
	}

	glfwWindow.SetKeyCallback(w.keyCallback)
	glfwWindow.SetCursorPosCallback(w.cursorPosCallback)
	glfwWindow.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	glfwWindow.SetCloseCallback(w.closeCallback)

	return w, nil
}

// Info describes the current GL context.
type Info struct {
	Version     string
	GLSLVersion string
	Vendor      string
	Renderer    string
}

// Info queries the driver strings of the current context.
func (w *Window) Info() Info {
	return Info{
		Version:     gl.GoStr(gl.GetString(gl.VERSION)),
		GLSLVersion: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
		Vendor:      gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:    gl.GoStr(gl.GetString(gl.RENDERER)),
	}
}

// Clear clears the color and depth buffers
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents runs the GLFW callbacks for pending events, queueing them
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Events returns the queued events in arrival order and empties the queue
func (w *Window) Events() []input.Event {
	events := w.events
	w.events = nil
	return events
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// Close releases all resources
func (w *Window) Close() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
}

// Size returns the framebuffer dimensions
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// Time returns seconds since GLFW was initialized
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

// SetMouseCaptured hides and locks the cursor so motion is unbounded
func (w *Window) SetMouseCaptured(captured bool) {
	w.firstMouse = true
	w.captured = captured

	if captured {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		if glfw.RawMouseMotionSupported() {
			w.glfwWindow.SetInputMode(glfw.RawMouseMotion, glfw.True)
		}
	} else {
		w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (w *Window) push(ev input.Event) {
	w.events = append(w.events, ev)
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	w.push(keyEvent(key, action))
}

func (w *Window) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if !w.captured {
		return
	}

	// The first sample after capture has no previous position
	if w.firstMouse {
		w.lastX = xpos
		w.lastY = ypos
		w.firstMouse = false
		return
	}

	dx := xpos - w.lastX
	dy := ypos - w.lastY
	w.lastX = xpos
	w.lastY = ypos

	w.push(input.MouseMotion(dx, dy))
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.width = width
	w.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	slog.Debug("framebuffer resized", "width", width, "height", height)

	w.push(input.Resize(width, height))
}

func (w *Window) closeCallback(_ *glfw.Window) {
	w.push(input.Quit())
}
