package game

import "github.com/go-gl/mathgl/mgl32"

// MVP is the model/view/projection triple bound to "uModel", "uView" and
// "uProjection". mgl32 matrices are column-major, as GL expects.
type MVP struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// Identity returns an MVP that passes positions through unchanged.
func Identity() MVP {
	return MVP{Model: mgl32.Ident4(), View: mgl32.Ident4(), Projection: mgl32.Ident4()}
}

// MVP combines model with the camera's view and projection.
func (f *Frame) MVP(model mgl32.Mat4) MVP {
	return MVP{
		Model:      model,
		View:       f.Camera.ViewMatrix(),
		Projection: f.Camera.ProjectionMatrix(),
	}
}

// ModelFunc returns a model matrix for a time in seconds since start.
type ModelFunc func(t float32) mgl32.Mat4

// Static always returns the identity.
func Static(float32) mgl32.Mat4 {
	return mgl32.Ident4()
}

// Spin rotates about axis at speed radians per second.
func Spin(axis mgl32.Vec3, speed float32) ModelFunc {
	axis = axis.Normalize()
	return func(t float32) mgl32.Mat4 {
		return mgl32.HomogRotate3D(t*speed, axis)
	}
}
