// Package camera implements the first-person fly camera used by the cube demo.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-gldemos/pkg/input"
)

// Options configures a Camera. Zero fields take the package defaults.
type Options struct {
	Sensitivity float32
	MoveSpeed   float32
	FOV         float32
	Wrap        WrapMode
}

func (o Options) withDefaults() Options {
	if o.Sensitivity == 0 {
		o.Sensitivity = DefaultSensitivity
	}
	if o.MoveSpeed == 0 {
		o.MoveSpeed = DefaultMoveSpeed
	}
	if o.FOV == 0 {
		o.FOV = DefaultFOV
	}
	return o
}

// Camera is a yaw/pitch fly camera. Yaw is kept in [0,360) degrees and pitch
// is clamped to [-90,90]; the look direction is derived from them on demand.
type Camera struct {
	position mgl32.Vec3

	// Euler angles in degrees
	yaw   float32
	pitch float32

	sensitivity float32
	moveSpeed   float32
	fov         float32
	wrap        WrapMode

	width  int
	height int
}

// New creates a camera at DefaultPosition facing DefaultYaw.
func New(opts Options) *Camera {
	opts = opts.withDefaults()
	return &Camera{
		position:    DefaultPosition,
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		sensitivity: opts.Sensitivity,
		moveSpeed:   opts.MoveSpeed,
		fov:         opts.FOV,
		wrap:        opts.Wrap,
		width:       800,
		height:      600,
	}
}

// ApplyMouseDelta turns the camera by a relative mouse movement. Positive dy
// (cursor moving down) pitches the camera down.
func (c *Camera) ApplyMouseDelta(dx, dy float64) {
	c.yaw += c.sensitivity * float32(dx)
	c.pitch -= c.sensitivity * float32(dy)

	c.yaw = wrapYaw(c.yaw, c.wrap)

	// Clamping at the poles keeps the view from flipping over
	c.pitch = clampPitch(c.pitch)
}

func clampPitch(pitch float32) float32 {
	if pitch > MaxPitch {
		return MaxPitch
	}
	if pitch < MinPitch {
		return MinPitch
	}
	return pitch
}

// Front returns the unit look direction.
func (c *Camera) Front() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))

	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	return front.Normalize()
}

// horizontalFront is Front with y zeroed and re-normalized. Built from yaw
// alone it stays defined at the pitch limits.
func (c *Camera) horizontalFront() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.yaw))
	return mgl32.Vec3{float32(math.Cos(yaw)), 0, float32(math.Sin(yaw))}
}

// Right returns the horizontal right vector.
func (c *Camera) Right() mgl32.Vec3 {
	return c.horizontalFront().Cross(WorldUp).Normalize()
}

// UpdatePosition moves the camera one step for each held direction. It must
// be called once per frame, not once per event.
func (c *Camera) UpdatePosition(held input.Movement) {
	strafe, forward := held.Axes()

	// Axes cancel opposing keys before scaling, so they net to exactly zero
	move := c.horizontalFront().Mul(forward).Add(c.Right().Mul(strafe))

	if move == (mgl32.Vec3{}) {
		return
	}
	c.position = c.position.Add(move.Mul(c.moveSpeed))
}

// ViewMatrix returns the look-at matrix for the current position and front,
// with WorldUp as up. The right axis comes from yaw rather than from
// front×up, so the matrix stays defined when pitch sits at ±90 and front is
// parallel to WorldUp.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	f := c.Front()
	s := c.Right()
	u := s.Cross(f).Normalize()

	m := mgl32.Mat4{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		0, 0, 0, 1,
	}
	return m.Mul4(mgl32.Translate3D(-c.position[0], -c.position[1], -c.position[2]))
}

// ProjectionMatrix returns the perspective projection for the last size
// passed to Resize.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	aspect := float32(c.width) / float32(c.height)
	return mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, NearPlane, FarPlane)
}

// Resize records the framebuffer size. Zero sizes from a minimized window
// are ignored.
func (c *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width = width
	c.height = height
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// Orientation returns the current yaw and pitch in degrees.
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// setRotation sets yaw and pitch, applying the same wrap and clamp as mouse
// input.
func (c *Camera) setRotation(yaw, pitch float32) {
	c.yaw = wrapYaw(yaw, c.wrap)
	c.pitch = clampPitch(pitch)
}
