package camera

import "github.com/go-gl/mathgl/mgl32"

// Camera defaults
const (
	DefaultSensitivity = 0.1
	DefaultMoveSpeed   = 0.1

	// Default orientation, facing +Z
	DefaultYaw   = 90.0
	DefaultPitch = 0.0

	// Field of view
	DefaultFOV = 45.0

	// Clip planes
	NearPlane = 0.1
	FarPlane  = 100.0

	// Constraints
	MaxPitch = 90.0
	MinPitch = -90.0
)

// DefaultPosition is where a new camera starts.
var DefaultPosition = mgl32.Vec3{0, 0, -3}

// WorldUp is the fixed up direction for movement and the view matrix.
var WorldUp = mgl32.Vec3{0, 1, 0}
