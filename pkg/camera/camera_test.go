package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leterax/go-gldemos/pkg/input"
)

const tol = 1e-5

func assertVecInDelta(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v", i, got)
	}
}

func TestNewDefaults(t *testing.T) {
	c := New(Options{})
	yaw, pitch := c.Orientation()
	assert.Equal(t, float32(90), yaw)
	assert.Equal(t, float32(0), pitch)
	assert.Equal(t, mgl32.Vec3{0, 0, -3}, c.Position())
	assertVecInDelta(t, mgl32.Vec3{0, 0, 1}, c.Front(), tol)
}

func TestForwardScenario(t *testing.T) {
	c := New(Options{MoveSpeed: 0.1})
	c.UpdatePosition(input.Forward)
	assertVecInDelta(t, mgl32.Vec3{0, 0, -2.9}, c.Position(), tol)
}

func TestStrafeUsesRightVector(t *testing.T) {
	c := New(Options{MoveSpeed: 0.5})
	assertVecInDelta(t, mgl32.Vec3{-1, 0, 0}, c.Right(), tol)

	c.UpdatePosition(input.Right)
	assertVecInDelta(t, mgl32.Vec3{-0.5, 0, -3}, c.Position(), tol)

	c.UpdatePosition(input.Left)
	assertVecInDelta(t, mgl32.Vec3{0, 0, -3}, c.Position(), tol)
}

func TestOpposingKeysCancel(t *testing.T) {
	c := New(Options{})
	c.ApplyMouseDelta(123, 45)
	start := c.Position()

	c.UpdatePosition(input.Forward | input.Back)
	assert.Equal(t, start, c.Position())

	c.UpdatePosition(input.Left | input.Right)
	assert.Equal(t, start, c.Position())

	c.UpdatePosition(input.Forward | input.Back | input.Left | input.Right)
	assert.Equal(t, start, c.Position())
}

func TestMovementStaysHorizontal(t *testing.T) {
	c := New(Options{})
	c.ApplyMouseDelta(0, -400) // look up 40 degrees
	_, pitch := c.Orientation()
	require.InDelta(t, 40, pitch, tol)

	c.UpdatePosition(input.Forward)
	assert.InDelta(t, 0, c.Position().Y(), tol)
	assertVecInDelta(t, mgl32.Vec3{0, 0, -2.9}, c.Position(), tol)
}

func TestMouseDeltaWrapsOnce(t *testing.T) {
	c := New(Options{Sensitivity: 0.1})
	c.ApplyMouseDelta(3700, 0)
	yaw, _ := c.Orientation()
	assert.InDelta(t, 100, yaw, 1e-3)
}

func TestStepWrapLeavesHugeDeltaUnnormalized(t *testing.T) {
	c := New(Options{Sensitivity: 1})
	c.ApplyMouseDelta(1000, 0)
	yaw, _ := c.Orientation()
	// 90+1000 = 1090, one subtraction only
	assert.InDelta(t, 730, yaw, 1e-3)
}

func TestModuloWrapNormalizesAnyDelta(t *testing.T) {
	c := New(Options{Sensitivity: 1, Wrap: WrapModulo})
	c.ApplyMouseDelta(1000, 0)
	yaw, _ := c.Orientation()
	assert.InDelta(t, 10, yaw, 1e-3)

	c.ApplyMouseDelta(-1e6, 0)
	yaw, _ = c.Orientation()
	assert.GreaterOrEqual(t, yaw, float32(0))
	assert.Less(t, yaw, float32(360))
}

func TestNegativeYawWraps(t *testing.T) {
	c := New(Options{Sensitivity: 1})
	c.ApplyMouseDelta(-100, 0)
	yaw, _ := c.Orientation()
	assert.InDelta(t, 350, yaw, 1e-3)
}

func TestYawAndPitchStayInRange(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, mode := range []WrapMode{WrapStep, WrapModulo} {
		c := New(Options{Sensitivity: 0.1, Wrap: mode})
		for range 5000 {
			// within a full turn per frame for step mode
			dx := (r.Float64()*2 - 1) * 3599
			dy := (r.Float64()*2 - 1) * 1e6
			c.ApplyMouseDelta(dx, dy)

			yaw, pitch := c.Orientation()
			require.GreaterOrEqual(t, yaw, float32(0), "mode %v", mode)
			require.Less(t, yaw, float32(360), "mode %v", mode)
			require.GreaterOrEqual(t, pitch, float32(MinPitch))
			require.LessOrEqual(t, pitch, float32(MaxPitch))
		}
	}
}

func TestPitchClampsAtPoles(t *testing.T) {
	c := New(Options{})
	c.ApplyMouseDelta(0, 1e6)
	_, pitch := c.Orientation()
	assert.Equal(t, float32(MinPitch), pitch)

	c.ApplyMouseDelta(0, -1e6)
	_, pitch = c.Orientation()
	assert.Equal(t, float32(MaxPitch), pitch)
}

func TestFrontIsUnitLength(t *testing.T) {
	c := New(Options{})
	for yaw := float32(0); yaw < 360; yaw += 7.5 {
		for pitch := float32(MinPitch); pitch <= MaxPitch; pitch += 5 {
			c.setRotation(yaw, pitch)
			assert.InDelta(t, 1, c.Front().Len(), tol, "yaw %v pitch %v", yaw, pitch)
		}
	}
}

func TestFrontIsPure(t *testing.T) {
	c := New(Options{})
	c.ApplyMouseDelta(50, 20)
	first := c.Front()
	for range 3 {
		assert.Equal(t, first, c.Front())
	}
}

func TestViewMatrixPlacesTargetAhead(t *testing.T) {
	c := New(Options{})
	origin := c.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, origin.X(), tol)
	assert.InDelta(t, 0, origin.Y(), tol)
	assert.InDelta(t, -3, origin.Z(), tol)
	assert.InDelta(t, 1, origin.W(), tol)
}

func TestResizeIgnoresZeroSize(t *testing.T) {
	c := New(Options{})
	c.Resize(1600, 900)
	want := c.ProjectionMatrix()

	c.Resize(0, 0)
	assert.Equal(t, want, c.ProjectionMatrix())
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(DefaultFOV), 1600.0/900.0, NearPlane, FarPlane), want)
}

func TestParseWrapMode(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want WrapMode
	}{
		{"", WrapStep},
		{"step", WrapStep},
		{"modulo", WrapModulo},
	} {
		got, err := ParseWrapMode(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := ParseWrapMode("clamp")
	assert.Error(t, err)
	assert.Equal(t, "modulo", WrapModulo.String())
}

func assertNoNaN(t *testing.T, m mgl32.Mat4) {
	t.Helper()
	for i, v := range m {
		require.False(t, math.IsNaN(float64(v)), "element %d of %v", i, m)
	}
}

func TestViewMatrixDefinedAtPoles(t *testing.T) {
	for _, dy := range []float64{-1e6, 1e6} {
		c := New(Options{})
		c.UpdatePosition(input.Right)
		c.UpdatePosition(input.Forward)
		c.ApplyMouseDelta(0, dy)

		view := c.ViewMatrix()
		assertNoNaN(t, view)

		// Eye maps to the origin and the look direction to -Z
		eye := view.Mul4x1(c.Position().Vec4(1))
		assertVecInDelta(t, mgl32.Vec3{}, eye.Vec3(), tol)
		ahead := view.Mul4x1(c.Position().Add(c.Front()).Vec4(1))
		assertVecInDelta(t, mgl32.Vec3{0, 0, -1}, ahead.Vec3(), tol)
	}
}

func TestViewMatrixMatchesLookAt(t *testing.T) {
	c := New(Options{})
	c.UpdatePosition(input.Left | input.Forward)
	c.ApplyMouseDelta(250, 130)

	want := mgl32.LookAtV(c.Position(), c.Position().Add(c.Front()), WorldUp)
	got := c.ViewMatrix()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-4, "element %d", i)
	}
}
