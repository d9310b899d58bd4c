package engine

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	WorldUp      = rl.Vector3{X: 0, Y: 1, Z: 0}
	WorldRight   = rl.Vector3{X: 1, Y: 0, Z: 0}
	WorldForward = rl.Vector3{X: 0, Y: 0, Z: -1}
)

// Transform is the position and orientation of a GameObject.
// Rotation is kept unit length; Scale is only used for drawing.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Quaternion
	Scale    rl.Vector3
}

func NewTransform(pos rl.Vector3) Transform {
	return Transform{
		Position: pos,
		Rotation: rl.QuaternionIdentity(),
		Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
	}
}

// Forward is the local -Z axis in world space.
func (t *Transform) Forward() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(WorldForward, t.Rotation)
}

// Right is the local +X axis in world space.
func (t *Transform) Right() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(WorldRight, t.Rotation)
}

// Up is the local +Y axis in world space.
func (t *Transform) Up() rl.Vector3 {
	return rl.Vector3RotateByQuaternion(WorldUp, t.Rotation)
}

func (t *Transform) Translate(delta rl.Vector3) {
	t.Position = rl.Vector3Add(t.Position, delta)
}

// Rotate applies a world-space rotation on top of the current orientation.
func (t *Transform) Rotate(q rl.Quaternion) {
	t.Rotation = rl.QuaternionNormalize(rl.QuaternionMultiply(q, t.Rotation))
}

// LookAt replaces the rotation so that Forward points at target.
// If target coincides with the position the rotation is left unchanged.
func (t *Transform) LookAt(target, up rl.Vector3) {
	if q, ok := LookRotation(t.Position, target, up); ok {
		t.Rotation = q
	}
}

// LookRotation builds the rotation whose -Z axis faces target from eye.
// It falls back to an orthogonal up vector when up is parallel to the view direction.
func LookRotation(eye, target, up rl.Vector3) (rl.Quaternion, bool) {
	dir := rl.Vector3Subtract(target, eye)
	if rl.Vector3Length(dir) < 1e-6 {
		return rl.QuaternionIdentity(), false
	}
	back := rl.Vector3Normalize(rl.Vector3Negate(dir))

	right := rl.Vector3CrossProduct(up, back)
	if rl.Vector3Length(right) < 1e-6 {
		right = rl.Vector3CrossProduct(orthogonal(back), back)
	}
	right = rl.Vector3Normalize(right)
	realUp := rl.Vector3CrossProduct(back, right)

	// Columns are the local axes expressed in world space. M15 stays zero:
	// QuaternionFromMatrix counts it in the trace.
	m := rl.Matrix{
		M0: right.X, M4: realUp.X, M8: back.X,
		M1: right.Y, M5: realUp.Y, M9: back.Y,
		M2: right.Z, M6: realUp.Z, M10: back.Z,
	}
	return rl.QuaternionNormalize(rl.QuaternionFromMatrix(m)), true
}

// AxisAngle is a rotation of angle radians about axis.
func AxisAngle(axis rl.Vector3, angle float32) rl.Quaternion {
	return rl.QuaternionFromAxisAngle(axis, angle)
}

// Deg converts degrees to radians.
func Deg(degrees float32) float32 {
	return degrees * math.Pi / 180
}

func orthogonal(v rl.Vector3) rl.Vector3 {
	if absf(v.X) < 0.9 {
		return WorldRight
	}
	return WorldUp
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
