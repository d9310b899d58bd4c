package components

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"

	"pinball/internal/engine"
)

func TestRigidbodyImpulseQueue(t *testing.T) {
	rb := NewRigidbody(1)

	_, ok := rb.TakeImpulses()
	assert.False(t, ok)

	rb.ApplyImpulse(rl.Vector3{Z: -5})
	rb.ApplyImpulse(rl.Vector3{X: 1, Z: -5})
	assert.Len(t, rb.PendingImpulses(), 2)

	total, ok := rb.TakeImpulses()
	assert.True(t, ok)
	assert.Equal(t, rl.Vector3{X: 1, Z: -10}, total)
	assert.Empty(t, rb.PendingImpulses())
}

func TestRigidbodyStopAndSleep(t *testing.T) {
	rb := NewRigidbody(1)
	rb.Velocity = rl.Vector3{X: 0.001}
	rb.AngularVelocity = rl.Vector3{Y: 0.001}

	for i := 0; i < 10; i++ {
		rb.TrySleep(0.1)
	}
	assert.True(t, rb.IsSleeping)
	assert.Equal(t, rl.Vector3{}, rb.Velocity)

	rb.Wake()
	assert.False(t, rb.IsSleeping)

	rb.Velocity = rl.Vector3{Y: 3}
	rb.AngularVelocity = rl.Vector3{Z: 2}
	rb.Stop()
	assert.Equal(t, rl.Vector3{}, rb.Velocity)
	assert.Equal(t, rl.Vector3{}, rb.AngularVelocity)
}

func TestRigidbodyFastBodyStaysAwake(t *testing.T) {
	rb := NewRigidbody(1)
	rb.Velocity = rl.Vector3{Y: -2}

	for i := 0; i < 10; i++ {
		rb.TrySleep(0.1)
	}
	assert.False(t, rb.IsSleeping)
}

func TestBoxColliderLowestPoint(t *testing.T) {
	g := engine.NewGameObject("Table")
	g.Transform.Position = rl.Vector3{Y: 1}
	box := NewBoxCollider(rl.Vector3{X: 2, Y: 0.2, Z: 2})
	g.AddComponent(box)

	assert.InDelta(t, 0.9, box.LowestPoint(), 1e-6)

	// Tilted 90 degrees about X, the Z extent points down.
	g.Transform.Rotation = engine.AxisAngle(engine.WorldRight, engine.Deg(90))
	assert.InDelta(t, 0.0, box.LowestPoint(), 1e-5)
}

func TestSphereColliderFollowsParent(t *testing.T) {
	table := engine.NewGameObject("Table")
	table.Transform.Position = rl.Vector3{Y: 2}
	ball := engine.NewGameObject("Ball")
	ball.Transform.Position = rl.Vector3{Y: 0.5}
	table.AddChild(ball)
	sphere := NewSphereCollider(0.25)
	ball.AddComponent(sphere)

	assert.InDelta(t, 2.25, sphere.LowestPoint(), 1e-6)
}

func TestAxisAngleDecomposition(t *testing.T) {
	axis, angle := axisAngle(rl.QuaternionIdentity())
	assert.Equal(t, float32(0), angle)
	assert.Equal(t, engine.WorldUp, axis)

	axis, angle = axisAngle(engine.AxisAngle(engine.WorldRight, 0.5))
	assert.InDelta(t, 0.5, angle, 1e-5)
	assert.InDelta(t, 1.0, axis.X, 1e-5)
}

func TestCameraComponentFollowsTransform(t *testing.T) {
	g := engine.NewGameObject("PlayerCamera")
	g.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	cam := NewCamera(45)
	g.AddComponent(cam)

	rc := cam.GetRaylibCamera()
	assert.Equal(t, rl.Vector3{X: 1, Y: 2, Z: 3}, rc.Position)
	assert.InDelta(t, 2.0, rc.Target.Z, 1e-6)
	assert.Equal(t, float32(45), rc.Fovy)
}
