package game

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinball/internal/components"
	"pinball/internal/config"
	"pinball/internal/engine"
	"pinball/internal/input"
)

type fakeDevice struct {
	wheel   rl.Vector2
	delta   rl.Vector2
	orbit   bool
	down    map[int32]bool
	pressed map[int32]bool
}

func (d *fakeDevice) GetMouseWheelMoveV() rl.Vector2        { return d.wheel }
func (d *fakeDevice) GetMouseDelta() rl.Vector2             { return d.delta }
func (d *fakeDevice) IsMouseButtonDown(rl.MouseButton) bool { return d.orbit }
func (d *fakeDevice) IsKeyDown(key int32) bool              { return d.down[key] }
func (d *fakeDevice) IsKeyPressed(key int32) bool           { return d.pressed[key] }

func newGame(t *testing.T, device input.Device) *Game {
	t.Helper()
	if device == nil {
		device = &fakeDevice{}
	}
	g, err := NewWithDevice(config.Default(), nil, device)
	require.NoError(t, err)
	return g
}

func TestNewRejectsUnknownKey(t *testing.T) {
	cfg := config.Default()
	cfg.Keys.Nudge = "NoSuchKey"

	_, err := NewWithDevice(cfg, nil, &fakeDevice{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input bindings")
}

func TestUpdateWithEmptyFrameLeavesCamera(t *testing.T) {
	g := newGame(t, nil)
	before := g.World.Camera.Transform

	g.Update(input.Frame{}, 1.0/60)

	if g.World.Camera.Transform != before {
		t.Errorf("camera moved on empty frame: %+v -> %+v", before, g.World.Camera.Transform)
	}
}

func TestPolledDragOrbitsCamera(t *testing.T) {
	dev := &fakeDevice{delta: rl.Vector2{X: 10}, orbit: true}
	g := newGame(t, dev)
	before := g.World.Camera.Transform

	g.Update(g.poller.Poll(), 1.0/60)

	after := g.World.Camera.Transform
	assert.Equal(t, before.Position, after.Position)
	assert.NotEqual(t, before.Rotation, after.Rotation)
}

func TestPolledWheelRaisesCamera(t *testing.T) {
	dev := &fakeDevice{wheel: rl.Vector2{Y: 2}}
	g := newGame(t, dev)
	y := g.World.Camera.Transform.Position.Y

	g.Update(g.poller.Poll(), 1.0/60)

	assert.InDelta(t, y+0.1, g.World.Camera.Transform.Position.Y, 1e-5)
}

func TestNudgeKeyQueuesOneImpulse(t *testing.T) {
	dev := &fakeDevice{
		down:    map[int32]bool{rl.KeySpace: true},
		pressed: map[int32]bool{rl.KeySpace: true},
	}
	g := newGame(t, dev)
	rb := engine.GetComponent[*components.Rigidbody](g.World.Table)
	require.NotNil(t, rb)

	// A zero length frame leaves the impulse queued for inspection.
	g.Update(g.poller.Poll(), 0)
	require.Len(t, rb.PendingImpulses(), 1)
	assert.Equal(t, rl.Vector3{Z: -5}, rb.PendingImpulses()[0])

	// Held without a new press edge.
	dev.pressed = nil
	g.Update(g.poller.Poll(), 0)
	assert.Len(t, rb.PendingImpulses(), 1)
}

func TestNudgeIsConsumedByPhysics(t *testing.T) {
	g := newGame(t, nil)
	rb := engine.GetComponent[*components.Rigidbody](g.World.Table)
	require.NotNil(t, rb)

	g.Update(input.Frame{Pressed: input.NewActionSet(input.Nudge)}, 1.0/60)

	assert.Empty(t, rb.PendingImpulses())
	assert.InDelta(t, -5/rb.Mass, rb.Velocity.Z, 1e-4)
}

func TestResetBallFromFrame(t *testing.T) {
	g := newGame(t, nil)
	ball := g.World.Ball
	rb := engine.GetComponent[*components.Rigidbody](ball)
	ball.Transform.Position = rl.Vector3{X: 0.3, Y: -0.2, Z: 0.8}
	rb.Velocity = rl.Vector3{X: 1, Y: 1, Z: 1}

	g.Update(input.Frame{Pressed: input.NewActionSet(input.ResetBall)}, 0)

	assert.Equal(t, g.cfg.BallStartPosition(), ball.Transform.Position)
	assert.Equal(t, rl.Vector3{}, rb.Velocity)
}

func TestGizmoToggleFromFrame(t *testing.T) {
	g := newGame(t, nil)
	require.True(t, g.Gizmos.LightGizmos)

	g.Update(input.Frame{Pressed: input.NewActionSet(input.ToggleLightGizmos)}, 1.0/60)
	assert.False(t, g.Gizmos.LightGizmos)
}

func TestHelpLinesUseConfiguredKeys(t *testing.T) {
	cfg := config.Default()
	cfg.Keys.ResetBall = "R"
	cfg.Keys.PanModifiers = []string{"LeftShift", "RightShift"}
	g, err := NewWithDevice(cfg, nil, &fakeDevice{})
	require.NoError(t, err)

	lines := g.HelpLines()
	assert.Contains(t, lines, "R: reset ball")
	assert.Contains(t, lines, "LeftShift/RightShift + left drag: pan camera")
}
