package table

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"pinball/internal/components"
	"pinball/internal/config"
	"pinball/internal/engine"
	"pinball/internal/input"
)

type fixture struct {
	cfg     *config.Config
	ctrl    *Controller
	scene   *engine.Scene
	ball    *engine.GameObject
	table   *engine.GameObject
	ballRb  *components.Rigidbody
	tableRb *components.Rigidbody
	logs    *observer.ObservedLogs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	core, logs := observer.New(zap.InfoLevel)
	cfg := config.Default()

	f := &fixture{
		cfg:   cfg,
		ctrl:  New(cfg, zap.New(core)),
		scene: engine.NewScene("test"),
		logs:  logs,
	}

	f.ball = engine.NewGameObject("Pinball", BallTag)
	f.ball.Transform.Position = rl.Vector3{X: 0.1, Y: -0.3, Z: 0.9}
	f.ball.Transform.Rotation = engine.AxisAngle(rl.Vector3{X: 1, Y: 1}, 0.7)
	f.ballRb = components.NewRigidbody(cfg.Ball.Mass)
	f.ballRb.Velocity = rl.Vector3{X: 1, Y: -2, Z: 3}
	f.ballRb.AngularVelocity = rl.Vector3{X: 4, Y: 5, Z: -6}
	f.ballRb.IsSleeping = true
	f.ball.AddComponent(f.ballRb)

	f.table = engine.NewGameObject("Playfield", TableTag)
	f.table.Transform.Position = rl.Vector3{X: 2, Y: -1, Z: 0}
	f.table.Transform.Rotation = engine.AxisAngle(rl.Vector3{X: 0.2, Y: 0.9, Z: -0.4}, 2.1)
	f.tableRb = components.NewRigidbody(5)
	f.tableRb.Velocity = rl.Vector3{Z: 0.5}
	f.tableRb.AngularVelocity = rl.Vector3{Y: 0.25}
	f.table.AddComponent(f.tableRb)

	f.scene.AddGameObject(f.ball)
	f.scene.AddGameObject(f.table)
	return f
}

func pressed(actions ...input.Action) input.Frame {
	return input.Frame{Pressed: input.NewActionSet(actions...)}
}

func TestBallReset(t *testing.T) {
	f := newFixture(t)
	rot := f.ball.Transform.Rotation

	f.ctrl.Update(f.scene, pressed(input.ResetBall))

	assert.Equal(t, f.cfg.BallStartPosition(), f.ball.Transform.Position)
	assert.Equal(t, rl.Vector3{}, f.ballRb.Velocity)
	assert.Equal(t, rl.Vector3{}, f.ballRb.AngularVelocity)
	assert.Equal(t, rot, f.ball.Transform.Rotation, "ball rotation is kept")
	assert.False(t, f.ballRb.IsSleeping)

	// The table is untouched.
	assert.Equal(t, rl.Vector3{X: 2, Y: -1, Z: 0}, f.table.Transform.Position)
}

func TestBallResetIsIdempotent(t *testing.T) {
	f := newFixture(t)

	f.ctrl.Update(f.scene, pressed(input.ResetBall))
	once := f.ball.Transform
	onceRb := *f.ballRb
	f.ctrl.Update(f.scene, pressed(input.ResetBall))

	assert.Equal(t, once, f.ball.Transform)
	assert.Equal(t, onceRb.Velocity, f.ballRb.Velocity)
	assert.Equal(t, onceRb.AngularVelocity, f.ballRb.AngularVelocity)
}

func TestTableResetRestoresTilt(t *testing.T) {
	f := newFixture(t)

	f.ctrl.Update(f.scene, pressed(input.ResetTable))

	want := rl.QuaternionFromAxisAngle(rl.Vector3{X: 1}, 6.5*rl.Deg2rad)
	got := f.table.Transform.Rotation
	assert.InDelta(t, want.X, got.X, 1e-6)
	assert.InDelta(t, want.Y, got.Y, 1e-6)
	assert.InDelta(t, want.Z, got.Z, 1e-6)
	assert.InDelta(t, want.W, got.W, 1e-6)

	assert.Equal(t, f.cfg.TableStartPosition(), f.table.Transform.Position)
	assert.Equal(t, rl.Vector3{}, f.tableRb.Velocity)
	assert.Equal(t, rl.Vector3{}, f.tableRb.AngularVelocity)
}

func TestNudgeQueuesOneImpulsePerPress(t *testing.T) {
	f := newFixture(t)
	velocity := f.tableRb.Velocity

	f.ctrl.Update(f.scene, pressed(input.Nudge))

	impulses := f.tableRb.PendingImpulses()
	require.Len(t, impulses, 1)
	assert.Equal(t, rl.Vector3{Z: -5}, impulses[0])
	assert.InDelta(t, 5.0, rl.Vector3Length(impulses[0]), 1e-6)
	assert.Equal(t, velocity, f.tableRb.Velocity, "nudge does not set velocity directly")
	assert.Empty(t, f.ballRb.PendingImpulses())

	// Space still held on the next frame: no new edge, no new impulse.
	f.ctrl.Update(f.scene, input.Frame{Held: input.NewActionSet(input.Nudge)})
	assert.Len(t, f.tableRb.PendingImpulses(), 1)

	// A fresh press queues another.
	f.ctrl.Update(f.scene, pressed(input.Nudge))
	assert.Len(t, f.tableRb.PendingImpulses(), 2)

	entries := f.logs.FilterMessage("nudging table").All()
	assert.Len(t, entries, 2)
}

func TestHeldKeysDoNothing(t *testing.T) {
	f := newFixture(t)
	before := f.ball.Transform

	f.ctrl.Update(f.scene, input.Frame{Held: input.NewActionSet(input.ResetBall, input.ResetTable)})

	assert.Equal(t, before, f.ball.Transform)
	assert.Equal(t, rl.Vector3{X: 1, Y: -2, Z: 3}, f.ballRb.Velocity)
}

func TestActionsOnEmptyScene(t *testing.T) {
	ctrl := New(config.Default(), nil)
	scene := engine.NewScene("empty")

	assert.NotPanics(t, func() {
		ctrl.Update(scene, pressed(input.ResetBall, input.ResetTable, input.Nudge))
	})
	assert.Equal(t, 0, ctrl.ResetBalls(scene))
	assert.Equal(t, 0, ctrl.ResetTables(scene))
	assert.Equal(t, 0, ctrl.NudgeTables(scene))
}

func TestResetWithoutRigidbody(t *testing.T) {
	ctrl := New(config.Default(), nil)
	scene := engine.NewScene("test")
	ball := engine.NewGameObject("Ghost", BallTag)
	scene.AddGameObject(ball)

	assert.Equal(t, 1, ctrl.ResetBalls(scene))
	assert.Equal(t, ctrl.BallStart, ball.Transform.Position)
}

func TestAllActionsInOneFrame(t *testing.T) {
	f := newFixture(t)

	f.ctrl.Update(f.scene, pressed(input.ResetBall, input.ResetTable, input.Nudge))

	assert.Equal(t, f.cfg.BallStartPosition(), f.ball.Transform.Position)
	assert.Equal(t, f.cfg.TableStartPosition(), f.table.Transform.Position)
	assert.Len(t, f.tableRb.PendingImpulses(), 1)
	assert.Equal(t, 1, f.logs.FilterMessage("ball reset").Len())
	assert.Equal(t, 1, f.logs.FilterMessage("table reset").Len())
}
