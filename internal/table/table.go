// Package table handles the discrete scene commands: putting the ball and
// the table back at their start poses and nudging the cabinet.
package table

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"pinball/internal/components"
	"pinball/internal/config"
	"pinball/internal/engine"
	"pinball/internal/input"
	"pinball/internal/logger"
)

const (
	BallTag  = "ball"
	TableTag = "table"
)

// Controller reacts to key press edges only; holding a key repeats nothing.
type Controller struct {
	BallStart  rl.Vector3
	TableStart rl.Vector3
	TableTilt  rl.Quaternion
	Nudge      rl.Vector3

	log *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) *Controller {
	return &Controller{
		BallStart:  cfg.BallStartPosition(),
		TableStart: cfg.TableStartPosition(),
		TableTilt:  engine.AxisAngle(engine.WorldRight, cfg.TiltRadians()),
		// Toward the back of the table.
		Nudge: rl.Vector3{Z: -cfg.Table.NudgeStrength},
		log:   logger.OrNop(log).Named("table"),
	}
}

// Update runs the three actions; their order does not matter.
func (c *Controller) Update(scene *engine.Scene, in input.Frame) {
	if in.Pressed.Has(input.ResetBall) {
		c.ResetBalls(scene)
	}
	if in.Pressed.Has(input.ResetTable) {
		c.ResetTables(scene)
	}
	if in.Pressed.Has(input.Nudge) {
		c.NudgeTables(scene)
	}
}

// ResetBalls puts every ball at the start position at rest. A sphere's
// orientation is not visible, so rotation is kept.
func (c *Controller) ResetBalls(scene *engine.Scene) int {
	balls := scene.FindByTag(BallTag)
	for _, ball := range balls {
		ball.Transform.Position = c.BallStart
		if rb := engine.GetComponent[*components.Rigidbody](ball); rb != nil {
			rb.Stop()
			rb.Wake()
		}
	}
	c.log.Info("ball reset", zap.Int("count", len(balls)))
	return len(balls)
}

// ResetTables restores the start pose and tilt of every table at rest.
func (c *Controller) ResetTables(scene *engine.Scene) int {
	tables := scene.FindByTag(TableTag)
	for _, t := range tables {
		t.Transform.Position = c.TableStart
		t.Transform.Rotation = c.TableTilt
		if rb := engine.GetComponent[*components.Rigidbody](t); rb != nil {
			rb.Stop()
			rb.Wake()
		}
	}
	c.log.Info("table reset", zap.Int("count", len(tables)))
	return len(tables)
}

// NudgeTables queues one impulse per table for the next physics step.
func (c *Controller) NudgeTables(scene *engine.Scene) int {
	nudged := 0
	for _, t := range scene.FindByTag(TableTag) {
		rb := engine.GetComponent[*components.Rigidbody](t)
		if rb == nil {
			continue
		}
		c.log.Info("nudging table", zap.Uint64("uid", t.UID), zap.String("name", t.Name))
		rb.ApplyImpulse(c.Nudge)
		nudged++
	}
	return nudged
}
