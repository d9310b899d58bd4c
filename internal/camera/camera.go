package camera

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"pinball/internal/config"
	"pinball/internal/engine"
	"pinball/internal/input"
)

// Tag marks the entities driven by the Controller.
const Tag = "player_camera"

// Controller turns wheel and drag input into camera transform updates.
// It holds no state besides its immutable settings; the camera's Transform
// is the whole camera state.
type Controller struct {
	Target              rl.Vector3
	VerticalSensitivity float32
	PanSensitivity      float32
	RotateSensitivity   float32
}

func New(cfg *config.Config) *Controller {
	return &Controller{
		Target:              cfg.PlayfieldCenter(),
		VerticalSensitivity: cfg.Camera.VerticalSensitivity,
		PanSensitivity:      cfg.Camera.PanSensitivity,
		RotateSensitivity:   cfg.Camera.RotateSensitivity,
	}
}

// Update applies one frame of input to every camera in the scene.
func (c *Controller) Update(scene *engine.Scene, in input.Frame) {
	for _, cam := range scene.FindByTag(Tag) {
		c.Apply(&cam.Transform, in)
	}
}

// Apply updates t from one frame of input and reports whether t was written.
// The scroll check runs first and independently of the drag behaviors.
func (c *Controller) Apply(t *engine.Transform, in input.Frame) bool {
	changed := false
	if in.Scroll != 0 {
		c.Scroll(t, in.Scroll)
		changed = true
	}

	if !in.Held.Has(input.Orbit) {
		return changed
	}
	if in.PointerDelta.X == 0 && in.PointerDelta.Y == 0 {
		return changed
	}
	if in.Held.Has(input.PanModifier) {
		c.Pan(t, in.PointerDelta)
	} else {
		c.Orbit(t, in.PointerDelta)
	}
	return true
}

// Scroll moves the camera vertically and re-aims it at the playfield.
func (c *Controller) Scroll(t *engine.Transform, delta float32) {
	t.Position.Y += delta * c.VerticalSensitivity
	t.LookAt(c.Target, engine.WorldUp)
}

// Pan translates in world X/Y. Dragging right moves the view left.
func (c *Controller) Pan(t *engine.Transform, delta rl.Vector2) {
	t.Translate(rl.Vector3{
		X: -delta.X * c.PanSensitivity,
		Y: delta.Y * c.PanSensitivity,
	})
}

// Orbit free-looks around the camera's own position: yaw about world up,
// then pitch about the right axis taken before the yaw.
func (c *Controller) Orbit(t *engine.Transform, delta rl.Vector2) {
	yaw := -delta.X * c.RotateSensitivity
	pitch := -delta.Y * c.RotateSensitivity
	right := t.Right()

	t.Rotate(engine.AxisAngle(engine.WorldUp, yaw))
	t.Rotate(engine.AxisAngle(right, pitch))
}
