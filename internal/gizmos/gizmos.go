package gizmos

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"pinball/internal/components"
	"pinball/internal/engine"
	"pinball/internal/input"
	"pinball/internal/logger"
)

// State holds the debug drawing switches.
type State struct {
	LightGizmos bool
	AxisGizmo   bool
	AxisLength  float32 // half-meter long axes by default

	log *zap.Logger
}

func New(log *zap.Logger) *State {
	return &State{
		LightGizmos: true,
		AxisGizmo:   true,
		AxisLength:  0.5,
		log:         logger.OrNop(log).Named("gizmos"),
	}
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// Update flips a switch on its key press edge.
func (s *State) Update(in input.Frame) {
	if in.Pressed.Has(input.ToggleLightGizmos) {
		s.LightGizmos = !s.LightGizmos
		s.log.Info("light gizmos " + onOff(s.LightGizmos))
	}
	if in.Pressed.Has(input.ToggleAxisGizmo) {
		s.AxisGizmo = !s.AxisGizmo
		s.log.Info("axis gizmo " + onOff(s.AxisGizmo))
	}
}

// Draw renders the enabled gizmos. Call inside BeginMode3D.
func (s *State) Draw(scene *engine.Scene) {
	if s.AxisGizmo {
		origin := rl.Vector3{}
		drawArrow(origin, rl.Vector3{X: s.AxisLength}, rl.Red)
		drawArrow(origin, rl.Vector3{Y: s.AxisLength}, rl.Green)
		drawArrow(origin, rl.Vector3{Z: s.AxisLength}, rl.Blue)
	}
	if !s.LightGizmos {
		return
	}
	for _, g := range scene.GameObjects {
		light := engine.GetComponent[*components.PointLight](g)
		if light == nil || !g.Active {
			continue
		}
		pos := g.WorldPosition()
		rl.DrawSphereWires(pos, 0.03, 8, 8, light.Color)
		rl.DrawSphereWires(pos, light.Range, 12, 12, rl.Fade(light.Color, 0.15))
	}
}

func drawArrow(from, to rl.Vector3, color rl.Color) {
	rl.DrawLine3D(from, to, color)
	rl.DrawCylinderEx(rl.Vector3Lerp(from, to, 0.85), to, 0.015, 0, 8, color)
}
