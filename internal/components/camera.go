package components

import (
	"pinball/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	engine.BaseComponent
	FOV    float32
	IsMain bool // If true, this is the active game camera
}

func NewCamera(fov float32) *Camera {
	return &Camera{FOV: fov, IsMain: true}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}
	t := g.Transform
	return rl.Camera3D{
		Position:   g.WorldPosition(),
		Target:     rl.Vector3Add(g.WorldPosition(), t.Forward()),
		Up:         t.Up(),
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
}
