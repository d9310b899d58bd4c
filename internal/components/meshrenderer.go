package components

import (
	"pinball/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type MeshType int

const (
	MeshCube MeshType = iota
	MeshSphere
)

type MeshRenderer struct {
	engine.BaseComponent
	MeshType MeshType
	Color    rl.Color
	Size     rl.Vector3
}

func NewMeshRenderer(meshType MeshType, color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		MeshType: meshType,
		Color:    color,
		Size:     size,
	}
}

// Draw renders the mesh at the object's world pose. Call inside BeginMode3D.
func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	axis, angle := axisAngle(g.WorldRotation())

	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(angle*rl.Rad2deg, axis.X, axis.Y, axis.Z)
	switch m.MeshType {
	case MeshCube:
		rl.DrawCubeV(rl.Vector3{}, m.Size, m.Color)
		rl.DrawCubeWiresV(rl.Vector3{}, m.Size, rl.Fade(rl.Black, 0.3))
	case MeshSphere:
		rl.DrawSphere(rl.Vector3{}, m.Size.X, m.Color)
	}
	rl.PopMatrix()
}

// axisAngle decomposes a unit quaternion; identity maps to a zero angle about +Y.
func axisAngle(q rl.Quaternion) (rl.Vector3, float32) {
	if q.W > 1 {
		q = rl.QuaternionNormalize(q)
	}
	s := 1 - q.W*q.W
	if s < 1e-8 {
		return engine.WorldUp, 0
	}
	inv := 1 / sqrtf(s)
	axis := rl.Vector3{X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv}
	return axis, 2 * acosf(q.W)
}
