package components

import (
	"pinball/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type BoxCollider struct {
	engine.BaseComponent
	Size rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

// LowestPoint is the smallest world Y of the box's corners.
func (b *BoxCollider) LowestPoint() float32 {
	g := b.GetGameObject()
	center := g.WorldPosition()
	rot := g.WorldRotation()
	half := rl.Vector3Scale(b.Size, 0.5)

	lowest := center.Y
	for _, sx := range []float32{-1, 1} {
		for _, sy := range []float32{-1, 1} {
			for _, sz := range []float32{-1, 1} {
				corner := rl.Vector3{X: sx * half.X, Y: sy * half.Y, Z: sz * half.Z}
				y := center.Y + rl.Vector3RotateByQuaternion(corner, rot).Y
				if y < lowest {
					lowest = y
				}
			}
		}
	}
	return lowest
}
