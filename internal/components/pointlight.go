package components

import (
	"pinball/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type PointLight struct {
	engine.BaseComponent
	Color rl.Color
	Range float32 // falloff distance
}

func NewPointLight() *PointLight {
	return &PointLight{
		Color: rl.White,
		Range: 3.0,
	}
}
