package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"pinball/internal/components"
	"pinball/internal/engine"
)

// MainCamera returns the render camera of the first main Camera component.
func (w *World) MainCamera() (rl.Camera3D, bool) {
	for _, g := range w.Scene.GameObjects {
		if cam := engine.GetComponent[*components.Camera](g); cam != nil && cam.IsMain && g.Active {
			return cam.GetRaylibCamera(), true
		}
	}
	return rl.Camera3D{}, false
}

// Draw renders every mesh in the scene. Call inside BeginMode3D.
func (w *World) Draw() {
	for _, g := range w.Scene.GameObjects {
		if m := engine.GetComponent[*components.MeshRenderer](g); m != nil {
			m.Draw()
		}
	}
}
