package game

import (
	"fmt"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorPanel     = rl.NewColor(28, 28, 38, 220)
	colorTextMuted = rl.NewColor(150, 150, 170, 255)
)

// HelpLines lists the controls using the configured key names.
func (g *Game) HelpLines() []string {
	k := g.cfg.Keys
	pan := "Ctrl"
	if len(k.PanModifiers) > 0 {
		pan = strings.Join(k.PanModifiers, "/")
	}
	return []string{
		"Left drag: orbit camera",
		pan + " + left drag: pan camera",
		"Wheel: raise/lower camera",
		k.ResetBall + ": reset ball",
		k.ResetTable + ": reset table",
		k.Nudge + ": nudge table",
		k.ToggleLightGizmos + ": light gizmos",
		k.ToggleAxisGizmo + ": axis gizmo",
	}
}

func (g *Game) DrawUI() {
	rl.DrawFPS(10, 10)

	y := int32(36)
	if g.ShowHelp {
		lines := g.HelpLines()
		h := int32(len(lines))*18 + 12
		rl.DrawRectangle(6, y-6, 260, h, colorPanel)
		for _, line := range lines {
			rl.DrawText(line, 14, y, 16, rl.RayWhite)
			y += 18
		}
		y += 12
	}

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
	box := rl.Rectangle{X: 14, Y: float32(y), Width: 16, Height: 16}
	g.ShowHelp = gui.CheckBox(box, "Controls", g.ShowHelp)
	box.Y += 22
	g.Gizmos.LightGizmos = gui.CheckBox(box, "Light gizmos", g.Gizmos.LightGizmos)
	box.Y += 22
	g.Gizmos.AxisGizmo = gui.CheckBox(box, "Axis gizmo", g.Gizmos.AxisGizmo)
	box.Y += 28

	stats := g.Stats.Last()
	rl.DrawText(fmt.Sprintf("Update: %.2f ms  Draw: %.2f ms", g.updateMs, g.drawMs), 14, int32(box.Y), 14, colorTextMuted)
	rl.DrawText(fmt.Sprintf("Max frame: %v", stats.MaxFrame), 14, int32(box.Y)+18, 14, colorTextMuted)
}
