package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Action is a logical control, independent of the physical key bound to it.
type Action uint8

const (
	Orbit Action = iota
	PanModifier
	ResetBall
	ResetTable
	Nudge
	ToggleLightGizmos
	ToggleAxisGizmo
	actionCount
)

var actionNames = [actionCount]string{
	Orbit:             "orbit",
	PanModifier:       "pan_modifier",
	ResetBall:         "reset_ball",
	ResetTable:        "reset_table",
	Nudge:             "nudge",
	ToggleLightGizmos: "toggle_light_gizmos",
	ToggleAxisGizmo:   "toggle_axis_gizmo",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// ActionSet is a bit set of actions.
type ActionSet uint32

func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

func (s ActionSet) With(a Action) ActionSet {
	return s | 1<<a
}

// Frame is the input aggregated over one rendered frame. It is built fresh by
// the host each frame and consumed once.
type Frame struct {
	// Scroll is the summed vertical wheel delta.
	Scroll float32
	// PointerDelta is the summed pointer motion in screen pixels.
	PointerDelta rl.Vector2
	// Held contains actions whose button or key is down this frame.
	Held ActionSet
	// Pressed contains actions whose key went from released to pressed this frame.
	Pressed ActionSet
}

func (f *Frame) AddScroll(dy float32) {
	f.Scroll += dy
}

func (f *Frame) AddPointer(delta rl.Vector2) {
	f.PointerDelta.X += delta.X
	f.PointerDelta.Y += delta.Y
}

// Empty reports whether the frame carries no input at all.
func (f Frame) Empty() bool {
	return f.Scroll == 0 && f.PointerDelta.X == 0 && f.PointerDelta.Y == 0 && f.Held == 0 && f.Pressed == 0
}
