package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Device is the subset of raylib input queries the poller needs.
type Device interface {
	GetMouseWheelMoveV() rl.Vector2
	GetMouseDelta() rl.Vector2
	IsMouseButtonDown(button rl.MouseButton) bool
	IsKeyDown(key int32) bool
	IsKeyPressed(key int32) bool
}

// Raylib reads input from the open raylib window.
type Raylib struct{}

func (Raylib) GetMouseWheelMoveV() rl.Vector2               { return rl.GetMouseWheelMoveV() }
func (Raylib) GetMouseDelta() rl.Vector2                    { return rl.GetMouseDelta() }
func (Raylib) IsMouseButtonDown(button rl.MouseButton) bool { return rl.IsMouseButtonDown(button) }
func (Raylib) IsKeyDown(key int32) bool                     { return rl.IsKeyDown(key) }
func (Raylib) IsKeyPressed(key int32) bool                  { return rl.IsKeyPressed(key) }

// Poller turns device state into one Frame per call.
type Poller struct {
	device   Device
	bindings *Bindings
}

func NewPoller(device Device, bindings *Bindings) *Poller {
	return &Poller{device: device, bindings: bindings}
}

// Poll must be called exactly once per frame; raylib only reports a press
// edge on the frame it happens.
func (p *Poller) Poll() Frame {
	var f Frame
	// Only the vertical wheel axis moves the camera; GetMouseWheelMove would
	// return the horizontal axis when it dominates.
	f.AddScroll(p.device.GetMouseWheelMoveV().Y)
	f.AddPointer(p.device.GetMouseDelta())

	if p.device.IsMouseButtonDown(p.bindings.OrbitButton) {
		f.Held = f.Held.With(Orbit)
	}
	for _, key := range p.bindings.PanModifiers {
		if p.device.IsKeyDown(key) {
			f.Held = f.Held.With(PanModifier)
			break
		}
	}

	for action, key := range p.bindings.Keys {
		if p.device.IsKeyDown(key) {
			f.Held = f.Held.With(action)
		}
		if p.device.IsKeyPressed(key) {
			f.Pressed = f.Pressed.With(action)
		}
	}
	return f
}
