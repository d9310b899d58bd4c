package input

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"pinball/internal/config"
)

// Bindings maps physical raylib keys and buttons to actions.
type Bindings struct {
	OrbitButton  rl.MouseButton
	PanModifiers []int32
	Keys         map[Action]int32
}

var namedKeys = map[string]int32{
	"space":        rl.KeySpace,
	"enter":        rl.KeyEnter,
	"escape":       rl.KeyEscape,
	"tab":          rl.KeyTab,
	"backspace":    rl.KeyBackspace,
	"leftcontrol":  rl.KeyLeftControl,
	"rightcontrol": rl.KeyRightControl,
	"leftshift":    rl.KeyLeftShift,
	"rightshift":   rl.KeyRightShift,
	"leftalt":      rl.KeyLeftAlt,
	"rightalt":     rl.KeyRightAlt,
	"up":           rl.KeyUp,
	"down":         rl.KeyDown,
	"left":         rl.KeyLeft,
	"right":        rl.KeyRight,
}

// ParseKey resolves a key name such as "B", "7", "Space" or "LeftControl".
func ParseKey(name string) (int32, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if len(n) == 1 {
		c := n[0]
		switch {
		case c >= 'a' && c <= 'z':
			return rl.KeyA + int32(c-'a'), nil
		case c >= '0' && c <= '9':
			return rl.KeyZero + int32(c-'0'), nil
		}
	}
	n = strings.NewReplacer("_", "", "-", "", " ", "").Replace(n)
	if k, ok := namedKeys[n]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// NewBindings resolves the key names in cfg.
func NewBindings(cfg config.Keys) (*Bindings, error) {
	b := &Bindings{
		OrbitButton: rl.MouseLeftButton,
		Keys:        make(map[Action]int32),
	}

	named := map[Action]string{
		ResetBall:         cfg.ResetBall,
		ResetTable:        cfg.ResetTable,
		Nudge:             cfg.Nudge,
		ToggleLightGizmos: cfg.ToggleLightGizmos,
		ToggleAxisGizmo:   cfg.ToggleAxisGizmo,
	}
	for action, name := range named {
		if name == "" {
			continue
		}
		key, err := ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", action, err)
		}
		b.Keys[action] = key
	}

	for _, name := range cfg.PanModifiers {
		key, err := ParseKey(name)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", PanModifier, err)
		}
		b.PanModifiers = append(b.PanModifiers, key)
	}
	return b, nil
}
