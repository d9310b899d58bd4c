package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the table geometry and control tuning. It is built once at
// startup and treated as read-only afterwards.
type Config struct {
	// Environment
	LogLevel string `yaml:"log_level"`

	// Window
	WindowWidth  int32  `yaml:"window_width"`
	WindowHeight int32  `yaml:"window_height"`
	WindowTitle  string `yaml:"window_title"`
	TargetFPS    int32  `yaml:"target_fps"`

	Table   Table   `yaml:"table"`
	Ball    Ball    `yaml:"ball"`
	Camera  Camera  `yaml:"camera"`
	Physics Physics `yaml:"physics"`
	Keys    Keys    `yaml:"keys"`
}

// Table describes the playfield. 0,0 is the top left corner of the playfield.
type Table struct {
	PlayfieldWidth  float32 `yaml:"playfield_width"`
	PlayfieldLength float32 `yaml:"playfield_length"`
	PlayfieldY      float32 `yaml:"playfield_y"`
	Thickness       float32 `yaml:"thickness"`
	BackWallHeight  float32 `yaml:"back_wall_height"`
	WallHeight      float32 `yaml:"wall_height"`
	TiltDegrees     float32 `yaml:"tilt_degrees"`
	NudgeStrength   float32 `yaml:"nudge_strength"`
	Density         float32 `yaml:"density"`
}

type Ball struct {
	Radius float32 `yaml:"radius"`
	Mass   float32 `yaml:"mass"`
	// StartHeight is the Y of the reset position.
	StartHeight float32 `yaml:"start_height"`
}

type Camera struct {
	VerticalSensitivity float32 `yaml:"vertical_sensitivity"`
	PanSensitivity      float32 `yaml:"pan_sensitivity"`
	RotateSensitivity   float32 `yaml:"rotate_sensitivity"`
	FOV                 float32 `yaml:"fov"`
	// HeadHeight and HeadDistance place the player in front of the table.
	HeadHeight   float32 `yaml:"head_height"`
	HeadDistance float32 `yaml:"head_distance"`
}

type Physics struct {
	Gravity        float32 `yaml:"gravity"`
	FloorY         float32 `yaml:"floor_y"`
	FloorSize      float32 `yaml:"floor_size"`
	BallDamping    float32 `yaml:"ball_angular_damping"`
	TableDamping   float32 `yaml:"table_linear_damping"`
	Restitution    float32 `yaml:"restitution"`
	MaxStepSeconds float32 `yaml:"max_step_seconds"`
	Substeps       int     `yaml:"substeps"`
}

// Keys maps actions to key names understood by input.ParseKey.
type Keys struct {
	ResetBall         string   `yaml:"reset_ball"`
	ResetTable        string   `yaml:"reset_table"`
	Nudge             string   `yaml:"nudge"`
	ToggleLightGizmos string   `yaml:"toggle_light_gizmos"`
	ToggleAxisGizmo   string   `yaml:"toggle_axis_gizmo"`
	PanModifiers      []string `yaml:"pan_modifiers"`
}

func Default() *Config {
	return &Config{
		LogLevel:     "info",
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "Pinball",
		TargetFPS:    120,
		Table: Table{
			PlayfieldWidth:  0.51435,
			PlayfieldLength: 1.06068,
			PlayfieldY:      0.07,
			Thickness:       0.01,
			BackWallHeight:  0.3,
			WallHeight:      0.1,
			TiltDegrees:     6.5,
			NudgeStrength:   5.0,
			Density:         1000.0,
		},
		Ball: Ball{
			Radius:      0.027 / 2,
			Mass:        0.080,
			StartHeight: 0.50,
		},
		Camera: Camera{
			VerticalSensitivity: 0.05,
			PanSensitivity:      0.01,
			RotateSensitivity:   0.01,
			FOV:                 45,
			HeadHeight:          0.70,
			HeadDistance:        0.2,
		},
		Physics: Physics{
			Gravity:        9.81,
			FloorY:         -0.45,
			FloorSize:      4.0,
			BallDamping:    1.0,
			TableDamping:   0.0,
			Restitution:    0.2,
			MaxStepSeconds: 1.0 / 30,
			Substeps:       4,
		},
		Keys: Keys{
			ResetBall:         "B",
			ResetTable:        "T",
			Nudge:             "Space",
			ToggleLightGizmos: "G",
			ToggleAxisGizmo:   "X",
			PanModifiers:      []string{"LeftControl"},
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in that order. A missing file at path is not an error.
func Load(path string) (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	cfg := Default()
	if path != "" {
		f, err := os.Open(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("open config %s: %w", path, err)
		default:
			defer f.Close()
			if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
				return nil, fmt.Errorf("decode config %s: %w", path, err)
			}
		}
	}

	cfg.LogLevel = getEnv("PINBALL_LOG_LEVEL", cfg.LogLevel)
	cfg.WindowWidth = getEnvInt32("PINBALL_WINDOW_WIDTH", cfg.WindowWidth)
	cfg.WindowHeight = getEnvInt32("PINBALL_WINDOW_HEIGHT", cfg.WindowHeight)
	cfg.TargetFPS = getEnvInt32("PINBALL_TARGET_FPS", cfg.TargetFPS)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every field that would make the controllers or the
// physics step produce non-finite values.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float32) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("table.playfield_width", c.Table.PlayfieldWidth)
	positive("table.playfield_length", c.Table.PlayfieldLength)
	positive("table.thickness", c.Table.Thickness)
	positive("table.density", c.Table.Density)
	positive("ball.radius", c.Ball.Radius)
	positive("ball.mass", c.Ball.Mass)
	positive("camera.vertical_sensitivity", c.Camera.VerticalSensitivity)
	positive("camera.pan_sensitivity", c.Camera.PanSensitivity)
	positive("camera.rotate_sensitivity", c.Camera.RotateSensitivity)
	positive("physics.max_step_seconds", c.Physics.MaxStepSeconds)
	if c.Physics.Substeps < 1 {
		errs = append(errs, fmt.Errorf("physics.substeps must be at least 1, got %d", c.Physics.Substeps))
	}
	if c.Physics.Restitution < 0 || c.Physics.Restitution > 1 {
		errs = append(errs, fmt.Errorf("physics.restitution must be within [0,1], got %v", c.Physics.Restitution))
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight))
	}
	return errors.Join(errs...)
}

// PlayfieldCenter is the point the camera re-aims at after a vertical scroll.
func (c *Config) PlayfieldCenter() rl.Vector3 {
	return rl.Vector3{X: c.Table.PlayfieldWidth / 2, Y: 0, Z: c.Table.PlayfieldLength / 2}
}

func (c *Config) BallStartPosition() rl.Vector3 {
	return rl.Vector3{X: c.Table.PlayfieldWidth / 2, Y: c.Ball.StartHeight, Z: c.Ball.Radius}
}

func (c *Config) TableStartPosition() rl.Vector3 {
	return rl.Vector3{X: c.Table.PlayfieldWidth / 2, Y: c.Table.PlayfieldY, Z: c.Table.PlayfieldLength / 2}
}

// TiltRadians is the playfield slope about the lateral (X) axis.
func (c *Config) TiltRadians() float32 {
	return c.Table.TiltDegrees * rl.Deg2rad
}

// PlayerHeadPosition is about 70cm above the table and 20cm in front of it.
func (c *Config) PlayerHeadPosition() rl.Vector3 {
	return rl.Vector3{
		X: c.Table.PlayfieldWidth / 2,
		Y: c.Camera.HeadHeight,
		Z: c.Table.PlayfieldLength + c.Camera.HeadDistance,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if v, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(v)
		}
	}
	return defaultValue
}
