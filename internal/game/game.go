package game

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"pinball/internal/camera"
	"pinball/internal/config"
	"pinball/internal/diagnostics"
	"pinball/internal/gizmos"
	"pinball/internal/input"
	"pinball/internal/logger"
	"pinball/internal/table"
	"pinball/internal/world"
)

type Game struct {
	World  *world.World
	Camera *camera.Controller
	Table  *table.Controller
	Gizmos *gizmos.State
	Stats  *diagnostics.FrameStats

	ShowHelp bool

	cfg    *config.Config
	poller *input.Poller
	log    *zap.Logger

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New builds a game that polls the raylib window for input.
func New(cfg *config.Config, log *zap.Logger) (*Game, error) {
	return NewWithDevice(cfg, log, input.Raylib{})
}

// NewWithDevice builds a game reading input from device.
func NewWithDevice(cfg *config.Config, log *zap.Logger, device input.Device) (*Game, error) {
	log = logger.OrNop(log)
	bindings, err := input.NewBindings(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("input bindings: %w", err)
	}
	return &Game{
		World:    world.New(cfg, log),
		Camera:   camera.New(cfg),
		Table:    table.New(cfg, log),
		Gizmos:   gizmos.New(log),
		Stats:    diagnostics.New(time.Second, log),
		ShowHelp: true,
		cfg:      cfg,
		poller:   input.NewPoller(device, bindings),
		log:      log.Named("game"),
	}, nil
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(g.cfg.WindowWidth, g.cfg.WindowHeight, g.cfg.WindowTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.cfg.TargetFPS)
	g.log.Info("window open",
		zap.Int32("width", g.cfg.WindowWidth),
		zap.Int32("height", g.cfg.WindowHeight),
		zap.Int32("target_fps", g.cfg.TargetFPS))

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()
		g.Update(g.poller.Poll(), dt)
		g.Draw()
	}
	g.log.Info("window closed")
}

// Update runs one frame of controllers and physics against an already polled input frame.
func (g *Game) Update(in input.Frame, deltaTime float32) {
	updateStart := time.Now()

	// Controllers touch disjoint entity sets.
	g.Camera.Update(g.World.Scene, in)
	g.Table.Update(g.World.Scene, in)
	g.Gizmos.Update(in)

	g.World.Update(deltaTime)
	g.Stats.Record(time.Duration(float64(deltaTime) * float64(time.Second)))

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	cam, ok := g.World.MainCamera()
	if !ok {
		return
	}

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(cam)
	g.World.Draw()
	g.Gizmos.Draw(g.World.Scene)
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}
