package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"pinball/internal/camera"
	"pinball/internal/components"
	"pinball/internal/config"
	"pinball/internal/engine"
	"pinball/internal/logger"
	"pinball/internal/physics"
	"pinball/internal/table"
)

const (
	FloorTag = "floor"
	LightTag = "light"
)

// World owns the scene registry and the physics step for one table.
type World struct {
	Scene   *engine.Scene
	Physics *physics.World

	Camera *engine.GameObject
	Table  *engine.GameObject
	Ball   *engine.GameObject

	cfg *config.Config
	log *zap.Logger
}

// New builds the table, ball, floor, light and player camera.
func New(cfg *config.Config, log *zap.Logger) *World {
	log = logger.OrNop(log).Named("world")
	w := &World{
		Scene:   engine.NewScene("Main"),
		Physics: physics.NewWorld(cfg, log),
		cfg:     cfg,
		log:     log,
	}

	w.createFloor()
	w.createTable()
	w.createBall()
	w.createLight()
	w.createCamera()

	w.Scene.Start()
	log.Info("scene ready", zap.Int("objects", len(w.Scene.GameObjects)))
	return w
}

func (w *World) createFloor() {
	size := w.cfg.Physics.FloorSize
	floor := engine.NewGameObject("Floor", FloorTag)
	floor.Transform.Position = rl.Vector3{
		X: w.cfg.Table.PlayfieldWidth / 2,
		Y: w.cfg.Physics.FloorY - 0.05,
		Z: w.cfg.Table.PlayfieldLength / 2,
	}
	floor.AddComponent(components.NewMeshRenderer(components.MeshCube, rl.DarkGray, rl.Vector3{X: size, Y: 0.1, Z: size}))
	w.Scene.AddGameObject(floor)
}

// createTable spawns the tilted playfield with its back and front walls as children.
func (w *World) createTable() {
	t := w.cfg.Table
	size := rl.Vector3{X: t.PlayfieldWidth, Y: t.Thickness, Z: t.PlayfieldLength}

	playfield := engine.NewGameObject("Playfield", table.TableTag)
	playfield.Transform.Position = w.cfg.TableStartPosition()
	playfield.Transform.Rotation = engine.AxisAngle(engine.WorldRight, w.cfg.TiltRadians())
	playfield.AddComponent(components.NewMeshRenderer(components.MeshCube, rl.NewColor(255, 124, 144, 255), size))
	playfield.AddComponent(components.NewBoxCollider(size))

	rb := components.NewRigidbody(t.Density * size.X * size.Y * size.Z)
	rb.LinearDamping = w.cfg.Physics.TableDamping
	playfield.AddComponent(rb)

	backSize := rl.Vector3{X: t.PlayfieldWidth, Y: t.BackWallHeight, Z: t.Thickness}
	back := engine.NewGameObject("BackWall")
	back.Transform.Position = rl.Vector3{Z: -t.PlayfieldLength/2 - t.Thickness/2}
	back.AddComponent(components.NewMeshRenderer(components.MeshCube, rl.White, backSize))
	back.AddComponent(components.NewBoxCollider(backSize))
	playfield.AddChild(back)

	// Front (player side, lower)
	frontSize := rl.Vector3{X: t.PlayfieldWidth, Y: t.WallHeight, Z: t.Thickness}
	front := engine.NewGameObject("FrontWall")
	front.Transform.Position = rl.Vector3{Z: t.PlayfieldLength/2 + t.Thickness/2}
	front.AddComponent(components.NewMeshRenderer(components.MeshCube, rl.White, frontSize))
	front.AddComponent(components.NewBoxCollider(frontSize))
	playfield.AddChild(front)

	w.Scene.AddGameObject(playfield)
	w.Physics.AddObject(playfield)
	w.Physics.AddObject(back)
	w.Physics.AddObject(front)
	w.Table = playfield
}

func (w *World) createBall() {
	b := w.cfg.Ball
	ball := engine.NewGameObject("Pinball", table.BallTag)
	ball.Transform.Position = w.cfg.BallStartPosition()
	ball.AddComponent(components.NewMeshRenderer(components.MeshSphere, rl.LightGray, rl.Vector3{X: b.Radius}))
	ball.AddComponent(components.NewSphereCollider(b.Radius))

	rb := components.NewRigidbody(b.Mass)
	rb.AngularDamping = w.cfg.Physics.BallDamping
	ball.AddComponent(rb)

	w.Scene.AddGameObject(ball)
	w.Physics.AddObject(ball)
	w.Ball = ball
}

func (w *World) createLight() {
	light := engine.NewGameObject("PointLight", LightTag)
	light.Transform.Position = rl.Vector3{X: w.cfg.Table.PlayfieldWidth / 2, Y: 1.5, Z: 0.25}
	light.AddComponent(components.NewPointLight())
	w.Scene.AddGameObject(light)
}

// createCamera places the player at the front of the table looking at its center.
func (w *World) createCamera() {
	cam := engine.NewGameObject("PlayerCamera", camera.Tag)
	cam.Transform.Position = w.cfg.PlayerHeadPosition()
	cam.Transform.LookAt(w.cfg.PlayfieldCenter(), engine.WorldUp)
	cam.AddComponent(components.NewCamera(w.cfg.Camera.FOV))
	w.Scene.AddGameObject(cam)
	w.Camera = cam
}

// Update advances physics and per-component behavior by one frame.
func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
	w.Physics.Step(deltaTime)
}
