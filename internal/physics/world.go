package physics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"pinball/internal/components"
	"pinball/internal/config"
	"pinball/internal/engine"
	"pinball/internal/logger"
)

// restingSpeed is the bounce speed below which a floor contact stops the body.
const restingSpeed = 0.05

// contactSlop is how far apart two shapes may be and still count as touching.
const contactSlop = 1e-3

// World is a small rigid-body step: impulses, gravity, damping, integration,
// a ground plane and sphere-vs-box contacts. Controllers only write poses,
// velocities and queued impulses; World consumes them once per frame.
type World struct {
	Gravity     rl.Vector3
	FloorY      float32
	Restitution float32
	MaxStep     float32
	Substeps    int
	Dynamics    []*engine.GameObject // rigidbodies that integrate
	Statics     []*engine.GameObject // colliders without a rigidbody (walls)

	log *zap.Logger
}

func NewWorld(cfg *config.Config, log *zap.Logger) *World {
	return &World{
		Gravity:     rl.Vector3{Y: -cfg.Physics.Gravity},
		FloorY:      cfg.Physics.FloorY,
		Restitution: cfg.Physics.Restitution,
		MaxStep:     cfg.Physics.MaxStepSeconds,
		Substeps:    cfg.Physics.Substeps,
		Dynamics:    make([]*engine.GameObject, 0),
		Statics:     make([]*engine.GameObject, 0),
		log:         logger.OrNop(log).Named("physics"),
	}
}

func (w *World) AddObject(g *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](g)
	if rb == nil || rb.Type == components.BodyStatic {
		w.Statics = append(w.Statics, g)
	} else {
		w.Dynamics = append(w.Dynamics, g)
	}
	w.log.Debug("body added", zap.String("name", g.Name), zap.Bool("dynamic", rb != nil && rb.Type == components.BodyDynamic))
}

func (w *World) RemoveObject(g *engine.GameObject) {
	for i, obj := range w.Dynamics {
		if obj == g {
			w.Dynamics = append(w.Dynamics[:i], w.Dynamics[i+1:]...)
			return
		}
	}
	for i, obj := range w.Statics {
		if obj == g {
			w.Statics = append(w.Statics[:i], w.Statics[i+1:]...)
			return
		}
	}
}

// Step advances the simulation by one frame. Long frames are clamped to
// MaxStep and the frame is split into Substeps so the ball cannot pass
// through the thin playfield in one step.
func (w *World) Step(deltaTime float32) {
	if deltaTime <= 0 {
		return
	}
	if w.MaxStep > 0 && deltaTime > w.MaxStep {
		deltaTime = w.MaxStep
	}
	n := w.Substeps
	if n < 1 {
		n = 1
	}
	h := deltaTime / float32(n)
	for i := 0; i < n; i++ {
		w.substep(h)
	}
}

func (w *World) substep(deltaTime float32) {

	// 1. Impulses
	for _, obj := range w.Dynamics {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || !obj.Active {
			continue
		}
		if j, ok := rb.TakeImpulses(); ok {
			rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(j, 1/rb.Mass))
			rb.Wake()
			w.log.Debug("impulse applied", zap.String("name", obj.Name), zap.Float32("dvz", j.Z/rb.Mass))
		}
	}

	// 2. Sleeping spheres whose support moved
	for _, obj := range w.Dynamics {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || !rb.IsSleeping || !obj.Active {
			continue
		}
		if w.supportMoving(obj) {
			rb.Wake()
			w.log.Debug("woken by moving support", zap.String("name", obj.Name))
		}
	}

	// 3. Forces and integration
	for _, obj := range w.Dynamics {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || rb.IsSleeping || !obj.Active {
			continue
		}

		if rb.UseGravity {
			rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(w.Gravity, deltaTime))
		}
		rb.Velocity = rl.Vector3Scale(rb.Velocity, 1/(1+rb.LinearDamping*deltaTime))
		rb.AngularVelocity = rl.Vector3Scale(rb.AngularVelocity, 1/(1+rb.AngularDamping*deltaTime))

		obj.Transform.Translate(rl.Vector3Scale(rb.Velocity, deltaTime))
		integrateRotation(&obj.Transform, rb.AngularVelocity, deltaTime)
	}

	// 4. Contacts
	for _, obj := range w.Dynamics {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || rb.IsSleeping || !obj.Active {
			continue
		}
		if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
			for _, other := range w.boxes(obj) {
				w.resolveSphereVsBox(obj, other, rb, sphere)
			}
		}
		w.resolveFloor(obj, rb, deltaTime)
		rb.TrySleep(deltaTime)
	}
}

// integrateRotation rotates t by the angular velocity over dt and renormalizes.
func integrateRotation(t *engine.Transform, omega rl.Vector3, dt float32) {
	speed := rl.Vector3Length(omega)
	if speed < 1e-7 {
		return
	}
	axis := rl.Vector3Scale(omega, 1/speed)
	t.Rotate(engine.AxisAngle(axis, speed*dt))
}

// bodyOf returns the rigidbody that moves g: its own or the nearest ancestor's.
func bodyOf(g *engine.GameObject) *components.Rigidbody {
	for ; g != nil; g = g.Parent {
		if rb := engine.GetComponent[*components.Rigidbody](g); rb != nil {
			return rb
		}
	}
	return nil
}

// supportMoving reports whether a sphere touches a box carried by an awake,
// moving body.
func (w *World) supportMoving(obj *engine.GameObject) bool {
	sphere := engine.GetComponent[*components.SphereCollider](obj)
	if sphere == nil {
		return false
	}
	center := sphere.GetCenter()
	for _, other := range w.boxes(obj) {
		owner := bodyOf(other)
		if owner == nil || owner.IsSleeping || rl.Vector3Length(owner.Velocity) < components.SleepVelocityThreshold {
			continue
		}
		box := engine.GetComponent[*components.BoxCollider](other)
		obb := NewOBB(other.WorldPosition(), rl.Vector3Multiply(box.Size, other.WorldScale()), other.WorldRotation())
		if rl.Vector3Distance(center, ClosestPointOnOBB(obb, center)) <= sphere.Radius+contactSlop {
			return true
		}
	}
	return false
}

func (w *World) boxes(exclude *engine.GameObject) []*engine.GameObject {
	var result []*engine.GameObject
	for _, list := range [][]*engine.GameObject{w.Dynamics, w.Statics} {
		for _, g := range list {
			if g == exclude || !g.Active {
				continue
			}
			if engine.GetComponent[*components.BoxCollider](g) != nil {
				result = append(result, g)
			}
		}
	}
	return result
}

func lowestPoint(obj *engine.GameObject) float32 {
	if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
		return sphere.LowestPoint()
	}
	if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
		return box.LowestPoint()
	}
	return obj.WorldPosition().Y
}

// resolveFloor pushes obj above the ground plane and bounces or rests it.
func (w *World) resolveFloor(obj *engine.GameObject, rb *components.Rigidbody, deltaTime float32) {
	penetration := w.FloorY - lowestPoint(obj)
	if penetration <= 0 {
		return
	}
	obj.Transform.Position.Y += penetration

	if rb.Velocity.Y < 0 {
		rb.Velocity.Y = -rb.Velocity.Y * w.Restitution
		if rb.Velocity.Y < restingSpeed {
			rb.Velocity.Y = 0
		}
	}

	// Ground friction on the tangential motion.
	keep := 1 - clampf(rb.Friction*10*deltaTime, 0, 1)
	rb.Velocity.X *= keep
	rb.Velocity.Z *= keep
	rb.AngularVelocity = rl.Vector3Scale(rb.AngularVelocity, keep)
}

// resolveSphereVsBox separates a sphere from a box and removes the approaching
// velocity. Boxes without a dynamic rigidbody (walls attached to the table)
// are treated as immovable and move with their parent's body.
func (w *World) resolveSphereVsBox(sphereObj, boxObj *engine.GameObject, rbSphere *components.Rigidbody, sphere *components.SphereCollider) {
	box := engine.GetComponent[*components.BoxCollider](boxObj)
	center := sphere.GetCenter()
	obb := NewOBB(boxObj.WorldPosition(), rl.Vector3Multiply(box.Size, boxObj.WorldScale()), boxObj.WorldRotation())

	closest := ClosestPointOnOBB(obb, center)
	diff := rl.Vector3Subtract(center, closest)
	dist := rl.Vector3Length(diff)
	if dist >= sphere.Radius || dist < 1e-6 {
		return
	}

	normal := rl.Vector3Scale(diff, 1/dist)
	penetration := sphere.Radius - dist

	rbBox := engine.GetComponent[*components.Rigidbody](boxObj)
	invSphere := 1 / rbSphere.Mass
	invBox := float32(0)
	var boxVel rl.Vector3
	if rbBox != nil && rbBox.Type == components.BodyDynamic && !rbBox.IsSleeping {
		invBox = 1 / rbBox.Mass
		boxVel = rbBox.Velocity
	} else if owner := bodyOf(boxObj.Parent); owner != nil && !owner.IsSleeping {
		// Walls are immovable in the contact but carried by the table.
		boxVel = owner.Velocity
	}
	total := invSphere + invBox

	sphereObj.Transform.Translate(rl.Vector3Scale(normal, penetration*invSphere/total))
	if invBox > 0 {
		boxObj.Transform.Translate(rl.Vector3Scale(normal, -penetration*invBox/total))
	}

	relVel := rl.Vector3Subtract(rbSphere.Velocity, boxVel)
	velAlongNormal := rl.Vector3DotProduct(relVel, normal)
	if velAlongNormal > 0 {
		return
	}

	e := (rbSphere.Restitution + w.Restitution) / 2
	j := -(1 + e) * velAlongNormal / total
	impulse := rl.Vector3Scale(normal, j)

	rbSphere.Velocity = rl.Vector3Add(rbSphere.Velocity, rl.Vector3Scale(impulse, invSphere))
	if invBox > 0 {
		rbBox.Velocity = rl.Vector3Subtract(rbBox.Velocity, rl.Vector3Scale(impulse, invBox))
	}
}
