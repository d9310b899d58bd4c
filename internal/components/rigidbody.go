package components

import (
	"pinball/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Sleep thresholds
const (
	SleepVelocityThreshold = 0.01 // m/s - below this, object might sleep
	SleepAngularThreshold  = 0.05 // rad/s - below this, object might sleep
	SleepTimeThreshold     = 0.5  // seconds of low velocity before sleeping
)

type BodyType int

const (
	BodyDynamic BodyType = iota
	BodyStatic
)

// Rigidbody is the physics state of a GameObject. Pose lives in the
// GameObject's Transform; velocities and queued impulses live here.
type Rigidbody struct {
	engine.BaseComponent
	Type            BodyType
	Velocity        rl.Vector3
	AngularVelocity rl.Vector3 // radians per second on each axis
	Mass            float32
	LinearDamping   float32 // per second
	AngularDamping  float32 // per second
	Restitution     float32 // 0 = no bounce, 1 = perfect bounce
	Friction        float32
	UseGravity      bool

	// Sleep state - sleeping objects skip integration
	IsSleeping bool
	sleepTimer float32 // time spent below velocity threshold
	CanSleep   bool    // whether this object can sleep (default true)

	impulses []rl.Vector3
}

func NewRigidbody(mass float32) *Rigidbody {
	return &Rigidbody{
		Type:       BodyDynamic,
		Mass:       mass,
		Friction:   0.3,
		UseGravity: true,
		CanSleep:   true,
	}
}

// ApplyImpulse queues an impulse through the center of mass. It is consumed by
// the next physics step rather than changing Velocity directly.
func (r *Rigidbody) ApplyImpulse(impulse rl.Vector3) {
	r.impulses = append(r.impulses, impulse)
}

// PendingImpulses returns the impulses queued since the last step.
func (r *Rigidbody) PendingImpulses() []rl.Vector3 {
	return r.impulses
}

// TakeImpulses drains the queue and returns the summed impulse.
func (r *Rigidbody) TakeImpulses() (rl.Vector3, bool) {
	if len(r.impulses) == 0 {
		return rl.Vector3{}, false
	}
	var total rl.Vector3
	for _, j := range r.impulses {
		total = rl.Vector3Add(total, j)
	}
	r.impulses = r.impulses[:0]
	return total, true
}

// Stop zeroes both velocities.
func (r *Rigidbody) Stop() {
	r.Velocity = rl.Vector3{}
	r.AngularVelocity = rl.Vector3{}
}

// Wake forces the rigidbody out of sleep state
func (r *Rigidbody) Wake() {
	r.IsSleeping = false
	r.sleepTimer = 0
}

// TrySleep checks if the rigidbody should go to sleep based on velocity
func (r *Rigidbody) TrySleep(deltaTime float32) {
	if !r.CanSleep || r.IsSleeping {
		return
	}

	speed := rl.Vector3Length(r.Velocity)
	angSpeed := rl.Vector3Length(r.AngularVelocity)

	if speed < SleepVelocityThreshold && angSpeed < SleepAngularThreshold {
		r.sleepTimer += deltaTime
		if r.sleepTimer >= SleepTimeThreshold {
			r.IsSleeping = true
			r.Stop()
		}
	} else {
		r.sleepTimer = 0
	}
}
