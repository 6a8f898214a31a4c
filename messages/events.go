package messages

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	math2 "github.com/yohamta/donburi/features/math"
)

// Intents raised by the input/targeting layer. Each carries resolved
// world-space data.

// StartDashIntent starts a dash. StartTime is the simulation time the dash
// counts from.
type StartDashIntent struct {
	Actor     donburi.Entity
	Direction math2.Vec2 // unit vector
	Speed     float64
	Duration  float64
	StartTime float64
}

// EndDashIntent ends a dash early.
type EndDashIntent struct {
	Actor donburi.Entity
}

// StartGrappleIntent fires the grapple hook toward Target.
type StartGrappleIntent struct {
	Actor  donburi.Entity
	Target math2.Vec2
}

// EndGrappleIntent is raised when the grapple input is released.
type EndGrappleIntent struct {
	Actor donburi.Entity
}

// FireProjectileIntent fires a projectile from Spawner along Direction using
// the stats of Weapon.
type FireProjectileIntent struct {
	Spawner   donburi.Entity
	Direction math2.Vec2
	Weapon    string
}

// SpawnProjectileIntent spawns a projectile with explicit stats. Exclude
// lists actors it ignores until they separate from it.
type SpawnProjectileIntent struct {
	Position  math2.Vec2
	Direction math2.Vec2 // unit vector
	Speed     float64
	Damage    float64
	Knockback float64
	Exclude   []donburi.Entity
}

// Touch transitions drained from the physics adapter.

type TouchStartedEvent struct {
	A, B donburi.Entity
}

type TouchEndedEvent struct {
	A, B donburi.Entity
}

// Notifications raised by the controllers.

// GrappleAttachedEvent is raised once when a hook resolves.
type GrappleAttachedEvent struct {
	Hook    donburi.Entity
	Shooter donburi.Entity
	// Enemy is the struck hostile actor. It is the zero entity when the hook
	// anchored to the world.
	Enemy    donburi.Entity
	HitEnemy bool
}

// ProjectileHitEvent is raised once per projectile when it confirms a hit.
type ProjectileHitEvent struct {
	Projectile donburi.Entity
	Target     donburi.Entity
	Damage     float64
	Knockback  math2.Vec2
}

var (
	StartDash      = events.NewEventType[StartDashIntent]()
	EndDash        = events.NewEventType[EndDashIntent]()
	StartGrapple   = events.NewEventType[StartGrappleIntent]()
	EndGrapple     = events.NewEventType[EndGrappleIntent]()
	FireProjectile = events.NewEventType[FireProjectileIntent]()

	SpawnProjectile = events.NewEventType[SpawnProjectileIntent]()

	TouchStarted = events.NewEventType[TouchStartedEvent]()
	TouchEnded   = events.NewEventType[TouchEndedEvent]()

	GrappleAttached = events.NewEventType[GrappleAttachedEvent]()
	ProjectileHit   = events.NewEventType[ProjectileHitEvent]()
)
