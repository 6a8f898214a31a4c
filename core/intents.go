package core

import (
	"github.com/automoto/doomerang-abilities/messages"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// Intents are queued and applied during the next Update.

// StartDash dashes actor along direction, counting the duration from the
// current simulation time.
func (s *Simulation) StartDash(actor donburi.Entity, direction math2.Vec2, speed, duration float64) {
	s.StartDashAt(actor, direction, speed, duration, s.Now())
}

// StartDashAt is StartDash with an explicit start time.
func (s *Simulation) StartDashAt(actor donburi.Entity, direction math2.Vec2, speed, duration, start float64) {
	messages.StartDash.Publish(s.world, messages.StartDashIntent{
		Actor:     actor,
		Direction: direction,
		Speed:     speed,
		Duration:  duration,
		StartTime: start,
	})
}

// Dash dashes actor along direction with the tuned speed and duration.
func (s *Simulation) Dash(actor donburi.Entity, direction math2.Vec2) {
	s.StartDash(actor, direction, s.tuning.Dash.Speed, s.tuning.Dash.Duration)
}

func (s *Simulation) EndDash(actor donburi.Entity) {
	messages.EndDash.Publish(s.world, messages.EndDashIntent{Actor: actor})
}

func (s *Simulation) StartGrapple(actor donburi.Entity, target math2.Vec2) {
	messages.StartGrapple.Publish(s.world, messages.StartGrappleIntent{Actor: actor, Target: target})
}

func (s *Simulation) EndGrapple(actor donburi.Entity) {
	messages.EndGrapple.Publish(s.world, messages.EndGrappleIntent{Actor: actor})
}

// FireProjectile fires weapon from spawner along direction.
func (s *Simulation) FireProjectile(spawner donburi.Entity, direction math2.Vec2, weapon string) {
	messages.FireProjectile.Publish(s.world, messages.FireProjectileIntent{
		Spawner:   spawner,
		Direction: direction,
		Weapon:    weapon,
	})
}

// SpawnProjectile spawns a projectile with explicit stats that ignores the
// excluded actors until they separate from it.
func (s *Simulation) SpawnProjectile(pos, direction math2.Vec2, speed, damage, knockback float64, exclude ...donburi.Entity) {
	messages.SpawnProjectile.Publish(s.world, messages.SpawnProjectileIntent{
		Position:  pos,
		Direction: direction,
		Speed:     speed,
		Damage:    damage,
		Knockback: knockback,
		Exclude:   exclude,
	})
}
