package systems

import (
	"log"
	"math"

	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/gamemath"
	"github.com/automoto/doomerang-abilities/messages"
	"github.com/automoto/doomerang-abilities/systems/factory"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/yohamta/donburi"
)

// OnTouchStarted runs hit detection for any projectile in the pair.
func OnTouchStarted(w donburi.World, evt messages.TouchStartedEvent) {
	checkProjectileHit(w, evt.A, evt.B)
	checkProjectileHit(w, evt.B, evt.A)
}

// OnTouchEnded consumes exclusions as soon as the excluded actor separates,
// even if it touches again before the next decay pass.
func OnTouchEnded(w donburi.World, evt messages.TouchEndedEvent) {
	releaseExclusion(w, evt.A, evt.B)
	releaseExclusion(w, evt.B, evt.A)
}

func releaseExclusion(w donburi.World, projectile, other donburi.Entity) {
	entry, ok := actor(w, projectile)
	if !ok || !entry.HasComponent(components.Exclusion) {
		return
	}
	exclusion := components.Exclusion.Get(entry)
	exclusion.Retain(func(a donburi.Entity) bool { return a != other })
	if len(exclusion.Actors) == 0 {
		entry.RemoveComponent(components.Exclusion)
	}
}

func checkProjectileHit(w donburi.World, projectile, other donburi.Entity) {
	entry, ok := actor(w, projectile)
	if !ok || !entry.HasComponent(components.Projectile) {
		return
	}
	p := components.Projectile.Get(entry)
	if p.Terminal {
		return
	}
	target, ok := actor(w, other)
	if !ok {
		return
	}

	if target.HasComponent(tags.Wall) {
		p.Terminal = true
		factory.Despawn(w, projectile)
		return
	}
	if !target.HasComponent(tags.CanBeHit) {
		return
	}
	if entry.HasComponent(components.Exclusion) && components.Exclusion.Get(entry).Contains(other) {
		return
	}

	p.Terminal = true
	vel, _ := components.Adapter(w).Velocity(projectile)
	messages.ProjectileHit.Publish(w, messages.ProjectileHitEvent{
		Projectile: projectile,
		Target:     other,
		Damage:     p.Damage,
		Knockback:  gamemath.KnockbackImpulse(vel, p.Knockback),
	})
}

// OnProjectileHit applies knockback and damage to the target and removes the
// projectile.
func OnProjectileHit(w donburi.World, hit messages.ProjectileHitEvent) {
	if !components.Adapter(w).ApplyImpulse(hit.Target, hit.Knockback) {
		log.Printf("[combat] Warning: hit target %v has no body, skipping knockback", hit.Target)
	}
	if target, ok := actor(w, hit.Target); ok && target.HasComponent(components.Health) {
		health := components.Health.Get(target)
		health.Current = math.Max(0, health.Current-hit.Damage)
	}
	factory.Despawn(w, hit.Projectile)
}
