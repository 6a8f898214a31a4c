package systems

import (
	"log"

	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/gamemath"
	"github.com/automoto/doomerang-abilities/messages"
	"github.com/automoto/doomerang-abilities/systems/factory"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OnStartGrapple fires a hook from the actor toward the intent's target and
// puts the actor in a grapple flow.
func OnStartGrapple(w donburi.World, intent messages.StartGrappleIntent) {
	entry, ok := actor(w, intent.Actor)
	if !ok {
		log.Printf("[grapple] Warning: grapple requested for missing actor %v", intent.Actor)
		return
	}
	if !entry.HasComponent(tags.CanGrapple) {
		log.Printf("[grapple] Warning: actor %v cannot grapple", intent.Actor)
		return
	}
	if entry.HasComponent(tags.Grappling) {
		log.Printf("[grapple] Warning: actor %v is already grappling, ignoring", intent.Actor)
		return
	}
	from, ok := components.Adapter(w).Position(intent.Actor)
	if !ok {
		log.Printf("[grapple] Warning: actor %v has no body to grapple from", intent.Actor)
		return
	}

	hook, err := factory.CreateHook(w, intent.Actor, from, intent.Target)
	if err != nil {
		log.Printf("[grapple] Warning: Could not spawn hook: %v", err)
		return
	}

	entry.AddComponent(tags.Grappling)
	setComponent(entry, components.Grapple, components.GrappleData{Hook: hook.Entity()})
}

type attachment struct {
	hook   *donburi.Entry
	kind   components.AttachmentKind
	target donburi.Entity
}

// UpdateHookAttachment resolves every unattached hook that is touching
// something other than its shooter. Enemies win over world contacts; among
// several candidates the lowest entity is chosen.
func UpdateHookAttachment(ecs *ecs.ECS) {
	w := ecs.World
	adapter := components.Adapter(w)
	var resolved []attachment

	components.Hook.Each(w, func(e *donburi.Entry) {
		hook := components.Hook.Get(e)
		if hook.Attachment != components.Unattached {
			return
		}
		if a, ok := resolveContact(w, hook.Shooter, adapter.Touching(e.Entity())); ok {
			a.hook = e
			resolved = append(resolved, a)
		}
	})

	for _, a := range resolved {
		hook := components.Hook.Get(a.hook)
		if !hook.Attach(a.kind, a.target) {
			continue
		}
		if a.kind == components.AttachedWorld {
			adapter.SetVelocity(a.hook.Entity(), gamemath.Vec(0, 0))
		}
		evt := messages.GrappleAttachedEvent{Hook: a.hook.Entity(), Shooter: hook.Shooter}
		if a.kind == components.AttachedEnemy {
			evt.Enemy = a.target
			evt.HitEnemy = true
		}
		messages.GrappleAttached.Publish(w, evt)
	}
}

// resolveContact picks the attachment for a hook touching the given actors,
// which arrive sorted by entity.
func resolveContact(w donburi.World, shooter donburi.Entity, touching []donburi.Entity) (attachment, bool) {
	var world attachment
	found := false
	for _, other := range touching {
		if other == shooter {
			continue
		}
		entry, ok := actor(w, other)
		if !ok || entry.HasComponent(tags.Hook) || entry.HasComponent(tags.Projectile) {
			continue
		}
		if entry.HasComponent(tags.Enemy) {
			return attachment{kind: components.AttachedEnemy, target: other}, true
		}
		if !found {
			world = attachment{kind: components.AttachedWorld, target: other}
			found = true
		}
	}
	return world, found
}

// OnGrappleAttached turns a resolved hook into a swing or pull rope on its
// shooter. The attachment is dropped when the shooter is gone.
func OnGrappleAttached(w donburi.World, evt messages.GrappleAttachedEvent) {
	adapter := components.Adapter(w)
	entry, ok := actor(w, evt.Shooter)
	if !ok || !entry.HasComponent(components.Grapple) {
		return
	}
	shooterPos, ok := adapter.Position(evt.Shooter)
	if !ok {
		return
	}
	grapple := components.Grapple.Get(entry)
	if grapple.Hook != evt.Hook || grapple.Rope != nil {
		return
	}
	hookPos, ok := adapter.Position(evt.Hook)
	if !ok {
		log.Printf("[grapple] Warning: hook %v vanished before attaching", evt.Hook)
		return
	}

	length := gamemath.Distance(shooterPos, hookPos)
	if evt.HitEnemy {
		grapple.Rope = &components.PullRope{Target: evt.Enemy, Length: length}
		return
	}
	grapple.Rope = &components.SwingRope{Anchor: hookPos, RestLength: length}
}

// UpdateSwing applies the rope spring and its damping to every swinging
// shooter.
func UpdateSwing(ecs *ecs.ECS) {
	w := ecs.World
	adapter := components.Adapter(w)
	tuning := components.TuningOf(w).Grapple
	dt := components.Clock.Get(components.Clock.MustFirst(w)).Delta

	components.Grapple.Each(w, func(e *donburi.Entry) {
		swing := components.Grapple.Get(e).Swing()
		if swing == nil {
			return
		}
		pos, ok := adapter.Position(e.Entity())
		if !ok {
			return
		}

		spring, d := gamemath.SpringImpulse(pos, swing.Anchor, swing.RestLength, tuning.SpringForce, dt)
		adapter.ApplyImpulse(e.Entity(), spring)

		if swing.HasPrev {
			damping := gamemath.DampingImpulse(pos, swing.Anchor, d-swing.PrevDistance, tuning.Damping, dt)
			adapter.ApplyImpulse(e.Entity(), damping)
		}
		swing.PrevDistance = d
		swing.HasPrev = true
	})
}

// UpdateHookFollow keeps enemy-attached hooks on their target.
func UpdateHookFollow(ecs *ecs.ECS) {
	adapter := components.Adapter(ecs.World)

	components.Hook.Each(ecs.World, func(e *donburi.Entry) {
		hook := components.Hook.Get(e)
		if hook.Attachment != components.AttachedEnemy || hook.TargetLost {
			return
		}
		pos, ok := adapter.Position(hook.Target)
		if !ok {
			log.Printf("[grapple] Warning: hook target %v is gone, hook stays put", hook.Target)
			hook.TargetLost = true
			return
		}
		adapter.SetPosition(e.Entity(), pos)
		if vel, ok := adapter.Velocity(hook.Target); ok {
			adapter.SetVelocity(e.Entity(), vel)
		}
	})
}

func OnEndGrapple(w donburi.World, intent messages.EndGrappleIntent) {
	EndGrapple(w, intent.Actor)
}

// EndGrapple releases the actor's grapple. A pull yanks the struck enemy
// toward the shooter; a swing just lets go. Releasing before the hook lands
// cancels the throw.
func EndGrapple(w donburi.World, e donburi.Entity) {
	entry, ok := actor(w, e)
	if !ok || !entry.HasComponent(components.Grapple) {
		return
	}
	grapple := components.Grapple.Get(entry)

	if pull := grapple.Pull(); pull != nil {
		yank(w, e, pull.Target)
	}

	factory.Despawn(w, grapple.Hook)
	entry.RemoveComponent(components.Grapple)
	if entry.HasComponent(tags.Grappling) {
		entry.RemoveComponent(tags.Grappling)
	}
}

// yank applies the pull-release impulse to target, directed at the shooter.
func yank(w donburi.World, shooter, target donburi.Entity) {
	adapter := components.Adapter(w)
	targetPos, ok := adapter.Position(target)
	if !ok {
		log.Printf("[grapple] Warning: pull target %v has no body, skipping release impulse", target)
		return
	}
	shooterPos, ok := adapter.Position(shooter)
	if !ok {
		log.Printf("[grapple] Warning: shooter %v has no body, skipping release impulse", shooter)
		return
	}
	dir, ok := gamemath.Normalize(gamemath.Sub(shooterPos, targetPos))
	if !ok {
		return
	}
	adapter.ApplyImpulse(target, gamemath.Scale(dir, components.TuningOf(w).Grapple.PullImpulse))
}
