package systems

import (
	"log"

	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/gamemath"
	"github.com/automoto/doomerang-abilities/messages"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// OnStartDash overrides the actor's velocity for the dash duration and
// suspends its gravity.
func OnStartDash(w donburi.World, intent messages.StartDashIntent) {
	entry, ok := actor(w, intent.Actor)
	if !ok {
		log.Printf("[dash] Warning: dash requested for missing actor %v", intent.Actor)
		return
	}
	if !entry.HasComponent(tags.CanDash) {
		log.Printf("[dash] Warning: actor %v cannot dash", intent.Actor)
		return
	}
	adapter := components.Adapter(w)
	if !adapter.Has(intent.Actor) {
		log.Printf("[dash] Warning: actor %v has no body to dash", intent.Actor)
		return
	}

	setGravityScale(w, entry, 0)
	adapter.SetVelocity(intent.Actor, gamemath.Scale(intent.Direction, intent.Speed))
	setComponent(entry, components.Dash, components.DashData{
		Direction: intent.Direction,
		Speed:     intent.Speed,
		Duration:  intent.Duration,
		StartTime: intent.StartTime,
	})
}

func OnEndDash(w donburi.World, intent messages.EndDashIntent) {
	EndDash(w, intent.Actor)
}

// EndDash stops a dashing actor and restores its gravity. Actors that are not
// dashing are left alone.
func EndDash(w donburi.World, e donburi.Entity) {
	entry, ok := actor(w, e)
	if !ok || !entry.HasComponent(components.Dash) {
		return
	}
	components.Adapter(w).SetVelocity(e, gamemath.Vec(0, 0))
	setGravityScale(w, entry, 1)
	entry.RemoveComponent(components.Dash)
}

// UpdateDashCollisions ends dashes that ran into something. The first tick
// after a dash starts is skipped so contacts from before the dash don't
// count.
func UpdateDashCollisions(ecs *ecs.ECS) {
	adapter := components.Adapter(ecs.World)
	var ended []donburi.Entity

	components.Dash.Each(ecs.World, func(e *donburi.Entry) {
		dash := components.Dash.Get(e)
		if !dash.StartedMoving {
			dash.StartedMoving = true
			return
		}
		if len(adapter.Touching(e.Entity())) > 0 {
			ended = append(ended, e.Entity())
		}
	})

	for _, e := range ended {
		EndDash(ecs.World, e)
	}
}

// UpdateDashTimeouts ends dashes whose duration has elapsed.
func UpdateDashTimeouts(ecs *ecs.ECS) {
	now := components.Now(ecs.World)
	var ended []donburi.Entity

	components.Dash.Each(ecs.World, func(e *donburi.Entry) {
		dash := components.Dash.Get(e)
		if now-dash.StartTime >= dash.Duration {
			ended = append(ended, e.Entity())
		}
	})

	for _, e := range ended {
		EndDash(ecs.World, e)
	}
}
