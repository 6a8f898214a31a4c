package systems

import (
	"github.com/automoto/doomerang-abilities/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Subscribe wires every controller handler into w. Handlers run when their
// queue is processed by the pipeline, never at publish time.
func Subscribe(w donburi.World) {
	messages.TouchEnded.Subscribe(w, OnTouchEnded)
	messages.TouchStarted.Subscribe(w, OnTouchStarted)

	messages.GrappleAttached.Subscribe(w, OnGrappleAttached)
	messages.ProjectileHit.Subscribe(w, OnProjectileHit)

	messages.StartDash.Subscribe(w, OnStartDash)
	messages.EndDash.Subscribe(w, OnEndDash)
	messages.StartGrapple.Subscribe(w, OnStartGrapple)
	messages.EndGrapple.Subscribe(w, OnEndGrapple)
	messages.FireProjectile.Subscribe(w, OnFireProjectile)
	messages.SpawnProjectile.Subscribe(w, OnSpawnProjectile)
}

// ProcessIntents applies the intents raised since the previous tick. It runs
// after the continuous controllers so new dashes and projectiles meet the
// physics step before anything inspects them.
func ProcessIntents(ecs *ecs.ECS) {
	w := ecs.World
	messages.StartDash.ProcessEvents(w)
	messages.EndDash.ProcessEvents(w)
	messages.StartGrapple.ProcessEvents(w)
	messages.EndGrapple.ProcessEvents(w)
	messages.FireProjectile.ProcessEvents(w)
	messages.SpawnProjectile.ProcessEvents(w)
}
