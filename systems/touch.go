package systems

import (
	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/messages"
	"github.com/automoto/doomerang-abilities/physics"
	"github.com/yohamta/donburi/ecs"
)

// DrainTouches hands the touch transitions of the last physics step to their
// handlers. Ends are processed before starts so a separation and a new
// contact in one batch leave the exclusion already consumed.
func DrainTouches(ecs *ecs.ECS) {
	w := ecs.World
	for _, t := range components.Adapter(w).DrainTouchEvents() {
		switch t.Kind {
		case physics.TouchStarted:
			messages.TouchStarted.Publish(w, messages.TouchStartedEvent{A: t.A, B: t.B})
		case physics.TouchEnded:
			messages.TouchEnded.Publish(w, messages.TouchEndedEvent{A: t.A, B: t.B})
		}
	}
	messages.TouchEnded.ProcessEvents(w)
	messages.TouchStarted.ProcessEvents(w)
}

// ProcessNotifications delivers the attachments and hits raised this tick.
func ProcessNotifications(ecs *ecs.ECS) {
	messages.GrappleAttached.ProcessEvents(ecs.World)
	messages.ProjectileHit.ProcessEvents(ecs.World)
}
