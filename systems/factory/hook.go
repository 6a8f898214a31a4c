package factory

import (
	"fmt"

	"github.com/automoto/doomerang-abilities/archetypes"
	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/gamemath"
	"github.com/automoto/doomerang-abilities/physics"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreateHook spawns a grapple hook for shooter. With a hook speed the hook
// starts at from and flies toward target; otherwise it is placed at target.
func CreateHook(w donburi.World, shooter donburi.Entity, from, target math2.Vec2) (*donburi.Entry, error) {
	tuning := components.TuningOf(w).Grapple
	hook := archetypes.Hook.Spawn(w)

	components.Hook.SetValue(hook, components.HookData{
		Shooter:    shooter,
		Attachment: components.Unattached,
	})
	components.GravityScale.SetValue(hook, components.GravityScaleData{Scale: 0})

	def := physics.BodyDef{
		Kind:     physics.Dynamic,
		Position: target,
		Width:    tuning.HookSize,
		Height:   tuning.HookSize,
		Mass:     1,
		Sensor:   true,
	}
	if tuning.HookSpeed > 0 {
		def.Position = from
		def.Velocity = gamemath.LaunchVelocity(from, target, tuning.HookSpeed)
	}

	if err := components.Adapter(w).AddBody(hook.Entity(), def); err != nil {
		w.Remove(hook.Entity())
		return nil, fmt.Errorf("add hook body: %w", err)
	}
	return hook, nil
}
