package factory

import (
	"fmt"

	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/physics"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// characterBody registers a dynamic body for a player or enemy and sets up
// its health facts.
func characterBody(w donburi.World, e *donburi.Entry, pos math2.Vec2, c config.CharacterConfig) error {
	components.Health.SetValue(e, components.HealthData{
		Current: c.Health,
		Max:     c.Health,
	})
	components.Defense.SetValue(e, components.DefenseData{
		Multiplier: c.Defense,
	})

	err := components.Adapter(w).AddBody(e.Entity(), physics.BodyDef{
		Kind:         physics.Dynamic,
		Position:     pos,
		Width:        c.Width,
		Height:       c.Height,
		Mass:         c.Mass,
		GravityScale: 1,
	})
	if err != nil {
		w.Remove(e.Entity())
		return fmt.Errorf("add character body: %w", err)
	}
	return nil
}
