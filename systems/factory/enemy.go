package factory

import (
	"github.com/automoto/doomerang-abilities/archetypes"
	"github.com/automoto/doomerang-abilities/components"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns a hostile actor centered at pos. Enemies are valid
// grapple and projectile targets.
func CreateEnemy(w donburi.World, pos math2.Vec2) (*donburi.Entry, error) {
	enemy := archetypes.Enemy.Spawn(w)
	if err := characterBody(w, enemy, pos, components.TuningOf(w).Enemy); err != nil {
		return nil, err
	}
	return enemy, nil
}
