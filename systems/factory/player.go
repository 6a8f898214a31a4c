package factory

import (
	"github.com/automoto/doomerang-abilities/archetypes"
	"github.com/automoto/doomerang-abilities/components"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns a player able to dash, grapple and be hit, centered
// at pos.
func CreatePlayer(w donburi.World, pos math2.Vec2) (*donburi.Entry, error) {
	player := archetypes.Player.Spawn(w)
	if err := characterBody(w, player, pos, components.TuningOf(w).Player); err != nil {
		return nil, err
	}
	return player, nil
}
