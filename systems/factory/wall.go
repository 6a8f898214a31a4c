package factory

import (
	"fmt"

	"github.com/automoto/doomerang-abilities/archetypes"
	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/physics"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// CreateWall spawns a static block of level geometry centered at pos.
func CreateWall(w donburi.World, pos math2.Vec2, width, height float64) (*donburi.Entry, error) {
	wall := archetypes.Wall.Spawn(w)

	err := components.Adapter(w).AddBody(wall.Entity(), physics.BodyDef{
		Kind:     physics.Static,
		Position: pos,
		Width:    width,
		Height:   height,
	})
	if err != nil {
		w.Remove(wall.Entity())
		return nil, fmt.Errorf("add wall body: %w", err)
	}
	return wall, nil
}
