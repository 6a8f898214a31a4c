package components

import (
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// DashData exists only while an actor is dashing.
type DashData struct {
	Direction math2.Vec2
	Speed     float64
	Duration  float64
	StartTime float64
	// StartedMoving flips on the first tick after the dash starts. Touch
	// checks are skipped until then.
	StartedMoving bool
}

var Dash = donburi.NewComponentType[DashData]()
