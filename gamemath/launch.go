package gamemath

import math2 "github.com/yohamta/donburi/features/math"

// LaunchVelocity returns the velocity that moves a body from `from` toward
// `to` at the given speed. Coincident points yield a zero velocity.
func LaunchVelocity(from, to math2.Vec2, speed float64) math2.Vec2 {
	dir, ok := Normalize(Sub(to, from))
	if !ok {
		return math2.Vec2{}
	}
	return Scale(dir, speed)
}

// KnockbackImpulse returns the impulse a projectile moving at velocity
// delivers: the flight direction scaled by the knockback magnitude.
func KnockbackImpulse(velocity math2.Vec2, magnitude float64) math2.Vec2 {
	dir, ok := Normalize(velocity)
	if !ok {
		return math2.Vec2{}
	}
	return Scale(dir, magnitude)
}

// SpringImpulse returns the Hooke's-law impulse pulling a body at pos toward
// anchor. A body closer than restLength is pushed away. The second result is
// the current distance to the anchor; the impulse is zero when pos sits on the
// anchor.
func SpringImpulse(pos, anchor math2.Vec2, restLength, k, dt float64) (math2.Vec2, float64) {
	toAnchor := Sub(anchor, pos)
	d := Length(toAnchor)
	dir, ok := Normalize(toAnchor)
	if !ok {
		return math2.Vec2{}, d
	}
	return Scale(dir, (d-restLength)*k*dt), d
}

// DampingImpulse returns the impulse opposing motion along the rope axis,
// given the change of distance to the anchor since the previous tick.
func DampingImpulse(pos, anchor math2.Vec2, deltaDistance, c, dt float64) math2.Vec2 {
	dir, ok := Normalize(Sub(anchor, pos))
	if !ok {
		return math2.Vec2{}
	}
	return Scale(dir, deltaDistance*c*dt)
}
