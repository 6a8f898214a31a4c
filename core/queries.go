package core

import (
	"github.com/automoto/doomerang-abilities/components"
	"github.com/automoto/doomerang-abilities/tags"
	"github.com/yohamta/donburi"
)

func (s *Simulation) entry(e donburi.Entity) (*donburi.Entry, bool) {
	if !s.world.Valid(e) {
		return nil, false
	}
	return s.world.Entry(e), true
}

// Alive reports whether the actor still exists.
func (s *Simulation) Alive(e donburi.Entity) bool {
	return s.world.Valid(e)
}

func (s *Simulation) IsDashing(e donburi.Entity) bool {
	entry, ok := s.entry(e)
	return ok && entry.HasComponent(components.Dash)
}

// DashState returns the actor's dash record.
func (s *Simulation) DashState(e donburi.Entity) (components.DashData, bool) {
	entry, ok := s.entry(e)
	if !ok || !entry.HasComponent(components.Dash) {
		return components.DashData{}, false
	}
	return *components.Dash.Get(entry), true
}

// IsGrappling reports whether the actor is anywhere in a grapple flow,
// including while its hook is still flying.
func (s *Simulation) IsGrappling(e donburi.Entity) bool {
	entry, ok := s.entry(e)
	return ok && entry.HasComponent(tags.Grappling)
}

func (s *Simulation) grapple(e donburi.Entity) (*components.GrappleData, bool) {
	entry, ok := s.entry(e)
	if !ok || !entry.HasComponent(components.Grapple) {
		return nil, false
	}
	return components.Grapple.Get(entry), true
}

func (s *Simulation) IsSwinging(e donburi.Entity) bool {
	_, ok := s.SwingState(e)
	return ok
}

func (s *Simulation) IsPulling(e donburi.Entity) bool {
	_, ok := s.PullState(e)
	return ok
}

func (s *Simulation) SwingState(e donburi.Entity) (components.SwingRope, bool) {
	g, ok := s.grapple(e)
	if !ok || g.Swing() == nil {
		return components.SwingRope{}, false
	}
	return *g.Swing(), true
}

func (s *Simulation) PullState(e donburi.Entity) (components.PullRope, bool) {
	g, ok := s.grapple(e)
	if !ok || g.Pull() == nil {
		return components.PullRope{}, false
	}
	return *g.Pull(), true
}

// HookOf returns the hook the actor fired in its current grapple flow.
func (s *Simulation) HookOf(e donburi.Entity) (donburi.Entity, bool) {
	g, ok := s.grapple(e)
	if !ok {
		return 0, false
	}
	return g.Hook, true
}

// HookState returns the hook record of a hook actor.
func (s *Simulation) HookState(hook donburi.Entity) (components.HookData, bool) {
	entry, ok := s.entry(hook)
	if !ok || !entry.HasComponent(components.Hook) {
		return components.HookData{}, false
	}
	return *components.Hook.Get(entry), true
}

// Health returns the actor's current health.
func (s *Simulation) Health(e donburi.Entity) (float64, bool) {
	entry, ok := s.entry(e)
	if !ok || !entry.HasComponent(components.Health) {
		return 0, false
	}
	return components.Health.Get(entry).Current, true
}

// Projectiles returns every live projectile.
func (s *Simulation) Projectiles() []donburi.Entity {
	var out []donburi.Entity
	tags.Projectile.Each(s.world, func(e *donburi.Entry) {
		out = append(out, e.Entity())
	})
	return out
}
