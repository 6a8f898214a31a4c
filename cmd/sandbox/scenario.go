package main

import (
	"log"
	"time"

	"github.com/automoto/doomerang-abilities/config"
	"github.com/automoto/doomerang-abilities/core"
	"github.com/automoto/doomerang-abilities/gamemath"
	"github.com/yohamta/donburi"
)

type cue struct {
	at     float64
	name   string
	action func(*core.Simulation)
}

// scenario is a small stage with a scripted sequence of abilities: the
// player shoots the enemy, dashes, swings from the ceiling and finally
// pulls the enemy in.
type scenario struct {
	player, enemy donburi.Entity
	cues          []cue
	next          int
}

func newScenario(sim *core.Simulation) (*scenario, error) {
	sc := &scenario{}
	var err error

	if _, err = sim.SpawnWall(gamemath.Vec(1024, 1000), 2048, 64); err != nil {
		return nil, err
	}
	if _, err = sim.SpawnWall(gamemath.Vec(700, 400), 64, 64); err != nil {
		return nil, err
	}
	if sc.player, err = sim.SpawnPlayer(gamemath.Vec(400, 900)); err != nil {
		return nil, err
	}
	if sc.enemy, err = sim.SpawnEnemy(gamemath.Vec(1100, 900)); err != nil {
		return nil, err
	}

	right := gamemath.Vec(1, 0)
	sc.cues = []cue{
		{0.25, "fire", func(s *core.Simulation) { s.FireProjectile(sc.player, right, config.PlayerBlaster) }},
		{0.50, "enemy fire", func(s *core.Simulation) { s.FireProjectile(sc.enemy, gamemath.Vec(-1, 0), config.EnemyBlaster) }},
		{1.00, "dash", func(s *core.Simulation) { s.Dash(sc.player, right) }},
		{1.50, "grapple ceiling", func(s *core.Simulation) { s.StartGrapple(sc.player, gamemath.Vec(700, 400)) }},
		{2.25, "release swing", func(s *core.Simulation) { s.EndGrapple(sc.player) }},
		{2.50, "grapple enemy", func(s *core.Simulation) {
			if pos, ok := s.Adapter().Position(sc.enemy); ok {
				s.StartGrapple(sc.player, pos)
			}
		}},
		{2.75, "release pull", func(s *core.Simulation) { s.EndGrapple(sc.player) }},
	}
	return sc, nil
}

// step queues every cue that is due.
func (sc *scenario) step(sim *core.Simulation) {
	for sc.next < len(sc.cues) && sc.cues[sc.next].at <= sim.Now() {
		c := sc.cues[sc.next]
		log.Printf("[sandbox] t=%.2f %s", sim.Now(), c.name)
		c.action(sim)
		sc.next++
	}
}

func (sc *scenario) done() bool {
	return sc.next >= len(sc.cues)
}

// drive feeds the script to a running loop until every cue is queued.
func (sc *scenario) drive(loop *core.Loop) {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for range ticker.C {
		finished := false
		loop.Do(func(sim *core.Simulation) {
			sc.step(sim)
			finished = sc.done()
		})
		if finished {
			return
		}
	}
}

func (sc *scenario) report(sim *core.Simulation) {
	for _, a := range []struct {
		name string
		e    donburi.Entity
	}{{"player", sc.player}, {"enemy", sc.enemy}} {
		hp, _ := sim.Health(a.e)
		pos, _ := sim.Adapter().Position(a.e)
		log.Printf("[sandbox] %s: health=%.0f position=(%.0f, %.0f) dashing=%t grappling=%t",
			a.name, hp, pos.X, pos.Y, sim.IsDashing(a.e), sim.IsGrappling(a.e))
	}
	log.Printf("[sandbox] finished at t=%.2f after %d ticks", sim.Now(), sim.Tick())
}
